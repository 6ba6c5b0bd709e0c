package evergreen

import (
	"math/rand/v2"

	"github.com/tanema/gween/ease"
)

// sparkle holds one twinkle flash. Unexported; managed by SparkleEmitter.
type sparkle struct {
	pos        Vec3
	life       float32 // remaining lifetime in seconds
	maxLife    float32
	size       float32
	brightness float32
}

// SparkleConfig controls the secondary twinkle effect that plays on the
// assembled tree. The zero value selects usable defaults for every field.
type SparkleConfig struct {
	// MaxSparkles is the pool size. New sparkles are silently dropped when
	// full. Zero defaults to 64.
	MaxSparkles int
	// EmitRate is sparkles spawned per second while the tree is mostly
	// formed. Zero defaults to 18.
	EmitRate float32
	// Lifetime is the range of flash durations in seconds.
	// Zero defaults to [0.3, 0.8].
	Lifetime Range
	// Size is the range of flash size factors. Zero defaults to [1.5, 3].
	Size Range
}

func (c SparkleConfig) withDefaults() SparkleConfig {
	if c.MaxSparkles <= 0 {
		c.MaxSparkles = 64
	}
	if c.EmitRate <= 0 {
		c.EmitRate = 18
	}
	if c.Lifetime == (Range{}) {
		c.Lifetime = Range{0.3, 0.8}
	}
	if c.Size == (Range{}) {
		c.Size = Range{1.5, 3}
	}
	return c
}

// SparkleEmitter spawns short bright flashes at random formed positions on
// the tree, but only while the formation progress has crossed
// MostlyFormedThreshold. It manages a preallocated pool; Update allocates
// nothing.
type SparkleEmitter struct {
	config    SparkleConfig
	sparkles  []sparkle
	alive     int
	emitAccum float32
	rng       *rand.Rand
}

// newSparkleEmitter creates a SparkleEmitter with a preallocated pool.
func newSparkleEmitter(cfg SparkleConfig, seed uint64) *SparkleEmitter {
	cfg = cfg.withDefaults()
	return &SparkleEmitter{
		config:   cfg,
		sparkles: make([]sparkle, cfg.MaxSparkles),
		rng:      rand.New(rand.NewPCG(seed, seed^0xda3e39cb94b95bdb)),
	}
}

// AliveCount returns the number of live sparkles.
func (e *SparkleEmitter) AliveCount() int {
	return e.alive
}

// At returns the position, size factor, and current brightness of live
// sparkle i, for 0 <= i < AliveCount.
func (e *SparkleEmitter) At(i int) (pos Vec3, size, brightness float32) {
	s := &e.sparkles[i]
	return s.pos, s.size, s.brightness
}

// Reset kills all live sparkles.
func (e *SparkleEmitter) Reset() {
	e.alive = 0
	e.emitAccum = 0
}

// Update advances live sparkles by dt seconds and, while progress is at or
// above MostlyFormedThreshold, spawns new ones on random formed positions
// drawn from pool. Below the threshold no spawning occurs and the emit
// accumulator drains, so the first flash after crossing is not a burst.
func (e *SparkleEmitter) Update(dt float32, progress float32, pool *Pool) {
	// Update existing sparkles, swap-remove dead ones.
	i := 0
	for i < e.alive {
		s := &e.sparkles[i]
		s.life -= dt
		if s.life <= 0 {
			e.alive--
			e.sparkles[i] = e.sparkles[e.alive]
			continue
		}

		// Flash envelope: instant-on, eased fade-out.
		t := 1 - s.life/s.maxLife
		s.brightness = ease.OutCubic(1-t, 0, 1, 1)
		i++
	}

	if progress < MostlyFormedThreshold || pool == nil || pool.Len() == 0 {
		e.emitAccum = 0
		return
	}

	e.emitAccum += e.config.EmitRate * dt
	for e.emitAccum >= 1.0 {
		e.emitAccum -= 1.0
		if e.alive < len(e.sparkles) {
			e.spawnSparkle(pool)
		}
	}
}

// spawnSparkle initializes the sparkle at slot e.alive and increments alive.
func (e *SparkleEmitter) spawnSparkle(pool *Pool) {
	s := &e.sparkles[e.alive]

	s.pos = pool.FormedAt(e.rng.IntN(pool.Len()))
	s.life = e.config.Lifetime.Random(e.rng)
	if s.life <= 0 {
		s.life = 0.5
	}
	s.maxLife = s.life
	s.size = e.config.Size.Random(e.rng)
	s.brightness = 1

	e.alive++
}

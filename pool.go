package evergreen

import (
	"fmt"
	"math/rand/v2"
)

// Default category mix when the Config fractions are zero. The remainder
// after lights, ornaments, and stardust is needles.
const (
	defaultLightFraction    = 0.18
	defaultOrnamentFraction = 0.08
	defaultStardustFraction = 0.02
)

// defaultOrnamentBand keeps the heavy baubles on the lower part of the tree.
var defaultOrnamentBand = Range{0, 0.4}

// categorySizes is the size-factor range drawn per category at generation.
var categorySizes = [numCategories]Range{
	CategoryNeedle:   {0.6, 1.0},
	CategoryLight:    {0.8, 1.4},
	CategoryOrnament: {1.6, 2.4},
	CategoryStardust: {0.4, 0.8},
}

// categoryBands is the vertical band each category occupies on the formed
// shape, as fractions of total height from the base. Ornaments use
// Config.OrnamentBand instead.
var categoryBands = [numCategories]Range{
	CategoryNeedle:   {0, 1},
	CategoryLight:    {0.02, 0.92},
	CategoryOrnament: {0, 1}, // overridden by OrnamentBand
	CategoryStardust: {0.5, 1},
}

// Config describes a particle pool. Count, TreeHeight, and TreeRadius are
// required; everything else has a usable zero-value default.
type Config struct {
	// Count is the fixed pool size. Particles are generated once and never
	// added, removed, or resized afterward.
	Count int
	// TreeHeight is the total height of the formed cone.
	TreeHeight float32
	// TreeRadius is the cone's base radius.
	TreeRadius float32
	// ScatterRadius is the radius of the sphere the scattered cloud fills.
	// Zero defaults to 1.25 * TreeHeight.
	ScatterRadius float32
	// Seed makes generation reproducible. Zero defaults to 1.
	Seed uint64
	// Rate is the progress approach rate for the scene's Driver.
	// Zero defaults to DefaultRate.
	Rate float32
	// LightFraction, OrnamentFraction, and StardustFraction set the category
	// mix; the remainder is needles. All zero selects the default mix.
	LightFraction    float32
	OrnamentFraction float32
	StardustFraction float32
	// OrnamentBand restricts ornaments to a vertical fraction of the tree,
	// measured from the base. Zero value defaults to the bottom 40%.
	OrnamentBand Range
	// Sparkles configures the secondary twinkle emitter used by TreeScene.
	Sparkles SparkleConfig
}

// Validate reports the first malformed field, or nil. NewPool calls it, so
// malformed configuration fails fast instead of producing silent NaNs.
func (c Config) Validate() error {
	if c.Count <= 0 {
		return fmt.Errorf("evergreen: particle count must be positive, got %d", c.Count)
	}
	if c.TreeHeight <= 0 {
		return fmt.Errorf("evergreen: tree height must be positive, got %g", c.TreeHeight)
	}
	if c.TreeRadius < 0 {
		return fmt.Errorf("evergreen: tree radius must be non-negative, got %g", c.TreeRadius)
	}
	if c.ScatterRadius < 0 {
		return fmt.Errorf("evergreen: scatter radius must be non-negative, got %g", c.ScatterRadius)
	}
	if c.LightFraction < 0 || c.OrnamentFraction < 0 || c.StardustFraction < 0 {
		return fmt.Errorf("evergreen: category fractions must be non-negative")
	}
	if s := c.LightFraction + c.OrnamentFraction + c.StardustFraction; s > 1 {
		return fmt.Errorf("evergreen: category fractions sum to %g, must not exceed 1", s)
	}
	b := c.OrnamentBand
	if b.Min < 0 || b.Max > 1 || b.Min > b.Max {
		return fmt.Errorf("evergreen: ornament band [%g, %g] must satisfy 0 <= min <= max <= 1", b.Min, b.Max)
	}
	return nil
}

// withDefaults returns a copy of c with zero-valued optional fields filled.
func (c Config) withDefaults() Config {
	if c.ScatterRadius == 0 {
		c.ScatterRadius = c.TreeHeight * 1.25
	}
	if c.Seed == 0 {
		c.Seed = 1
	}
	if c.Rate == 0 {
		c.Rate = DefaultRate
	}
	if c.LightFraction == 0 && c.OrnamentFraction == 0 && c.StardustFraction == 0 {
		c.LightFraction = defaultLightFraction
		c.OrnamentFraction = defaultOrnamentFraction
		c.StardustFraction = defaultStardustFraction
	}
	if c.OrnamentBand == (Range{}) {
		c.OrnamentBand = defaultOrnamentBand
	}
	return c
}

// Pool holds the per-particle source attributes in parallel arrays, one
// contiguous slice per attribute. Attributes are generated once in NewPool
// and never mutated; only the blended position computed from them changes
// per frame.
type Pool struct {
	cfg        Config
	scatter    []Vec3
	formed     []Vec3
	seeds      []float32
	sizes      []float32
	categories []Category
}

// NewPool generates a particle pool from cfg. Generation is deterministic
// for a given Seed. The returned pool is immutable.
func NewPool(cfg Config) (*Pool, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	n := cfg.Count
	p := &Pool{
		cfg:        cfg,
		scatter:    make([]Vec3, n),
		formed:     make([]Vec3, n),
		seeds:      make([]float32, n),
		sizes:      make([]float32, n),
		categories: make([]Category, n),
	}

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	for i := 0; i < n; i++ {
		cat := pickCategory(rng, cfg)
		band := categoryBands[cat]
		if cat == CategoryOrnament {
			band = cfg.OrnamentBand
		}

		p.categories[i] = cat
		p.scatter[i] = ScatterPoint(rng, cfg.ScatterRadius)
		p.formed[i] = FormationPoint(rng, cfg.TreeHeight, cfg.TreeRadius, band.Min, band.Max)
		p.seeds[i] = rng.Float32()
		p.sizes[i] = categorySizes[cat].Random(rng)
	}
	return p, nil
}

// pickCategory buckets one uniform draw into the configured category mix.
func pickCategory(rng *rand.Rand, cfg Config) Category {
	u := rng.Float32()
	switch {
	case u < cfg.LightFraction:
		return CategoryLight
	case u < cfg.LightFraction+cfg.OrnamentFraction:
		return CategoryOrnament
	case u < cfg.LightFraction+cfg.OrnamentFraction+cfg.StardustFraction:
		return CategoryStardust
	default:
		return CategoryNeedle
	}
}

// Len returns the pool size.
func (p *Pool) Len() int {
	return len(p.scatter)
}

// Config returns the pool's configuration after defaulting.
func (p *Pool) Config() Config {
	return p.cfg
}

// ScatterAt returns particle i's scattered home.
func (p *Pool) ScatterAt(i int) Vec3 {
	return p.scatter[i]
}

// FormedAt returns particle i's formed home on the tree surface.
func (p *Pool) FormedAt(i int) Vec3 {
	return p.formed[i]
}

// SeedAt returns particle i's stable random seed in [0, 1).
func (p *Pool) SeedAt(i int) float32 {
	return p.seeds[i]
}

// SizeAt returns particle i's size factor.
func (p *Pool) SizeAt(i int) float32 {
	return p.sizes[i]
}

// CategoryAt returns particle i's category.
func (p *Pool) CategoryAt(i int) Category {
	return p.categories[i]
}

// PositionAt returns particle i's blended position for the given progress.
func (p *Pool) PositionAt(i int, progress float32) Vec3 {
	return Blend(p.scatter[i], p.formed[i], p.cfg.TreeHeight, p.seeds[i], progress)
}

// PositionsInto fills dst with the blended positions of every particle at
// the given progress and returns dst. len(dst) must be at least Len; the
// call allocates nothing, so renderers can reuse one slice across frames.
func (p *Pool) PositionsInto(dst []Vec3, progress float32) []Vec3 {
	for i := range p.scatter {
		dst[i] = Blend(p.scatter[i], p.formed[i], p.cfg.TreeHeight, p.seeds[i], progress)
	}
	return dst
}

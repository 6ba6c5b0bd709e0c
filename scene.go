package evergreen

// TreeScene bundles the pool, the animation driver, and the sparkle emitter
// behind the per-frame surface a renderer needs. It is single-threaded:
// call Tick once per frame from the goroutine that owns the render loop,
// then read positions for the same frame.
type TreeScene struct {
	pool     *Pool
	driver   *Driver
	sparkles *SparkleEmitter
	elapsed  float32
}

// NewTreeScene generates the particle pool from cfg and wires up the driver
// and sparkle emitter. The scene starts fully scattered.
func NewTreeScene(cfg Config) (*TreeScene, error) {
	pool, err := NewPool(cfg)
	if err != nil {
		return nil, err
	}
	full := pool.Config()
	return &TreeScene{
		pool:     pool,
		driver:   NewDriver(full.Rate),
		sparkles: newSparkleEmitter(full.Sparkles, full.Seed),
	}, nil
}

// Tick advances the scene by dt seconds with the given formation target and
// returns the new progress. The sparkle emitter updates off the same
// progress, so secondary effects stay in lockstep with the morph.
func (s *TreeScene) Tick(dt float32, formed bool) float32 {
	s.driver.SetFormed(formed)
	progress := s.driver.Tick(dt)
	s.elapsed += dt
	s.sparkles.Update(dt, progress, s.pool)
	return progress
}

// PositionFor returns particle i's blended position at the given progress.
// Pass the progress returned by this frame's Tick; accepting it explicitly
// keeps the call pure and lets renderers interpolate or rewind freely.
func (s *TreeScene) PositionFor(i int, progress float32) Vec3 {
	return s.pool.PositionAt(i, progress)
}

// Len returns the particle count.
func (s *TreeScene) Len() int {
	return s.pool.Len()
}

// Pool exposes the immutable per-particle attributes.
func (s *TreeScene) Pool() *Pool {
	return s.pool
}

// Driver exposes the animation driver for threshold queries.
func (s *TreeScene) Driver() *Driver {
	return s.driver
}

// Sparkles exposes the twinkle emitter for rendering.
func (s *TreeScene) Sparkles() *SparkleEmitter {
	return s.sparkles
}

// Elapsed returns total scene time in seconds, the time input for
// GlowIntensity.
func (s *TreeScene) Elapsed() float32 {
	return s.elapsed
}

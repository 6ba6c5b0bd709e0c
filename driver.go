package evergreen

// DefaultRate is the progress approach rate used when Config.Rate is zero.
// At 60 ticks/s this settles within ~1% of the target in about 1.8 seconds.
const DefaultRate = 2.5

// MostlyFormedThreshold is the progress above which the tree counts as
// assembled enough for secondary effects (sparkles, glow) to switch on.
const MostlyFormedThreshold = 0.8

// Driver owns the formation progress. An external toggle sets the binary
// target; Tick eases the continuous progress toward it with exponential
// smoothing, so motion stays frame-rate independent at small dt.
//
// Progress approaches the target asymptotically and never reaches it
// exactly. Callers must use thresholds (Settled, MostlyFormed), never
// equality against 0 or 1.
type Driver struct {
	progress float32
	target   float32
	rate     float32
}

// NewDriver creates a Driver starting fully scattered (progress 0).
// A rate <= 0 falls back to DefaultRate.
func NewDriver(rate float32) *Driver {
	if rate <= 0 {
		rate = DefaultRate
	}
	return &Driver{rate: rate}
}

// SetFormed sets the target: true pulls progress toward 1 (formed), false
// toward 0 (scattered). Retargeting mid-flight reverses smoothly from the
// current progress; there is no snap.
func (d *Driver) SetFormed(formed bool) {
	if formed {
		d.target = 1
	} else {
		d.target = 0
	}
}

// Formed reports the current target, not the current state.
func (d *Driver) Formed() bool {
	return d.target == 1
}

// Tick advances progress by dt seconds and returns the new value.
// The step factor is capped at 1 so a huge dt lands on the target instead
// of overshooting; progress therefore always stays in [0, 1].
func (d *Driver) Tick(dt float32) float32 {
	if dt <= 0 {
		return d.progress
	}
	step := d.rate * dt
	if step > 1 {
		step = 1
	}
	d.progress += (d.target - d.progress) * step
	return d.progress
}

// Progress returns the current progress in [0, 1] without advancing it.
func (d *Driver) Progress() float32 {
	return d.progress
}

// Settled reports whether progress is within tol of the target.
func (d *Driver) Settled(tol float32) bool {
	diff := d.target - d.progress
	if diff < 0 {
		diff = -diff
	}
	return diff <= tol
}

// MostlyFormed reports whether progress has crossed MostlyFormedThreshold.
// Gate one-shot or continuous secondary effects on this rather than on the
// target, so effects ramp with the visible state of the tree.
func (d *Driver) MostlyFormed() bool {
	return d.progress >= MostlyFormedThreshold
}

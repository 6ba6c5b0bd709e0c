package evergreen

import "testing"

func TestDriverStartsScattered(t *testing.T) {
	d := NewDriver(0)
	if d.Progress() != 0 {
		t.Errorf("initial progress = %f, want 0", d.Progress())
	}
	if d.Formed() {
		t.Error("initial target should be scattered")
	}
}

func TestDriverConvergesMonotonically(t *testing.T) {
	d := NewDriver(0)
	d.SetFormed(true)

	prev := d.Progress()
	for i := 0; i < 600; i++ {
		p := d.Tick(1.0 / 60.0)
		if p < prev {
			t.Fatalf("progress decreased from %f to %f while approaching 1", prev, p)
		}
		if p < 0 || p > 1 {
			t.Fatalf("progress = %f, outside [0, 1]", p)
		}
		prev = p
	}

	// Converges close to the target but never reaches it exactly.
	if prev < 0.99 {
		t.Errorf("progress = %f after 10s, want near 1", prev)
	}
	if prev >= 1 {
		t.Errorf("progress = %f, must approach 1 asymptotically", prev)
	}
}

func TestDriverReversesSmoothly(t *testing.T) {
	d := NewDriver(0)
	d.SetFormed(true)

	const dt = 1.0 / 60.0
	for i := 0; i < 30; i++ {
		d.Tick(dt)
	}
	mid := d.Progress()
	if mid <= 0 || mid >= 1 {
		t.Fatalf("mid progress = %f, expected mid-flight", mid)
	}

	// Retarget before convergence: the next tick moves a bounded step back
	// toward 0 from the current value, no jump.
	d.SetFormed(false)
	p := d.Tick(dt)
	maxStep := mid * DefaultRate * dt
	if p >= mid {
		t.Errorf("progress = %f did not reverse from %f", p, mid)
	}
	if mid-p > maxStep+epsilon {
		t.Errorf("reversal step %f exceeds smoothing bound %f", mid-p, maxStep)
	}

	for i := 0; i < 600; i++ {
		p = d.Tick(dt)
	}
	if p > 0.01 {
		t.Errorf("progress = %f after reversing for 10s, want near 0", p)
	}
	if p < 0 {
		t.Errorf("progress = %f went negative", p)
	}
}

// A huge dt clamps the step factor at 1 and lands on the target instead of
// overshooting past it.
func TestDriverLargeTimestep(t *testing.T) {
	d := NewDriver(0)
	d.SetFormed(true)
	p := d.Tick(100)
	if p < 0 || p > 1 {
		t.Errorf("progress = %f after huge dt, outside [0, 1]", p)
	}
}

func TestDriverIgnoresNonPositiveDt(t *testing.T) {
	d := NewDriver(0)
	d.SetFormed(true)
	d.Tick(0.1)
	before := d.Progress()
	if d.Tick(0) != before || d.Tick(-1) != before {
		t.Error("non-positive dt must not advance progress")
	}
}

func TestDriverSettled(t *testing.T) {
	d := NewDriver(0)
	if !d.Settled(1e-3) {
		t.Error("fresh driver should be settled at its target 0")
	}

	d.SetFormed(true)
	if d.Settled(1e-3) {
		t.Error("driver should not be settled right after retargeting")
	}

	for i := 0; i < 1200; i++ {
		d.Tick(1.0 / 60.0)
	}
	if !d.Settled(1e-3) {
		t.Errorf("progress = %f, should be settled within 1e-3 after 20s", d.Progress())
	}
}

func TestDriverMostlyFormedThreshold(t *testing.T) {
	d := NewDriver(0)
	d.SetFormed(true)

	crossed := false
	for i := 0; i < 600; i++ {
		p := d.Tick(1.0 / 60.0)
		if d.MostlyFormed() != (p >= MostlyFormedThreshold) {
			t.Fatalf("MostlyFormed() disagrees with progress %f", p)
		}
		if d.MostlyFormed() {
			crossed = true
		}
	}
	if !crossed {
		t.Error("driver never crossed the mostly-formed threshold")
	}
}

func TestDriverCustomRate(t *testing.T) {
	slow := NewDriver(0.5)
	fast := NewDriver(5)
	slow.SetFormed(true)
	fast.SetFormed(true)

	for i := 0; i < 60; i++ {
		slow.Tick(1.0 / 60.0)
		fast.Tick(1.0 / 60.0)
	}
	if slow.Progress() >= fast.Progress() {
		t.Errorf("slow rate %f should trail fast rate %f", slow.Progress(), fast.Progress())
	}
}

func BenchmarkDriverTick(b *testing.B) {
	d := NewDriver(0)
	d.SetFormed(true)
	b.ReportAllocs()
	for b.Loop() {
		d.Tick(1.0 / 60.0)
	}
}

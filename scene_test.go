package evergreen

import "testing"

func testScene(t *testing.T, count int) *TreeScene {
	t.Helper()
	s, err := NewTreeScene(testConfig(count))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestNewTreeSceneValidates(t *testing.T) {
	if _, err := NewTreeScene(Config{Count: -1, TreeHeight: 12, TreeRadius: 4.5}); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestSceneStartsScattered(t *testing.T) {
	s := testScene(t, 200)
	if p := s.Driver().Progress(); p != 0 {
		t.Errorf("initial progress = %f, want 0", p)
	}
	for i := 0; i < s.Len(); i++ {
		assertVecNear(t, "PositionFor(0)", s.PositionFor(i, 0), s.Pool().ScatterAt(i))
	}
}

func TestSceneTickFormsTree(t *testing.T) {
	s := testScene(t, 200)

	var progress float32
	for i := 0; i < 600; i++ {
		progress = s.Tick(1.0/60.0, true)
	}
	if progress < 0.99 {
		t.Fatalf("progress = %f after 10s, tree did not form", progress)
	}

	// Near-converged positions sit close to the formed homes.
	for i := 0; i < s.Len(); i++ {
		got := s.PositionFor(i, progress)
		want := s.Pool().FormedAt(i)
		if got.Sub(want).Length() > 0.05 {
			t.Fatalf("particle %d at %v, far from formed home %v", i, got, want)
		}
	}
}

func TestSceneToggleReverses(t *testing.T) {
	s := testScene(t, 100)

	for i := 0; i < 60; i++ {
		s.Tick(1.0/60.0, true)
	}
	mid := s.Driver().Progress()

	p := s.Tick(1.0/60.0, false)
	if p >= mid {
		t.Errorf("progress = %f did not reverse from %f after toggling", p, mid)
	}
}

func TestSceneSparklesFollowFormation(t *testing.T) {
	s := testScene(t, 300)

	// Scattered: no sparkles.
	for i := 0; i < 60; i++ {
		s.Tick(1.0/60.0, false)
	}
	if s.Sparkles().AliveCount() != 0 {
		t.Errorf("alive sparkles = %d while scattered, want 0", s.Sparkles().AliveCount())
	}

	// Formed well past the threshold: sparkles appear.
	for i := 0; i < 600; i++ {
		s.Tick(1.0/60.0, true)
	}
	if s.Sparkles().AliveCount() == 0 {
		t.Error("no sparkles on the formed tree")
	}
}

func TestSceneElapsedAccumulates(t *testing.T) {
	s := testScene(t, 100)
	for i := 0; i < 60; i++ {
		s.Tick(1.0/60.0, true)
	}
	assertNear(t, "Elapsed", s.Elapsed(), 1.0)
}

func TestSceneTickZeroAllocs(t *testing.T) {
	s := testScene(t, 1000)
	for i := 0; i < 600; i++ {
		s.Tick(1.0/60.0, true)
	}

	allocs := testing.AllocsPerRun(100, func() {
		s.Tick(1.0/60.0, true)
	})
	if allocs > 0 {
		t.Errorf("Tick allocs = %f, want 0", allocs)
	}
}

func BenchmarkSceneFrame_4000(b *testing.B) {
	s, err := NewTreeScene(testConfig(4000))
	if err != nil {
		b.Fatal(err)
	}
	dst := make([]Vec3, s.Len())

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		progress := s.Tick(1.0/60.0, true)
		s.Pool().PositionsInto(dst, progress)
	}
}

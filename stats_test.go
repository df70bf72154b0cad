package lorentzgas

import (
	"math"
	"testing"
)

func TestNoSampleBeforeTime(t *testing.T) {
	s := New(DefaultParams(), 1)
	if n := len(s.Time()); n != 0 {
		t.Fatalf("%d samples before any step, want 0", n)
	}
	s.Step(0)
	if n := len(s.Time()); n != 0 {
		t.Errorf("%d samples after a zero-length step, want 0", n)
	}
}

func TestSampleCadence(t *testing.T) {
	par := DefaultParams()
	par.MeasurePeriod = 0.5
	s := New(par, 1)

	// dt of 0.25 is exact in binary, so the sample times are too:
	// first sample at 0.25, then every 0.5 simulated seconds
	for i := 0; i < 20; i++ {
		s.Step(0.25)
	}

	time := s.Time()
	if len(time) != 10 {
		t.Fatalf("%d samples after 5s at period 0.5, want 10", len(time))
	}
	for i := 1; i < len(time); i++ {
		if time[i] < time[i-1] {
			t.Errorf("time history decreases at %d: %v then %v", i, time[i-1], time[i])
		}
	}
}

func TestHistoriesEqualLength(t *testing.T) {
	s := New(DefaultParams(), 3)
	s.SetCount(5)
	for i := 0; i < 100; i++ {
		s.Step(0.1)
	}
	nt, np, ni := len(s.Time()), len(s.Prob()), len(s.Impulses())
	if nt != np || nt != ni {
		t.Errorf("history lengths diverged: time=%d prob=%d impulses=%d", nt, np, ni)
	}
}

func TestHistoryBounded(t *testing.T) {
	par := DefaultParams()
	par.MeasurePeriod = 0.001
	s := New(par, 1)

	// every step samples once the period is this short
	for i := 0; i < MaxHistory+500; i++ {
		s.Step(0.01)
	}

	if n := len(s.Time()); n != MaxHistory {
		t.Errorf("time history has %d samples, want exactly %d", n, MaxHistory)
	}
	if n := len(s.Prob()); n != MaxHistory {
		t.Errorf("prob history has %d samples, want exactly %d", n, MaxHistory)
	}
	if n := len(s.Impulses()); n != MaxHistory {
		t.Errorf("impulse history has %d samples, want exactly %d", n, MaxHistory)
	}
	if !s.HistoryFull() {
		t.Error("HistoryFull() = false with every series at capacity")
	}
}

func TestHistoryMonotonicAndNormalized(t *testing.T) {
	par := DefaultParams()
	par.MeasurePeriod = 0.01
	s := New(par, 5)
	s.SetCount(5)

	for i := 0; i < 300; i++ {
		s.Step(0.02)
	}

	time := s.Time()
	for i := 1; i < len(time); i++ {
		if time[i] < time[i-1] {
			t.Errorf("time history decreases at %d: %v then %v", i, time[i-1], time[i])
		}
	}
	for i, p := range s.Prob() {
		if p < 0 || p > 1 {
			t.Errorf("prob[%d] = %v outside [0, 1]", i, p)
		}
	}

	var sum float64
	for _, v := range s.Density() {
		if v < 0 {
			t.Errorf("negative density %v", v)
		}
		sum += v
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("density sums to %v, want 1", sum)
	}
}

// TestDwellSingleBin pins an electron inside bin 0 (moving straight up
// along x=10) so the residence probability of the distinguished bin
// must read exactly 1 and the density must concentrate there.
func TestDwellSingleBin(t *testing.T) {
	par := DefaultParams()
	par.Bin = 0
	par.MeasurePeriod = 0.1
	s := New(par, 1)
	s.Add(10, 200, math.Pi/2)

	for i := 0; i < 5; i++ {
		s.Step(0.1)
	}

	probs := s.Prob()
	if len(probs) == 0 {
		t.Fatal("no samples recorded")
	}
	for i, p := range probs {
		if math.Abs(p-1) > 1e-9 {
			t.Errorf("prob[%d] = %v for an electron pinned in the bin, want 1", i, p)
		}
	}

	density := s.Density()
	if math.Abs(density[0]-1) > 1e-9 {
		t.Errorf("density[0] = %v, want 1", density[0])
	}
	for b, v := range density[1:] {
		if v != 0 {
			t.Errorf("density[%d] = %v for an electron pinned in bin 0, want 0", b+1, v)
		}
	}
}

func TestSetBinsKeepsGlobals(t *testing.T) {
	s := New(DefaultParams(), 3)
	s.SetCount(5)
	for i := 0; i < 100; i++ {
		s.Step(0.1)
	}
	timeFull, impulse := s.TimeFull(), s.ImpulseSum()

	s.SetBins(5)
	if n := len(s.Density()); n != 5 {
		t.Fatalf("density has %d bins after SetBins(5), want 5", n)
	}
	for b, v := range s.Density() {
		if v != 0 {
			t.Errorf("density[%d] = %v right after repartition, want 0", b, v)
		}
	}
	if s.TimeFull() != timeFull {
		t.Errorf("timeFull changed from %v to %v on repartition", timeFull, s.TimeFull())
	}
	if s.ImpulseSum() != impulse {
		t.Errorf("impulseSum changed from %v to %v on repartition", impulse, s.ImpulseSum())
	}
}

func TestTraceDoesNotMutate(t *testing.T) {
	s := New(DefaultParams(), 5)
	s.SetCount(3)
	before := s.Electrons()

	paths := s.Trace(0.02, 10)

	if len(paths) != 3 {
		t.Fatalf("Trace returned %d paths, want 3", len(paths))
	}
	for i, path := range paths {
		if len(path) != 11 {
			t.Errorf("path %d has %d points, want 11", i, len(path))
		}
		if path[0] != before[i].Pos {
			t.Errorf("path %d starts at %v, want current position %v", i, path[0], before[i].Pos)
		}
	}

	after := s.Electrons()
	for i := range after {
		if after[i] != before[i] {
			t.Errorf("Trace moved electron %d from %+v to %+v", i, before[i], after[i])
		}
	}
	if s.TimeFull() != 0 || s.ImpulseSum() != 0 {
		t.Errorf("Trace touched the accumulators: timeFull=%v impulseSum=%v", s.TimeFull(), s.ImpulseSum())
	}
	if n := len(s.Time()); n != 0 {
		t.Errorf("Trace recorded %d history samples, want 0", n)
	}
}

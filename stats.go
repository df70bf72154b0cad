package lorentzgas

import "gonum.org/v1/gonum/floats"

const (
	// MaxHistory caps the number of samples kept in each history
	// series. Once full, a run keeps simulating but stops refining
	// its histories.
	MaxHistory = 1000

	// DefaultMeasurePeriod is the simulated time in seconds between
	// history samples.
	DefaultMeasurePeriod = 0.5
)

// A series is a capacity-bounded append-only history.
type series struct {
	v []float64
}

func newSeries() series {
	return series{v: make([]float64, 0, MaxHistory)}
}

// Full reports whether the series reached MaxHistory samples.
func (h *series) Full() bool { return len(h.v) == MaxHistory }

// push appends a sample unless the series is full.
func (h *series) push(x float64) {
	if !h.Full() {
		h.v = append(h.v, x)
	}
}

// Values returns a copy of the recorded samples.
func (h *series) Values() []float64 {
	return append([]float64(nil), h.v...)
}

// stats accumulates dwell time per x-axis bin and wall impulse, and
// samples them into the history series once per measure period.
type stats struct {
	binWidth float64
	bin      int // distinguished bin index

	timeFull      float64   // cumulative simulated time
	timeInside    float64   // normalized dwell in the distinguished bin
	timeInsideAll []float64 // normalized dwell per bin
	impulseSum    float64   // cumulative wall overshoot

	density    []float64 // normalized snapshot of timeInsideAll
	lastSample float64   // timeFull at the latest sample

	time     series // timeFull/100 at each sample
	prob     series // timeInside/timeFull at each sample
	impulses series // impulseSum at each sample
}

func newStats(width float64, bins, bin int) stats {
	st := stats{bin: bin}
	st.setBins(width, bins)
	st.time = newSeries()
	st.prob = newSeries()
	st.impulses = newSeries()
	return st
}

// setBins repartitions the x axis, discarding per-bin accumulation.
// Elapsed time and the impulse sum survive a repartition.
func (st *stats) setBins(width float64, n int) {
	if n < 1 {
		n = 1
	}
	st.binWidth = width / float64(n)
	st.timeInsideAll = make([]float64, n)
	st.density = make([]float64, n)
	st.timeInside = 0
}

// clear resets every accumulator and empties the histories.
func (st *stats) clear(width float64, bins, bin int) {
	*st = newStats(width, bins, bin)
}

// dwell credits w seconds to a bin when the electron spent the whole
// step inside it, i.e. both the pre- and post-step x coordinate fall in
// the same bin interval.
func (st *stats) dwell(x0, x1 float64, w float64) {
	b0 := int(x0 / st.binWidth)
	b1 := int(x1 / st.binWidth)
	if b0 != b1 || b0 < 0 || b0 >= len(st.timeInsideAll) {
		return
	}
	st.timeInsideAll[b0] += w
	if b0 == st.bin {
		st.timeInside += w
	}
}

// maybeSample appends one sample to each history if a measure period
// has elapsed since the last one and the histories are not full. The
// density snapshot is recomputed, not appended, so it always reflects
// the latest sample. Nothing is sampled before any time has passed.
func (s *Simulation) maybeSample() {
	st := &s.stats
	if st.timeFull <= 0 || st.time.Full() {
		return
	}
	if len(st.time.v) > 0 && st.lastSample+s.par.MeasurePeriod > st.timeFull {
		return
	}
	st.lastSample = st.timeFull
	st.time.push(st.timeFull / 100)
	st.prob.push(st.timeInside / st.timeFull)
	st.impulses.push(st.impulseSum)

	for b, v := range st.timeInsideAll {
		st.density[b] = v / st.timeFull
	}
	if sum := floats.Sum(st.density); sum > 0 {
		floats.Scale(1/sum, st.density)
	}
}

// TimeFull returns the cumulative simulated time in seconds.
func (s *Simulation) TimeFull() float64 { return s.stats.timeFull }

// ImpulseSum returns the cumulative wall impulse.
func (s *Simulation) ImpulseSum() float64 { return s.stats.impulseSum }

// Time returns the sampled time axis of the histories.
func (s *Simulation) Time() []float64 { return s.stats.time.Values() }

// Prob returns the sampled residence probability of the distinguished bin.
func (s *Simulation) Prob() []float64 { return s.stats.prob.Values() }

// Impulses returns the sampled cumulative wall impulse.
func (s *Simulation) Impulses() []float64 { return s.stats.impulses.Values() }

// Density returns the latest normalized spatial density histogram.
func (s *Simulation) Density() []float64 {
	return append([]float64(nil), s.stats.density...)
}

// HistoryFull reports whether the histories stopped recording.
func (s *Simulation) HistoryFull() bool { return s.stats.time.Full() }

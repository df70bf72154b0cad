// Package lorentzgas simulates a 2D gas of charged point particles.
//
// Electrons move at constant speed inside a rectangular arena and bounce
// elastically off the walls and off a fixed square lattice of circular
// atoms. The package is a pure simulation core: it advances particle
// states, accumulates dwell-time and wall-impulse statistics, and samples
// them into bounded history series. Rendering and plotting live in the
// display and plot packages.
package lorentzgas

import (
	"math"
	"math/rand"
)

// A Point is a simple 2D vector.
type Point struct {
	X float64
	Y float64
}

// A Particle is a single electron: a position and a direction of travel.
type Particle struct {
	Pos Point
	Dir float64 // direction in radians, in [0, 2π)
}

// Params contains the parameters of a simulation.
type Params struct {
	Width  float64 // arena width
	Height float64 // arena height

	Side      float64 // lattice cell spacing, must be > 0
	AtomR     float64 // atom radius
	ElectronR float64 // electron radius
	Speed     float64 // electron speed in units per second

	Bins int // number of equal x-axis slices for spatial statistics
	Bin  int // index of the distinguished bin

	MeasurePeriod float64 // simulated seconds between history samples
}

// DefaultParams returns the canonical metal-plate setup.
func DefaultParams() Params {
	return Params{
		Width:         400,
		Height:        400,
		Side:          25,
		AtomR:         5,
		ElectronR:     2,
		Speed:         100,
		Bins:          10,
		Bin:           4,
		MeasurePeriod: DefaultMeasurePeriod,
	}
}

// A StepMode selects whether a step mutates the statistics.
type StepMode int

const (
	// StepNormal accumulates dwell time and wall impulse.
	StepNormal StepMode = iota
	// StepSpeculative advances positions only, for trajectory previews.
	StepSpeculative
)

// A Simulation owns the full state of one run: parameters, lattice,
// particle store and statistics. It is not safe for concurrent use;
// the caller must not overlap Step with any other method.
type Simulation struct {
	par       Params
	lattice   Lattice
	electrons []Particle
	stats     stats
	rng       *rand.Rand
}

// New creates a simulation with no electrons.
// The seed makes particle placement reproducible.
func New(par Params, seed int64) *Simulation {
	if par.MeasurePeriod <= 0 {
		par.MeasurePeriod = DefaultMeasurePeriod
	}
	return &Simulation{
		par:     par,
		lattice: NewLattice(par.Width, par.Height, par.Side, par.AtomR),
		stats:   newStats(par.Width, par.Bins, par.Bin),
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Params returns the current simulation parameters.
func (s *Simulation) Params() Params { return s.par }

// Lattice returns the current lattice geometry.
func (s *Simulation) Lattice() Lattice { return s.lattice }

// SetDims resizes the arena. The lattice phase and the bin partition
// depend on the arena size, so both are recomputed and the per-bin
// dwell accumulation restarts.
func (s *Simulation) SetDims(w, h float64) {
	s.par.Width, s.par.Height = w, h
	s.lattice = NewLattice(w, h, s.par.Side, s.par.AtomR)
	s.stats.setBins(w, s.par.Bins)
}

// SetSide changes the lattice spacing and regenerates the lattice.
func (s *Simulation) SetSide(side float64) {
	s.par.Side = side
	s.lattice = NewLattice(s.par.Width, s.par.Height, side, s.par.AtomR)
}

// SetAtomR changes the atom radius.
func (s *Simulation) SetAtomR(r float64) {
	s.par.AtomR = r
	s.lattice.AtomR = r
}

// SetElectronR changes the electron radius.
func (s *Simulation) SetElectronR(r float64) { s.par.ElectronR = r }

// SetSpeed changes the shared electron speed.
func (s *Simulation) SetSpeed(v float64) { s.par.Speed = v }

// SetBins repartitions the x axis into n bins. Prior per-bin dwell
// accumulation is discarded; elapsed time and impulse sum continue.
func (s *Simulation) SetBins(n int) {
	s.par.Bins = n
	s.stats.setBins(s.par.Width, n)
}

// SetBin changes the distinguished bin. The dwell accumulated for the
// previous bin is discarded so the probability series stays meaningful.
func (s *Simulation) SetBin(i int) {
	s.par.Bin = i
	s.stats.bin = i
	s.stats.timeInside = 0
}

// Step advances every electron by dt simulated seconds, resolves wall
// and atom collisions, updates the dwell and impulse accumulators and
// appends a history sample when a sampling period has elapsed.
func (s *Simulation) Step(dt float64) {
	s.advance(s.electrons, dt, StepNormal)
	s.stats.timeFull += dt
	s.maybeSample()
}

// Trace predicts the short-term trajectories of all electrons without
// touching the particle store or the statistics. It returns one
// polyline per electron, each starting at the current position and
// containing steps+1 points.
func (s *Simulation) Trace(dt float64, steps int) [][]Point {
	ghost := make([]Particle, len(s.electrons))
	copy(ghost, s.electrons)
	paths := make([][]Point, len(ghost))
	for i := range ghost {
		paths[i] = append(make([]Point, 0, steps+1), ghost[i].Pos)
	}
	for k := 0; k < steps; k++ {
		s.advance(ghost, dt, StepSpeculative)
		for i := range ghost {
			paths[i] = append(paths[i], ghost[i].Pos)
		}
	}
	return paths
}

// advance integrates one step over the given store. Wall impulse and
// dwell time are accumulated only in StepNormal mode.
func (s *Simulation) advance(ps []Particle, dt float64, mode StepMode) {
	step := s.par.Speed * dt
	n := float64(len(ps))
	for i := range ps {
		old := ps[i].Pos
		sin, cos := math.Sincos(ps[i].Dir)
		p := Point{X: old.X + step*cos, Y: old.Y + step*sin}
		p, dir, imp := reflectBounds(p, ps[i].Dir, s.par.Width, s.par.Height, s.par.ElectronR)
		p, dir = s.reflectAtom(old, p, dir)
		ps[i].Pos, ps[i].Dir = p, dir
		if mode == StepNormal {
			s.stats.impulseSum += imp
			s.stats.dwell(old.X, p.X, dt/n)
		}
	}
}

package lorentzgas

import "math"

// placeTrials bounds the rejection sampling when synthesizing a random
// electron: after this many draws overlapping an atom, the last draw is
// accepted as is.
const placeTrials = 9

// Add appends one electron at (x, y) heading in direction dir.
// The position is not validated against the arena bounds.
func (s *Simulation) Add(x, y, dir float64) {
	s.electrons = append(s.electrons, Particle{Pos: Point{X: x, Y: y}, Dir: normDir(dir)})
}

// Count returns the number of electrons.
func (s *Simulation) Count() int { return len(s.electrons) }

// Electrons returns a copy of the particle states in drawing order.
func (s *Simulation) Electrons() []Particle {
	out := make([]Particle, len(s.electrons))
	copy(out, s.electrons)
	return out
}

// SetCount truncates the store from the end when n is below the current
// count, and fills it with randomly placed electrons when n is above.
func (s *Simulation) SetCount(n int) {
	if n < 0 {
		n = 0
	}
	if n <= len(s.electrons) {
		s.electrons = s.electrons[:n]
		return
	}
	for len(s.electrons) < n {
		s.electrons = append(s.electrons, s.place())
	}
}

// place draws a uniform random position and direction, rejecting
// positions that overlap an atom. The last of placeTrials draws is kept
// even if it overlaps, so placement never fails in a crowded lattice.
func (s *Simulation) place() Particle {
	var p Particle
	for i := 0; i < placeTrials; i++ {
		p = Particle{
			Pos: Point{X: s.rng.Float64() * s.par.Width, Y: s.rng.Float64() * s.par.Height},
			Dir: 2 * math.Pi * s.rng.Float64(),
		}
		if s.clearOfAtoms(p.Pos) {
			break
		}
	}
	return p
}

// clearOfAtoms reports whether an electron centered at p overlaps none
// of the candidate atoms around it.
func (s *Simulation) clearOfAtoms(p Point) bool {
	r := s.lattice.AtomR + s.par.ElectronR
	for _, c := range s.lattice.Candidates(p) {
		if c.Dist <= r {
			return false
		}
	}
	return true
}

// Clear removes all electrons and resets the statistics and histories.
func (s *Simulation) Clear() {
	s.electrons = s.electrons[:0]
	s.stats.clear(s.par.Width, s.par.Bins, s.par.Bin)
}

// A Snapshot is a saved copy of the particle store. The zero Snapshot
// is empty and loading it is a no-op.
type Snapshot struct {
	electrons []Particle
}

// Save returns a snapshot of the current particle states.
func (s *Simulation) Save() Snapshot {
	es := make([]Particle, len(s.electrons))
	copy(es, s.electrons)
	return Snapshot{electrons: es}
}

// Load restores a previously saved snapshot.
func (s *Simulation) Load(snap Snapshot) {
	if snap.electrons == nil {
		return
	}
	s.electrons = append(s.electrons[:0], snap.electrons...)
}

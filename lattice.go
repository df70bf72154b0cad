package lorentzgas

import "math"

// A Lattice is the square grid of atoms filling the arena.
// Atom centers sit at (XBegin + i*Side, YBegin + j*Side) for i, j ≥ 0.
type Lattice struct {
	Side   float64 // cell spacing
	AtomR  float64 // atom radius
	XBegin float64 // phase offset of the first column, in (0, Side]
	YBegin float64 // phase offset of the first row, in (0, Side]
}

// NewLattice computes the lattice for an arena of the given size.
// side must be > 0.
func NewLattice(width, height, side, atomR float64) Lattice {
	return Lattice{
		Side:   side,
		AtomR:  atomR,
		XBegin: phase(width, side),
		YBegin: phase(height, side),
	}
}

// phase returns the grid offset for one axis: the remainder of the span
// by the spacing, or the full spacing when the remainder is zero.
func phase(span, side float64) float64 {
	if r := math.Mod(span, side); r != 0 {
		return r
	}
	return side
}

// A Candidate is one of the grid points that could be the atom
// nearest to a query point.
type Candidate struct {
	Center Point
	Dist   float64 // distance from the query point to Center
}

// Candidates returns the four grid points surrounding p: the
// floor/ceil combinations of p's cell coordinates. The true nearest
// atom is always among them.
func (l Lattice) Candidates(p Point) [4]Candidate {
	fx := math.Floor((p.X - l.XBegin) / l.Side)
	fy := math.Floor((p.Y - l.YBegin) / l.Side)
	var cs [4]Candidate
	k := 0
	for _, i := range [2]float64{fx, fx + 1} {
		for _, j := range [2]float64{fy, fy + 1} {
			c := Point{X: i*l.Side + l.XBegin, Y: j*l.Side + l.YBegin}
			cs[k] = Candidate{Center: c, Dist: math.Hypot(p.X-c.X, p.Y-c.Y)}
			k++
		}
	}
	return cs
}

// Nearest returns the candidate center closest to p.
func (l Lattice) Nearest(p Point) Candidate {
	cs := l.Candidates(p)
	min := cs[0]
	for _, c := range cs[1:] {
		if c.Dist < min.Dist {
			min = c
		}
	}
	return min
}

package lorentzgas

import "math"

// normDir wraps an angle into [0, 2π).
func normDir(d float64) float64 {
	d = math.Mod(d, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	return d
}

// reflectBounds mirrors a position that overshot the arena walls back
// inside, flipping the direction about the wall it crossed. The
// effective bounds are inset by the electron radius. Each violated side
// is corrected independently: a corner overshoot gets both corrections,
// an approximation of the true corner bounce.
//
// The returned impulse is the total overshoot magnitude, the model's
// proxy for momentum transferred to the walls.
func reflectBounds(p Point, dir float64, width, height, electronR float64) (Point, float64, float64) {
	var impulse float64
	w := width - electronR
	h := height - electronR
	if dy := p.Y - h; dy > 0 {
		p.Y = h - dy
		dir = 2*math.Pi - dir
		impulse += dy
	}
	if dx := p.X - w; dx > 0 {
		p.X = w - dx
		dir = 3*math.Pi - dir
		impulse += dx
	}
	if p.Y < electronR {
		impulse += electronR - p.Y
		p.Y = 2*electronR - p.Y
		dir = 2*math.Pi - dir
	}
	if p.X < electronR {
		impulse += electronR - p.X
		p.X = 2*electronR - p.X
		dir = 3*math.Pi - dir
	}
	return p, normDir(dir), impulse
}

// reflectAtom bounces an electron off the nearest atom when its post-step
// position overlaps one. p0 is the pre-step position, p the position
// after boundary reflection. The electron travels straight to the exact
// point of impact, reflects specularly, and spends the remaining travel
// distance along the new direction. Only the first atom hit in a step is
// resolved; the continued travel is not re-checked against a second atom
// or the walls within the same step.
func (s *Simulation) reflectAtom(p0, p Point, dir float64) (Point, float64) {
	c := s.lattice.Nearest(p)
	r := s.lattice.AtomR + s.par.ElectronR
	if c.Dist > r {
		return p, dir
	}

	// incidence angle at the overlapping endpoint
	beta := math.Atan2(p.Y-c.Center.Y, p.X-c.Center.X)
	out := normDir(2*beta - dir - math.Pi)

	// time of impact t along p0→p: |p0 + t·(p-p0) - c|² = r²,
	// earlier root of the quadratic
	dx, dy := p.X-p0.X, p.Y-p0.Y
	ex, ey := p0.X-c.Center.X, p0.Y-c.Center.Y
	a := dx*dx + dy*dy
	b := 2 * (dx*ex + dy*ey)
	q := ex*ex + ey*ey - r*r
	disc := b*b - 4*a*q
	if a == 0 || disc < 0 {
		// the segment never actually crosses the atom boundary:
		// the endpoint test was a near miss, skip the bounce
		return p, dir
	}
	t := (-b - math.Sqrt(disc)) / (2 * a)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	hit := Point{X: p0.X + t*dx, Y: p0.Y + t*dy}

	rest := (1 - t) * math.Hypot(dx, dy)
	sin, cos := math.Sincos(out)
	return Point{X: hit.X + rest*cos, Y: hit.Y + rest*sin}, out
}

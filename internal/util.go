package internal

// Exact predicates. Everything here works on rationals, so there is no
// tolerance anywhere: collinear means exactly collinear.

// Sign of the cross product (b-a) x (c-a).
func orientation(a, b, c Point) Orientation {
	var abx, aby, acx, acy, l, r Scalar
	abx.Sub(b.rx(), a.rx())
	aby.Sub(b.ry(), a.ry())
	acx.Sub(c.rx(), a.rx())
	acy.Sub(c.ry(), a.ry())
	l.Mul(&abx, &acy)
	r.Mul(&aby, &acx)
	return Orientation(l.Cmp(&r))
}

// Lexicographic order, x first.
func CompareXY(a, b Point) int {
	if c := a.rx().Cmp(b.rx()); c != 0 {
		return c
	}
	return a.ry().Cmp(b.ry())
}

// Often we want to treat a slice as a circular buffer. This gives the modular
// index for length n, but unlike the raw modulo operator, it only gives
// positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Which half of the direction circle (b - a) lies in: 0 for angles in [0, pi),
// 1 for [pi, 2pi). Together with the cross product this orders directions by
// angle without trigonometry.
func directionHalf(a, b Point) int {
	dy := new(Scalar).Sub(b.ry(), a.ry())
	if dy.Sign() > 0 {
		return 0
	}
	if dy.Sign() == 0 && new(Scalar).Sub(b.rx(), a.rx()).Sign() > 0 {
		return 0
	}
	return 1
}

// Compare the directions of a->b and a->c by counterclockwise angle from the
// positive x axis. Returns -1, 0 or 1.
func compareDirections(a, b, c Point) int {
	hb, hc := directionHalf(a, b), directionHalf(a, c)
	if hb != hc {
		if hb < hc {
			return -1
		}
		return 1
	}
	switch orientation(a, b, c) {
	case CounterClockwise:
		return -1
	case Clockwise:
		return 1
	}
	return 0
}

// Twice the signed area of a closed ring, positive when counterclockwise.
func doubleSignedArea(ring []Point) *Scalar {
	sum := new(Scalar)
	var term, tmp Scalar
	for i, p := range ring {
		q := ring[CircularIndex(i+1, len(ring))]
		term.Mul(p.rx(), q.ry())
		tmp.Mul(q.rx(), p.ry())
		term.Sub(&term, &tmp)
		sum.Add(sum, &term)
	}
	return sum
}

// Winding number of the ring around p. The point must not lie on the ring.
func windingNumber(ring []Point, p Point) int {
	w := 0
	for i, a := range ring {
		b := ring[CircularIndex(i+1, len(ring))]
		if a.ry().Cmp(p.ry()) <= 0 {
			if b.ry().Cmp(p.ry()) > 0 && orientation(a, b, p) == CounterClockwise {
				w++
			}
		} else if b.ry().Cmp(p.ry()) <= 0 && orientation(a, b, p) == Clockwise {
			w--
		}
	}
	return w
}

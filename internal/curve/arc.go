package curve

import "math"

// cubicArcSegment is one of at most four cubic approximations an
// elliptical arc is split into, each spanning at most π/2.
type cubicArcSegment struct {
	cx0, cy0, cx1, cy1, x1, y1 float64
}

// ArcToCubics converts SVG-style endpoint arc parameters to center
// parameterization and returns its decomposition into at most four
// cubic Bezier segments, each handed to the cubic subdivider by Arc.
// Grounded on the endpoint-to-center conversion in the SVG 1.1
// Implementation Notes, the same algorithm AGG's internal/bezierarc
// package implements for its arc_to path command.
func arcToCubics(x0, y0, rx, ry, xAxisRotationDeg float64, largeArc, sweep bool, x1, y1 float64) []cubicArcSegment {
	rx = math.Abs(rx)
	ry = math.Abs(ry)
	if rx < 1e-12 || ry < 1e-12 {
		return []cubicArcSegment{{x0, y0, x1, y1, x1, y1}}
	}

	phi := xAxisRotationDeg * math.Pi / 180.0
	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)

	dx2 := (x0 - x1) / 2
	dy2 := (y0 - y1) / 2
	x1p := cosPhi*dx2 + sinPhi*dy2
	y1p := -sinPhi*dx2 + cosPhi*dy2

	lambda := (x1p*x1p)/(rx*rx) + (y1p*y1p)/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	sign := 1.0
	if largeArc == sweep {
		sign = -1.0
	}
	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	co := 0.0
	if den > 1e-12 && num > 0 {
		co = sign * math.Sqrt(num/den)
	}
	cxp := co * (rx * y1p / ry)
	cyp := co * -(ry * x1p / rx)

	cx := cosPhi*cxp - sinPhi*cyp + (x0+x1)/2
	cy := sinPhi*cxp + cosPhi*cyp + (y0+y1)/2

	angle := func(ux, uy, vx, vy float64) float64 {
		dot := ux*vx + uy*vy
		l := math.Sqrt((ux*ux+uy*uy)*(vx*vx+vy*vy))
		a := math.Acos(clamp(dot/l, -1, 1))
		if ux*vy-uy*vx < 0 {
			a = -a
		}
		return a
	}

	theta1 := angle(1, 0, (x1p-cxp)/rx, (y1p-cyp)/ry)
	dtheta := angle((x1p-cxp)/rx, (y1p-cyp)/ry, (-x1p-cxp)/rx, (-y1p-cyp)/ry)
	if !sweep && dtheta > 0 {
		dtheta -= 2 * math.Pi
	} else if sweep && dtheta < 0 {
		dtheta += 2 * math.Pi
	}

	numSegs := int(math.Ceil(math.Abs(dtheta) / (math.Pi / 2)))
	if numSegs < 1 {
		numSegs = 1
	}
	if numSegs > 4 {
		numSegs = 4
	}
	segTheta := dtheta / float64(numSegs)

	segs := make([]cubicArcSegment, 0, numSegs)
	curX, curY := x0, y0
	t := theta1
	alpha := 4.0 / 3.0 * math.Tan(segTheta/4)

	pointAt := func(theta float64) (float64, float64) {
		ex := rx * math.Cos(theta)
		ey := ry * math.Sin(theta)
		return cx + cosPhi*ex - sinPhi*ey, cy + sinPhi*ex + cosPhi*ey
	}
	tangentAt := func(theta float64) (float64, float64) {
		ex := -rx * math.Sin(theta)
		ey := ry * math.Cos(theta)
		return cosPhi*ex - sinPhi*ey, sinPhi*ex + cosPhi*ey
	}

	for i := 0; i < numSegs; i++ {
		t2 := t + segTheta
		endX, endY := pointAt(t2)
		if i == numSegs-1 {
			endX, endY = x1, y1
		}
		tx0, ty0 := tangentAt(t)
		tx1, ty1 := tangentAt(t2)

		cx0 := curX + alpha*tx0
		cy0 := curY + alpha*ty0
		cx1 := endX - alpha*tx1
		cy1 := endY - alpha*ty1

		segs = append(segs, cubicArcSegment{cx0, cy0, cx1, cy1, endX, endY})
		curX, curY = endX, endY
		t = t2
	}
	return segs
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Arc flattens an SVG-style elliptical arc segment into line vertices,
// by converting to center parameterization, splitting into at most four
// cubic segments spanning ≤π/2 each, then handing each to the cubic
// subdivider.
func Arc(x0, y0, rx, ry, xAxisRotationDeg float64, largeArc, sweep bool, x1, y1, flatness float64, sink Sink) {
	segs := arcToCubics(x0, y0, rx, ry, xAxisRotationDeg, largeArc, sweep, x1, y1)
	cx, cy := x0, y0
	for _, s := range segs {
		Cubic(cx, cy, s.cx0, s.cy0, s.cx1, s.cy1, s.x1, s.y1, flatness, sink)
		cx, cy = s.x1, s.y1
	}
}

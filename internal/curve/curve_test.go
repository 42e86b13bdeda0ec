package curve

import (
	"math"
	"testing"
)

type recorder struct {
	pts [][2]float64
}

func (r *recorder) LineTo(x, y float64) { r.pts = append(r.pts, [2]float64{x, y}) }

func TestQuadraticLineSegmentCollapses(t *testing.T) {
	// A "quadratic" whose control point lies on the chord should flatten
	// to a single segment regardless of flatness.
	r := &recorder{}
	Quadratic(0, 0, 5, 0, 10, 0, DefaultFlatness, r)
	if len(r.pts) == 0 {
		t.Fatal("expected at least one emitted point")
	}
	last := r.pts[len(r.pts)-1]
	if last[0] != 10 || last[1] != 0 {
		t.Errorf("last point = %v, want (10,0)", last)
	}
}

func TestQuadraticEndsAtExactEndpoint(t *testing.T) {
	r := &recorder{}
	Quadratic(0, 0, 50, 100, 100, 0, DefaultFlatness, r)
	last := r.pts[len(r.pts)-1]
	if math.Abs(last[0]-100) > 1e-9 || math.Abs(last[1]-0) > 1e-9 {
		t.Errorf("last point = %v, want (100,0)", last)
	}
	if len(r.pts) < 2 {
		t.Errorf("expected subdivision to emit multiple segments, got %d", len(r.pts))
	}
}

func TestCubicEndsAtExactEndpoint(t *testing.T) {
	r := &recorder{}
	Cubic(0, 0, 0, 100, 100, 100, 100, 0, DefaultFlatness, r)
	last := r.pts[len(r.pts)-1]
	if math.Abs(last[0]-100) > 1e-9 || math.Abs(last[1]-0) > 1e-9 {
		t.Errorf("last point = %v, want (100,0)", last)
	}
}

func TestRecursionDepthBound(t *testing.T) {
	// An extremely tight flatness should still terminate within
	// MaxRecursionDepth doublings, never hanging.
	r := &recorder{}
	Cubic(0, 0, 0, 1000, 1000, 1000, 1000, 0, 1e-9, r)
	maxPts := 1 << (MaxRecursionDepth + 1)
	if len(r.pts) > maxPts {
		t.Errorf("got %d points, want <= %d (2^(depth+1) bound)", len(r.pts), maxPts)
	}
}

func TestReflect(t *testing.T) {
	x, y := Reflect(5, 5, 3, 3)
	if x != 7 || y != 7 {
		t.Errorf("Reflect(5,5,3,3) = (%v,%v), want (7,7)", x, y)
	}
}

func TestArcQuarterCircle(t *testing.T) {
	r := &recorder{}
	// Quarter circle radius 10 from (10,0) to (0,10), center at origin.
	Arc(10, 0, 10, 10, 0, false, true, 0, 10, DefaultFlatness, r)
	if len(r.pts) == 0 {
		t.Fatal("expected emitted points")
	}
	last := r.pts[len(r.pts)-1]
	if math.Abs(last[0]-0) > 1e-6 || math.Abs(last[1]-10) > 1e-6 {
		t.Errorf("last point = %v, want (0,10)", last)
	}
	for _, p := range r.pts {
		d := math.Hypot(p[0], p[1])
		if math.Abs(d-10) > 0.1 {
			t.Errorf("point %v distance from center = %v, want ~10", p, d)
		}
	}
}

func TestArcDegenerateRadiusIsLine(t *testing.T) {
	r := &recorder{}
	Arc(0, 0, 0, 0, 0, false, true, 5, 5, DefaultFlatness, r)
	if len(r.pts) != 1 || r.pts[0] != [2]float64{5, 5} {
		t.Errorf("degenerate arc = %v, want single point (5,5)", r.pts)
	}
}

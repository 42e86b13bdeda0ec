package matrix

import (
	"math"
	"testing"

	"github.com/rastereng/vgraphics/internal/geom"
)

func TestClassifyIdentity(t *testing.T) {
	if got := NewIdentity().Kind(); got != Identity {
		t.Errorf("classify(identity) = %v, want Identity", got)
	}
}

func TestClassifyTranslate(t *testing.T) {
	if got := NewTranslate(0, 0).Kind(); got != Identity {
		t.Errorf("classify(translate(0,0)) = %v, want Identity", got)
	}
	if got := NewTranslate(5, -3).Kind(); got != Affine {
		t.Errorf("classify(translate(5,-3)) = %v, want Affine", got)
	}
}

func TestClassifyRotate(t *testing.T) {
	if got := NewRotate(math.Pi / 4).Kind(); got != Affine {
		t.Errorf("classify(rotate) = %v, want Affine", got)
	}
}

func TestComposeAffineStaysAffine(t *testing.T) {
	a := NewTranslate(1, 2)
	b := NewRotate(0.3)
	got := Compose(a, b).Kind()
	if got != Affine {
		t.Errorf("classify(compose(affine,affine)) = %v, want Affine", got)
	}
}

func TestClassifyProjective(t *testing.T) {
	m := New(1, 0, 0, 0, 1, 0, 0.001, 0, 1)
	if got := m.Kind(); got != Projective {
		t.Errorf("classify(m with zx!=0) = %v, want Projective", got)
	}
}

func TestInverseRoundTrip(t *testing.T) {
	m := Compose(NewTranslate(10, -5), Compose(NewRotate(0.7), NewScale(2, 3)))
	inv, err := m.Inverse()
	if err != nil {
		t.Fatalf("Inverse() error: %v", err)
	}
	p := geom.Point{X: 3, Y: 4}
	got := inv.PointTransform(m.PointTransform(p))
	if math.Abs(got.X-p.X) > 1e-9 || math.Abs(got.Y-p.Y) > 1e-9 {
		t.Errorf("round trip = %+v, want %+v", got, p)
	}
}

func TestInverseSingular(t *testing.T) {
	m := New(0, 0, 0, 0, 0, 0, 0, 0, 1)
	if _, err := m.Inverse(); err != ErrSingular {
		t.Errorf("Inverse() err = %v, want ErrSingular", err)
	}
}

func TestAff3RoundTrip(t *testing.T) {
	m := Compose(NewTranslate(4, 5), NewRotate(0.2))
	back := FromAff3(m.Affine())
	if math.Abs(back.Xx-m.Xx) > 1e-9 || math.Abs(back.Xz-m.Xz) > 1e-9 {
		t.Errorf("FromAff3(m.Affine()) = %+v, want %+v", back, m)
	}
}

func TestRectangleTransformIdentity(t *testing.T) {
	m := NewIdentity()
	q := m.RectangleTransform(geom.Rect{X: 1, Y: 2, W: 3, H: 4})
	want := geom.Quad{X0: 1, Y0: 2, X1: 4, Y1: 2, X2: 4, Y2: 6, X3: 1, Y3: 6}
	if q != want {
		t.Errorf("RectangleTransform(identity) = %+v, want %+v", q, want)
	}
}

func TestF16p16Conversion(t *testing.T) {
	m := NewScale(2, 3)
	fp := m.ToF16p16()
	if fixedToDouble(fp.Xx) != 2 || fixedToDouble(fp.Yy) != 3 {
		t.Errorf("ToF16p16 scale mismatch: %+v", fp)
	}
}

func fixedToDouble(v int32) float64 { return float64(v) / 65536.0 }

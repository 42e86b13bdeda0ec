package fixed

import "testing"

func TestFromIntToInt(t *testing.T) {
	cases := []int{-100, -1, 0, 1, 42, 1 << 14}
	for _, v := range cases {
		got := ToInt(FromInt(v))
		if got != v {
			t.Errorf("ToInt(FromInt(%d)) = %d, want %d", v, got, v)
		}
	}
}

func TestFromDoubleToDouble(t *testing.T) {
	cases := []float64{0, 1, 0.5, -0.5, 3.25, -128.0625}
	for _, v := range cases {
		got := ToDouble(FromDouble(v))
		if diff := got - v; diff < -1e-4 || diff > 1e-4 {
			t.Errorf("ToDouble(FromDouble(%v)) = %v, want ~%v", v, got, v)
		}
	}
}

func TestMul(t *testing.T) {
	two := FromInt(2)
	three := FromInt(3)
	if got := Mul(two, three); got != FromInt(6) {
		t.Errorf("Mul(2,3) = %v, want %v", got, FromInt(6))
	}

	half := FromDouble(0.5)
	if got := Mul(half, half); got != FromDouble(0.25) {
		t.Errorf("Mul(0.5,0.5) = %v, want %v", got, FromDouble(0.25))
	}
}

func TestDiv(t *testing.T) {
	ten := FromInt(10)
	four := FromInt(4)
	got := ToDouble(Div(ten, four))
	if diff := got - 2.5; diff < -1e-4 || diff > 1e-4 {
		t.Errorf("Div(10,4) = %v, want 2.5", got)
	}
}

func TestFractionalPart(t *testing.T) {
	v := FromDouble(3.25)
	frac := FractionalPart(v)
	if got := ToDouble(frac); got != 0.25 {
		t.Errorf("FractionalPart(3.25) = %v, want 0.25", got)
	}
}

func TestOne(t *testing.T) {
	if ToInt(One) != 1 {
		t.Errorf("One should equal FromInt(1)")
	}
}

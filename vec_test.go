package liquidglass

import (
	"math"
	"testing"
)

func TestVec2Arithmetic(t *testing.T) {
	v := V2(3, 4)
	if got := v.Add(V2(1, -2)); got != (Vec2{4, 2}) {
		t.Errorf("Add = %+v", got)
	}
	if got := v.Sub(V2(1, 1)); got != (Vec2{2, 3}) {
		t.Errorf("Sub = %+v", got)
	}
	if got := v.Mul(2); got != (Vec2{6, 8}) {
		t.Errorf("Mul = %+v", got)
	}
	if got := v.Dot(V2(2, 1)); got != 10 {
		t.Errorf("Dot = %v", got)
	}
	if got := v.Length(); got != 5 {
		t.Errorf("Length = %v", got)
	}
}

func TestVec2Normalize(t *testing.T) {
	n := V2(3, 4).Normalize()
	if math.Abs(n.Length()-1) > 1e-12 {
		t.Errorf("normalized length = %v", n.Length())
	}
	if got := V2(0, 0).Normalize(); !got.IsZero() {
		t.Errorf("Normalize of zero = %+v, want zero", got)
	}
}

func TestVec2Approx(t *testing.T) {
	if !V2(1, 1).Approx(V2(1+1e-9, 1-1e-9), 1e-6) {
		t.Error("Approx rejected nearly-equal vectors")
	}
	if V2(1, 1).Approx(V2(1.1, 1), 1e-6) {
		t.Error("Approx accepted distinct vectors")
	}
}

func TestVec3Arithmetic(t *testing.T) {
	v := V3(1, 2, 2)
	if got := v.Length(); got != 3 {
		t.Errorf("Length = %v", got)
	}
	if got := v.Dot(V3(2, 0, 1)); got != 4 {
		t.Errorf("Dot = %v", got)
	}
	if got := v.Add(V3(1, 1, 1)); got != (Vec3{2, 3, 3}) {
		t.Errorf("Add = %+v", got)
	}
	if got := v.Sub(V3(1, 2, 2)); got != (Vec3{}) {
		t.Errorf("Sub = %+v", got)
	}
	if got := v.Mul(3); got != (Vec3{3, 6, 6}) {
		t.Errorf("Mul = %+v", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := V3(0, 3, 4).Normalize()
	if math.Abs(n.Length()-1) > 1e-12 {
		t.Errorf("normalized length = %v", n.Length())
	}
	if !n.Approx(Vec3{0, 0.6, 0.8}, 1e-12) {
		t.Errorf("Normalize = %+v", n)
	}
	if got := V3(0, 0, 0).Normalize(); got != (Vec3{}) {
		t.Errorf("Normalize of zero = %+v, want zero", got)
	}
}

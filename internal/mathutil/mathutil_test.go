package mathutil

import (
	"math"
	"testing"
)

func vecClose(a, b Vec3, eps float64) bool {
	return a.Sub(b).Len() <= eps
}

func TestRotationQuarterTurns(t *testing.T) {
	q := math.Pi / 2
	tests := []struct {
		name string
		m    Mat3
		in   Vec3
		want Vec3
	}{
		{"RotX +90 sends y to z", RotX(q), Vec3{0, 1, 0}, Vec3{0, 0, 1}},
		{"RotX -90 sends y to -z", RotX(-q), Vec3{0, 1, 0}, Vec3{0, 0, -1}},
		{"RotY +90 sends z to x", RotY(q), Vec3{0, 0, 1}, Vec3{1, 0, 0}},
		{"RotZ +90 sends x to y", RotZ(q), Vec3{1, 0, 0}, Vec3{0, 1, 0}},
		{"RotZ -90 sends y to x", RotZ(-q), Vec3{0, 1, 0}, Vec3{1, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.MulVec3(tt.in)
			if !vecClose(got, tt.want, 1e-12) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEulerZYXSingleAxisMatchesAxisRotation(t *testing.T) {
	a := 0.7
	if EulerZYX(a, 0, 0) != RotX(a) {
		t.Error("EulerZYX(a,0,0) != RotX(a)")
	}
	if EulerZYX(0, a, 0) != RotY(a) {
		t.Error("EulerZYX(0,a,0) != RotY(a)")
	}
	if EulerZYX(0, 0, a) != RotZ(a) {
		t.Error("EulerZYX(0,0,a) != RotZ(a)")
	}
}

func TestMat3TransposeInvertsRotation(t *testing.T) {
	r := EulerZYX(0.3, -1.1, 0.5)
	round := Mat3Mul(r.Transpose(), r)
	id := Mat3Identity()
	for i := range round {
		if math.Abs(round[i]-id[i]) > 1e-12 {
			t.Fatalf("Rᵀ·R not identity at %d: %v", i, round[i])
		}
	}
}

func TestMat4Compose(t *testing.T) {
	// Rotate 90° about z, then translate: the composed transform must
	// apply rotation before translation.
	r := FromMat3Translation(RotZ(math.Pi/2), Vec3{5, 0, 0})
	got := r.MulPoint(Vec3{1, 0, 0})
	want := Vec3{5, 1, 0}
	if !vecClose(got, want, 1e-12) {
		t.Errorf("got %v, want %v", got, want)
	}

	// Composing with a leading translation offsets the rotation center.
	m := Mat4Mul(r, Translation(Vec3{0, 1, 0}))
	got = m.MulPoint(Vec3{})
	want = Vec3{4, 0, 0}
	if !vecClose(got, want, 1e-12) {
		t.Errorf("composed got %v, want %v", got, want)
	}

	if !Mat4Identity().IsIdentity() {
		t.Error("Mat4Identity not identity")
	}
	if m.IsIdentity() {
		t.Error("composed matrix reported as identity")
	}
}

func TestLerpExactEndpoints(t *testing.T) {
	a, b := 0.1, 0.3
	if Lerp(a, b, 0) != a {
		t.Errorf("Lerp(a,b,0) = %v, want exactly %v", Lerp(a, b, 0), a)
	}
	if Lerp(a, b, 1) != b {
		t.Errorf("Lerp(a,b,1) = %v, want exactly %v", Lerp(a, b, 1), b)
	}
	if got := Lerp(0, 10, 0.25); math.Abs(got-2.5) > 1e-12 {
		t.Errorf("Lerp(0,10,0.25) = %v, want 2.5", got)
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{-3, 0}, {0, 0}, {0.4, 0.4}, {1, 1}, {7, 1},
	}
	for _, tt := range tests {
		if got := Clamp01(tt.in); got != tt.want {
			t.Errorf("Clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestVec3Basics(t *testing.T) {
	v := Vec3{3, 0, 4}
	if v.Len() != 5 {
		t.Errorf("Len() = %v, want 5", v.Len())
	}
	if !vecClose(v.Normalize(), Vec3{0.6, 0, 0.8}, 1e-12) {
		t.Errorf("Normalize() = %v", v.Normalize())
	}
	if (Vec3{}).Normalize() != (Vec3{}) {
		t.Error("zero vector must normalize to zero")
	}
	if got := (Vec3{1, 0, 0}).Cross(Vec3{0, 1, 0}); got != (Vec3{0, 0, 1}) {
		t.Errorf("x × y = %v, want z", got)
	}
	if !(Vec3{1e-12, 0, 0}).IsZero(1e-9) {
		t.Error("IsZero failed for tiny vector")
	}
}

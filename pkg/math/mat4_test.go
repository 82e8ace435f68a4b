package math

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			want := float32(0)
			if row == col {
				want = 1
			}
			if got := m.At(row, col); got != want {
				t.Errorf("Identity().At(%d, %d) = %f, want %f", row, col, got, want)
			}
		}
	}
}

func TestSetAt(t *testing.T) {
	var m Mat4
	m.Set(1, 3, 7)
	if m[13] != 7 {
		t.Errorf("Set(1, 3) stored at wrong index: %v", m)
	}
	if got := m.At(1, 3); got != 7 {
		t.Errorf("At(1, 3) = %f, want 7", got)
	}

	// Out of range is ignored / reads zero
	m.Set(4, 0, 1)
	m.Set(-1, 0, 1)
	if got := m.At(5, 5); got != 0 {
		t.Errorf("At(5, 5) = %f, want 0", got)
	}
}

func TestTranslateTransformPoint(t *testing.T) {
	m := Translate(10, 20, 30)
	got := m.TransformPoint(Point3{1, 2, 3})
	want := Point3{11, 22, 33}
	if got != want {
		t.Errorf("TransformPoint: got %v, want %v", got, want)
	}

	// Directions ignore translation
	d := m.TransformDirection(Vec3{1, 2, 3})
	if d != (Vec3{1, 2, 3}) {
		t.Errorf("TransformDirection: got %v, want (1, 2, 3)", d)
	}
}

func TestScaleTransformPoint(t *testing.T) {
	m := Scale(2, 2, 2)
	got := m.TransformPoint(Point3{1, 2, 3})
	want := Point3{2, 4, 6}
	if got != want {
		t.Errorf("TransformPoint with scale: got %v, want %v", got, want)
	}
}

func TestRotations(t *testing.T) {
	quarter := float32(math.Pi / 2)
	tests := []struct {
		name string
		m    Mat4
		in   Vec3
		want Vec3
	}{
		{"RotateX +Y", RotateX(quarter), Vec3{0, 1, 0}, Vec3{0, 0, 1}},
		{"RotateY +X", RotateY(quarter), Vec3{1, 0, 0}, Vec3{0, 0, -1}},
		{"RotateY +Z", RotateY(quarter), Vec3{0, 0, 1}, Vec3{1, 0, 0}},
		{"RotateZ +X", RotateZ(quarter), Vec3{1, 0, 0}, Vec3{0, 1, 0}},
	}

	for _, tt := range tests {
		got := tt.m.TransformDirection(tt.in)
		if !vecNear(got, tt.want, 1e-5) {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRotationsMatchMathgl(t *testing.T) {
	for _, angle := range []float32{-2.5, -0.3, 0, 0.7, 3.1} {
		pairs := []struct {
			name string
			got  Mat4
			want mgl32.Mat4
		}{
			{"x", RotateX(angle), mgl32.HomogRotate3DX(angle)},
			{"y", RotateY(angle), mgl32.HomogRotate3DY(angle)},
			{"z", RotateZ(angle), mgl32.HomogRotate3DZ(angle)},
		}
		for _, p := range pairs {
			if !matNear(p.got, p.want, 1e-5) {
				t.Errorf("Rotate%s(%f) = %v, want %v", p.name, angle, p.got, p.want)
			}
		}
	}
}

func TestMulMatchesMathgl(t *testing.T) {
	a := Translate(1, -2, 3).Mul(RotateY(0.4))
	b := RotateX(-1.1).Mul(Scale(2, 3, 4))

	ma := mgl32.Translate3D(1, -2, 3).Mul4(mgl32.HomogRotate3DY(0.4))
	mb := mgl32.HomogRotate3DX(-1.1).Mul4(mgl32.Scale3D(2, 3, 4))

	if !matNear(a.Mul(b), ma.Mul4(mb), 1e-5) {
		t.Errorf("Mul mismatch: got %v, want %v", a.Mul(b), ma.Mul4(mb))
	}
}

func TestMulOrder(t *testing.T) {
	// Translate * Rotate rotates first, then translates
	m := Translate(5, 0, 0).Mul(RotateZ(float32(math.Pi / 2)))
	got := m.TransformPoint(Point3{1, 0, 0})
	if !vecNear(got.Vec(), Vec3{5, 1, 0}, 1e-5) {
		t.Errorf("T*R applied to (1,0,0) = %v, want (5, 1, 0)", got)
	}
}

func TestLookAtMatchesMathgl(t *testing.T) {
	eye := Point3{0.05, 0.045, 0.11}
	got := LookAt(eye, Origin, UnitY)
	want := mgl32.LookAtV(mgl32.Vec3{eye.X, eye.Y, eye.Z}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	if !matNear(got, want, 1e-5) {
		t.Errorf("LookAt = %v, want %v", got, want)
	}

	// The eye maps to the view-space origin
	p := got.TransformPoint(eye)
	if !vecNear(p.Vec(), Vec3{}, 1e-5) {
		t.Errorf("LookAt(eye) = %v, want origin", p)
	}
}

func TestLookAtDegenerate(t *testing.T) {
	eye := Point3{1, 2, 3}
	if got := LookAt(eye, eye, UnitY); got != Identity() {
		t.Errorf("LookAt(eye, eye) = %v, want identity", got)
	}
}

func TestOrthoMatchesMathgl(t *testing.T) {
	got := Ortho(-1, 1, -1, 1, -1, 1)
	want := mgl32.Ortho(-1, 1, -1, 1, -1, 1)
	if !matNear(got, want, 1e-6) {
		t.Errorf("Ortho = %v, want %v", got, want)
	}
}

func matNear(got Mat4, want mgl32.Mat4, eps float32) bool {
	for i := range got {
		if abs(got[i]-want[i]) > eps {
			return false
		}
	}
	return true
}

func vecNear(a, b Vec3, eps float32) bool {
	return abs(a.X-b.X) <= eps && abs(a.Y-b.Y) <= eps && abs(a.Z-b.Z) <= eps
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

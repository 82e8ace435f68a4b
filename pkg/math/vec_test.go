package math

import (
	"math"
	"testing"
)

func TestVec2Add(t *testing.T) {
	got := Vec2{1, 2}.Add(Vec2{3, 4})
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec3Cross(t *testing.T) {
	got := UnitX.Cross(UnitY)
	if got != UnitZ {
		t.Errorf("Vec3.Cross() = %v, want %v", got, UnitZ)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 4, 12}.Normalize()
	if l := n.Length(); l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}

	if z := (Vec3{}).Normalize(); z != (Vec3{}) {
		t.Errorf("zero Normalize() = %v, want zero vector", z)
	}
}

func TestVec3RotateYMatchesMatrix(t *testing.T) {
	v := Vec3{0.3, -1, 2}
	for _, angle := range []float32{-1.2, 0, 0.5, 2.9} {
		got := v.RotateY(angle)
		want := RotateY(angle).TransformDirection(v)
		if !vecNear(got, want, 1e-5) {
			t.Errorf("RotateY(%f) = %v, want %v", angle, got, want)
		}
	}
}

func TestVec3AngleTo(t *testing.T) {
	tests := []struct {
		a, b Vec3
		want float64
	}{
		{UnitZ, UnitZ, 0},
		{UnitZ, UnitX, math.Pi / 2},
		{UnitZ, Vec3{0, 0, -3}, math.Pi},
		{UnitZ, Vec3{1, 0, 1}, math.Pi / 4},
		{Vec3{}, UnitX, 0},
	}

	for _, tt := range tests {
		got := tt.a.AngleTo(tt.b)
		if math.Abs(float64(got)-tt.want) > 1e-4 {
			t.Errorf("%v.AngleTo(%v) = %f, want %f", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestPoint3(t *testing.T) {
	p := Point3{1, 2, 3}.Offset(1, 1, 1)
	if p != (Point3{2, 3, 4}) {
		t.Errorf("Offset() = %v, want (2, 3, 4)", p)
	}

	d := Point3{3, 0, 4}.DistanceFrom(Origin)
	if d != 5 {
		t.Errorf("DistanceFrom() = %f, want 5", d)
	}

	// Points and vectors convert freely
	v := p.Vec()
	if Point3(v) != p {
		t.Errorf("round trip through Vec3 changed %v", p)
	}
	if got := Origin.Add(v); got != p {
		t.Errorf("Origin.Add(%v) = %v", v, got)
	}
}

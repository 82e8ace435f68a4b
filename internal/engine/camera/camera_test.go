package camera

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/snowfight/pkg/math"
)

const (
	ws   = 0.03
	rate = gomath.Pi / 20000
)

func newTestCamera() *OrbitCamera {
	return NewOrbitCamera(4*ws, 1.5*ws, rate)
}

func assertPointNear(t *testing.T, want, got math.Point3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-6, "x")
	assert.InDelta(t, want.Y, got.Y, 1e-6, "y")
	assert.InDelta(t, want.Z, got.Z, 1e-6, "z")
}

func TestOrbitStartsOnPositiveZ(t *testing.T) {
	c := newTestCamera()
	assertPointNear(t, math.Point3{Y: 1.5 * ws, Z: 4 * ws}, c.Position())
}

func TestOrbitQuarterTurn(t *testing.T) {
	c := newTestCamera()
	c.Update((gomath.Pi / 2) / rate)
	assertPointNear(t, math.Point3{X: 4 * ws, Y: 1.5 * ws}, c.Position())
}

func TestOrbitKeepsRadiusAndElevation(t *testing.T) {
	c := newTestCamera()
	for _, ms := range []float64{0, 1234, 40000, 1e9} {
		c.Update(ms)
		p := c.Position()
		assert.InDelta(t, 4*ws, math.Vec3{X: p.X, Z: p.Z}.Length(), 1e-6, "t=%v", ms)
		assert.InDelta(t, 1.5*ws, p.Y, 1e-7, "t=%v", ms)
	}
}

func TestViewingVectorPointsAtCenter(t *testing.T) {
	c := newTestCamera()
	c.Update(5000)

	v := c.ViewingVector()
	assert.InDelta(t, 1, v.Length(), 1e-6)
	toCenter := c.Center.Sub(c.Position()).Normalize()
	assert.InDelta(t, 0, v.AngleTo(toCenter), 1e-3)
}

func TestViewMatrixCentersTarget(t *testing.T) {
	c := newTestCamera()
	c.Update(7500)
	view := c.ViewMatrix()

	assertPointNear(t, math.Origin, view.TransformPoint(c.Position()))

	center := view.TransformPoint(c.Center)
	dist := c.Position().DistanceFrom(c.Center)
	assertPointNear(t, math.Point3{Z: -dist}, center)
}

func TestViewProjectionKeepsSceneInClipVolume(t *testing.T) {
	c := newTestCamera()
	c.Update(12000)
	vp := c.ViewProjection()

	for _, p := range []math.Point3{
		c.Center,
		{X: 16 * ws},
		{X: -16 * ws, Z: 16 * ws},
		{Y: 3 * ws},
	} {
		q := vp.TransformPoint(p)
		assert.LessOrEqual(t, gomath.Abs(float64(q.X)), 1.0, "%v", p)
		assert.LessOrEqual(t, gomath.Abs(float64(q.Y)), 1.0, "%v", p)
		assert.LessOrEqual(t, gomath.Abs(float64(q.Z)), 1.0, "%v", p)
	}
}

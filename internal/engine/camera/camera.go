// Package camera provides the orbiting scene camera.
package camera

import (
	gomath "math"

	"github.com/Faultbox/snowfight/pkg/math"
)

// OrbitCamera circles a center point at a fixed radius and elevation,
// turning at a constant angular rate and always looking at the center.
type OrbitCamera struct {
	Center    math.Point3
	Radius    float32 // horizontal distance from Center
	Elevation float32 // height above Center
	Rate      float64 // radians per ms

	// Projection is applied after the view transform.
	Projection math.Mat4

	position math.Point3
}

// NewOrbitCamera creates a camera looking at the origin with an orthographic
// unit-cube projection.
func NewOrbitCamera(radius, elevation float32, rate float64) *OrbitCamera {
	c := &OrbitCamera{
		Center:     math.Origin,
		Radius:     radius,
		Elevation:  elevation,
		Rate:       rate,
		Projection: math.Ortho(-1, 1, -1, 1, -1, 1),
	}
	c.Update(0)
	return c
}

// Update places the camera for the given scene running time in ms.
func (c *OrbitCamera) Update(runningTime float64) {
	angle := float32(gomath.Mod(c.Rate*runningTime, 2*gomath.Pi))
	offset := math.Vec3{Y: c.Elevation, Z: c.Radius}.RotateY(angle)
	c.position = c.Center.Add(offset)
}

// Position returns the camera position from the last Update.
func (c *OrbitCamera) Position() math.Point3 {
	return c.position
}

// ViewingVector returns the unit direction the camera looks along.
func (c *OrbitCamera) ViewingVector() math.Vec3 {
	return c.Center.Sub(c.position).Normalize()
}

// ViewMatrix returns the view matrix for the current position.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.position, c.Center, math.UnitY)
}

// ViewProjection returns Projection * View.
func (c *OrbitCamera) ViewProjection() math.Mat4 {
	return c.Projection.Mul(c.ViewMatrix())
}

// Package lighting holds the scene light.
package lighting

import "github.com/Faultbox/snowfight/pkg/math"

// Ambient is the direction the scene light travels. It is shared by every
// lit draw in a frame.
var Ambient = math.Vec3{X: -0.4, Y: -0.3, Z: -0.4}

// Diffuse returns the Lambert term for a surface normal under light
// travelling along dir. It matches the per-vertex term in the lit shaders.
func Diffuse(normal, dir math.Vec3) float32 {
	d := normal.Normalize().Dot(dir.Normalize().Negate())
	if d < 0 {
		return 0
	}
	return d
}

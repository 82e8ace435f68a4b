// Package geometry builds triangle meshes for the scene: tessellated spheres,
// cones and cylinders plus the flat quads used for the ground and screen
// layers.
package geometry

import "github.com/Faultbox/snowfight/pkg/math"

// Color is an RGBA color with components in the unit interval.
type Color struct {
	R, G, B, A float32
}

// White is the default generator color.
var White = Color{1, 1, 1, 1}

// RGB returns an opaque color.
func RGB(r, g, b float32) Color {
	return Color{r, g, b, 1}
}

// WithAlpha returns a copy of the color with a different alpha value.
func (c Color) WithAlpha(a float32) Color {
	return Color{c.R, c.G, c.B, a}
}

// Vertex is a single mesh vertex.
type Vertex struct {
	Position math.Point3
	Normal   math.Vec3
	Color    Color
	UV       math.Vec2
}

// Triangle is an ordered vertex triple. Front faces wind counter-clockwise,
// so the right-hand normal of (B-A)x(C-A) points outward.
type Triangle [3]Vertex

// FaceNormal returns the unnormalized right-hand normal of t.
func (t Triangle) FaceNormal() math.Vec3 {
	a := t[0].Position
	return t[1].Position.Sub(a).Cross(t[2].Position.Sub(a))
}

// Generator produces a triangle list from its configured parameters.
type Generator interface {
	// Generate rebuilds the triangle list. It returns false and leaves the
	// list empty when a required parameter is missing or non-positive.
	Generate() bool
	Triangles() []Triangle
}

// Transform returns a copy of tris with positions and normals moved by m.
// Normals are renormalized; m is expected to be a rigid transform.
func Transform(tris []Triangle, m math.Mat4) []Triangle {
	out := make([]Triangle, len(tris))
	for i, t := range tris {
		for j, v := range t {
			v.Position = m.TransformPoint(v.Position)
			v.Normal = m.TransformDirection(v.Normal).Normalize()
			out[i][j] = v
		}
	}
	return out
}

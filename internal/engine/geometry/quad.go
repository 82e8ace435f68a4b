package geometry

import "github.com/Faultbox/snowfight/pkg/math"

// GroundPlane returns a square in the y=0 plane spanning [-halfExtent,
// halfExtent] on X and Z, facing +Y.
func GroundPlane(halfExtent float32, color Color) []Triangle {
	h := halfExtent
	up := math.Vec3{Y: 1}
	v := func(x, z, u, w float32) Vertex {
		return Vertex{Position: math.Point3{X: x, Z: z}, Normal: up, Color: color, UV: math.Vec2{X: u, Y: w}}
	}
	nearLeft := v(-h, h, 0, 0)
	nearRight := v(h, h, 1, 0)
	farRight := v(h, -h, 1, 1)
	farLeft := v(-h, -h, 0, 1)

	return []Triangle{
		{farLeft, nearLeft, nearRight},
		{farLeft, nearRight, farRight},
	}
}

// ScreenQuad returns a rectangle in normalized device coordinates at depth z,
// wound counter-clockwise as seen on screen. Texture rows run top to bottom,
// matching image.RGBA uploads.
func ScreenQuad(left, top, right, bottom, z float32, color Color) []Triangle {
	toViewer := math.Vec3{Z: 1}
	v := func(x, y, u, w float32) Vertex {
		return Vertex{Position: math.Point3{X: x, Y: y, Z: z}, Normal: toViewer, Color: color, UV: math.Vec2{X: u, Y: w}}
	}
	topLeft := v(left, top, 0, 0)
	topRight := v(right, top, 1, 0)
	bottomLeft := v(left, bottom, 0, 1)
	bottomRight := v(right, bottom, 1, 1)

	return []Triangle{
		{bottomLeft, bottomRight, topRight},
		{bottomLeft, topRight, topLeft},
	}
}

// FullScreenQuad covers the whole viewport at depth z.
func FullScreenQuad(z float32, color Color) []Triangle {
	return ScreenQuad(-1, 1, 1, -1, z, color)
}

package geometry

import "github.com/Faultbox/snowfight/pkg/math"

// Cylinder tessellates a capped cylinder centered on a point, axis along Y.
type Cylinder struct {
	height    float32
	radius    float32
	center    math.Point3
	segments  int
	color     Color
	triangles []Triangle
}

// NewCylinder creates a cylinder generator.
func NewCylinder(height, radius float32, center math.Point3) *Cylinder {
	return &Cylinder{
		height:   height,
		radius:   radius,
		center:   center,
		segments: DefaultRadialSegments,
		color:    White,
	}
}

// SetSegments sets the radial segment count. Non-positive values are ignored.
func (c *Cylinder) SetSegments(n int) {
	if n > 0 {
		c.segments = n
	}
}

// SetColor sets the color applied to every vertex.
func (c *Cylinder) SetColor(col Color) {
	c.color = col
}

func (c *Cylinder) valid() bool {
	return c.height > 0 && c.radius > 0 && c.segments > 0
}

// Triangles returns the last generated triangle list.
func (c *Cylinder) Triangles() []Triangle {
	return c.triangles
}

// Generate emits a top cap, two side and a bottom cap triangle per segment.
func (c *Cylinder) Generate() bool {
	c.triangles = nil
	if !c.valid() {
		return false
	}

	half := c.height / 2
	top := c.center.Offset(0, half, 0)
	bottom := c.center.Offset(0, -half, 0)
	up := math.Vec3{Y: 1}
	down := math.Vec3{Y: -1}
	points := ring(c.radius, c.segments)
	c.triangles = make([]Triangle, 0, c.segments*4)

	vert := func(p math.Point3, n math.Vec3, uv math.Vec2) Vertex {
		return Vertex{Position: p, Normal: n, Color: c.color, UV: uv}
	}

	for i := 0; i < c.segments; i++ {
		trailing, leading := points[i], points[i+1]
		topT, topL := top.Add(trailing.offset), top.Add(leading.offset)
		botT, botL := bottom.Add(trailing.offset), bottom.Add(leading.offset)
		nT, nL := trailing.offset.Normalize(), leading.offset.Normalize()
		uT, uL := sweepU(trailing.angle), sweepU(leading.angle)

		c.triangles = append(c.triangles,
			Triangle{
				vert(top, up, diskCenterUV),
				vert(topT, up, diskUV(trailing, c.radius)),
				vert(topL, up, diskUV(leading, c.radius)),
			},
			Triangle{
				vert(topT, nT, math.Vec2{X: uT, Y: 1}),
				vert(botT, nT, math.Vec2{X: uT, Y: 0}),
				vert(botL, nL, math.Vec2{X: uL, Y: 0}),
			},
			Triangle{
				vert(topT, nT, math.Vec2{X: uT, Y: 1}),
				vert(botL, nL, math.Vec2{X: uL, Y: 0}),
				vert(topL, nL, math.Vec2{X: uL, Y: 1}),
			},
			Triangle{
				vert(bottom, down, diskCenterUV),
				vert(botL, down, diskUV(leading, c.radius)),
				vert(botT, down, diskUV(trailing, c.radius)),
			},
		)
	}
	return true
}

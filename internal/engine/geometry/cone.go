package geometry

import "github.com/Faultbox/snowfight/pkg/math"

// Cone tessellates a cone standing on a circular base, apex up.
type Cone struct {
	height     float32
	baseRadius float32
	base       math.Point3
	segments   int
	color      Color
	triangles  []Triangle
}

// NewCone creates a cone generator with its base center at base.
func NewCone(height, baseRadius float32, base math.Point3) *Cone {
	return &Cone{
		height:     height,
		baseRadius: baseRadius,
		base:       base,
		segments:   DefaultRadialSegments,
		color:      White,
	}
}

// SetSegments sets the radial segment count. Non-positive values are ignored.
func (c *Cone) SetSegments(n int) {
	if n > 0 {
		c.segments = n
	}
}

// SetColor sets the color applied to every vertex.
func (c *Cone) SetColor(col Color) {
	c.color = col
}

func (c *Cone) valid() bool {
	return c.height > 0 && c.baseRadius > 0 && c.segments > 0
}

// Triangles returns the last generated triangle list.
func (c *Cone) Triangles() []Triangle {
	return c.triangles
}

// Generate emits one side and one base-cap triangle per segment.
func (c *Cone) Generate() bool {
	c.triangles = nil
	if !c.valid() {
		return false
	}

	apex := c.base.Offset(0, c.height, 0)
	down := math.Vec3{Y: -1}
	points := ring(c.baseRadius, c.segments)
	c.triangles = make([]Triangle, 0, c.segments*2)

	for i := 0; i < c.segments; i++ {
		trailing, leading := points[i], points[i+1]
		tp := c.base.Add(trailing.offset)
		lp := c.base.Add(leading.offset)

		apexNormal := apex.Sub(tp).Cross(apex.Sub(lp)).Normalize()
		mid := (trailing.angle + leading.angle) / 2

		c.triangles = append(c.triangles,
			Triangle{
				{Position: tp, Normal: trailing.offset.Normalize(), Color: c.color, UV: math.Vec2{X: sweepU(trailing.angle)}},
				{Position: lp, Normal: leading.offset.Normalize(), Color: c.color, UV: math.Vec2{X: sweepU(leading.angle)}},
				{Position: apex, Normal: apexNormal, Color: c.color, UV: math.Vec2{X: sweepU(mid), Y: 1}},
			},
			Triangle{
				{Position: tp, Normal: down, Color: c.color, UV: diskUV(trailing, c.baseRadius)},
				{Position: c.base, Normal: down, Color: c.color, UV: diskCenterUV},
				{Position: lp, Normal: down, Color: c.color, UV: diskUV(leading, c.baseRadius)},
			},
		)
	}
	return true
}

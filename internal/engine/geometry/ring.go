package geometry

import (
	gomath "math"

	"github.com/Faultbox/snowfight/pkg/math"
)

// DefaultRadialSegments is the default segment count for cones and cylinders.
const DefaultRadialSegments = 20

// ringPoint is a point on a horizontal circle of the given radius, at
// azimuth angle measured from +Z toward +X.
type ringPoint struct {
	offset math.Vec3 // from the ring center
	angle  float64
}

// ring returns segments+1 points around a circle; the last repeats the first
// angle so consecutive pairs close the loop.
func ring(radius float32, segments int) []ringPoint {
	step := 2 * gomath.Pi / float64(segments)
	points := make([]ringPoint, segments+1)
	for i := range points {
		a := float64(i) * step
		sin, cos := gomath.Sincos(a)
		points[i] = ringPoint{
			offset: math.Vec3{X: radius * float32(sin), Z: radius * float32(cos)},
			angle:  a,
		}
	}
	return points
}

// diskUV maps a ring offset onto the unit square.
func diskUV(p ringPoint, radius float32) math.Vec2 {
	return math.Vec2{X: p.offset.X/(2*radius) + 0.5, Y: p.offset.Z/(2*radius) + 0.5}
}

var diskCenterUV = math.Vec2{X: 0.5, Y: 0.5}

func sweepU(angle float64) float32 {
	return float32(angle / (2 * gomath.Pi))
}

package geometry

import (
	gomath "math"

	"github.com/Faultbox/snowfight/pkg/math"
)

// DefaultSphereSegments is the default segment count in both directions.
const DefaultSphereSegments = 20

// Sphere tessellates a sphere into latitude/longitude cells.
type Sphere struct {
	radius       float32
	center       math.Point3
	longSegments int
	latSegments  int
	color        Color
	triangles    []Triangle
}

// NewSphere creates a sphere generator with default segments and color.
func NewSphere(radius float32, center math.Point3) *Sphere {
	return &Sphere{
		radius:       radius,
		center:       center,
		longSegments: DefaultSphereSegments,
		latSegments:  DefaultSphereSegments,
		color:        White,
	}
}

// SetLongitudinalSegments sets the number of segments around the Y axis.
// Non-positive values are ignored.
func (s *Sphere) SetLongitudinalSegments(n int) {
	if n > 0 {
		s.longSegments = n
	}
}

// SetLatitudinalSegments sets the number of segments from pole to pole.
// Non-positive values are ignored.
func (s *Sphere) SetLatitudinalSegments(n int) {
	if n > 0 {
		s.latSegments = n
	}
}

// SetColor sets the color applied to every vertex.
func (s *Sphere) SetColor(c Color) {
	s.color = c
}

func (s *Sphere) valid() bool {
	return s.radius > 0 && s.longSegments > 0 && s.latSegments > 0
}

// Triangles returns the last generated triangle list.
func (s *Sphere) Triangles() []Triangle {
	return s.triangles
}

// Generate emits two triangles per latitude/longitude cell. Cells touching
// a pole keep a zero-area triangle so the count is always long*lat*2.
func (s *Sphere) Generate() bool {
	s.triangles = nil
	if !s.valid() {
		return false
	}

	latStep := gomath.Pi / float64(s.latSegments)
	longStep := 2 * gomath.Pi / float64(s.longSegments)
	s.triangles = make([]Triangle, 0, s.longSegments*s.latSegments*2)

	for i := 0; i < s.latSegments; i++ {
		lat0 := float64(i) * latStep
		lat1 := float64(i+1) * latStep
		for j := 0; j < s.longSegments; j++ {
			lon0 := float64(j) * longStep
			lon1 := float64(j+1) * longStep

			upperTrailing := s.vertex(lat0, lon0)
			lowerTrailing := s.vertex(lat1, lon0)
			lowerLeading := s.vertex(lat1, lon1)
			upperLeading := s.vertex(lat0, lon1)

			s.triangles = append(s.triangles,
				Triangle{upperTrailing, lowerTrailing, lowerLeading},
				Triangle{upperTrailing, lowerLeading, upperLeading},
			)
		}
	}
	return true
}

// vertex returns the surface vertex at the given polar angle from +Y and
// azimuth from +Z toward +X.
func (s *Sphere) vertex(lat, lon float64) Vertex {
	sinLat, cosLat := gomath.Sincos(lat)
	sinLon, cosLon := gomath.Sincos(lon)
	radial := math.Vec3{
		X: float32(sinLat * sinLon),
		Y: float32(cosLat),
		Z: float32(sinLat * cosLon),
	}
	return Vertex{
		Position: s.center.Add(radial.Scale(s.radius)),
		Normal:   radial.Normalize(),
		Color:    s.color,
		UV:       math.Vec2{X: float32(lon / (2 * gomath.Pi)), Y: float32(lat / gomath.Pi)},
	}
}

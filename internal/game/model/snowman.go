package model

import (
	gomath "math"

	"github.com/Faultbox/snowfight/internal/engine/geometry"
	"github.com/Faultbox/snowfight/internal/game/world"
	"github.com/Faultbox/snowfight/pkg/math"
)

// PartKind identifies one snowman mesh.
type PartKind int

const (
	PartBody PartKind = iota
	PartRightArm
	PartLeftArm
	PartFaceButtons
	PartNose
	PartHat
)

func (k PartKind) String() string {
	switch k {
	case PartBody:
		return "body"
	case PartRightArm:
		return "right-arm"
	case PartLeftArm:
		return "left-arm"
	case PartFaceButtons:
		return "face-buttons"
	case PartNose:
		return "nose"
	case PartHat:
		return "hat"
	default:
		return "unknown"
	}
}

// Material selects how a part is shaded.
type Material int

const (
	// MaterialSnow is the rough snow surface.
	MaterialSnow Material = iota
	// MaterialMatte is per-vertex diffuse lighting.
	MaterialMatte
	// MaterialGlossy is per-fragment lighting with a highlight.
	MaterialGlossy
	// MaterialHat is glossy, tinted red on leaders.
	MaterialHat
)

// Part is one snowman mesh in snowman-local space, attachment transform
// already applied.
type Part struct {
	Kind      PartKind
	Material  Material
	Triangles []geometry.Triangle
}

// Snowman builds every part of a snowman in draw order: body, arms, face
// buttons, nose, hat. Accessories that need a second body segment are
// omitted for single-sphere snowmen.
func Snowman(p world.Params, pr Proportions) []Part {
	parts := []Part{{Kind: PartBody, Material: MaterialSnow, Triangles: body(p, pr)}}
	if p.Segments > 1 {
		parts = append(parts,
			Part{Kind: PartRightArm, Material: MaterialMatte, Triangles: arm(p, pr, -1)},
			Part{Kind: PartLeftArm, Material: MaterialMatte, Triangles: arm(p, pr, 1)},
		)
	}
	if p.Segments > 0 {
		parts = append(parts,
			Part{Kind: PartFaceButtons, Material: MaterialGlossy, Triangles: faceButtons(p, pr)},
			Part{Kind: PartNose, Material: MaterialMatte, Triangles: nose(p, pr)},
		)
	}
	if p.Segments > 1 {
		parts = append(parts, Part{Kind: PartHat, Material: MaterialHat, Triangles: hat(p, pr)})
	}
	return parts
}

func body(p world.Params, pr Proportions) []geometry.Triangle {
	var tris []geometry.Triangle
	for i := 0; i < p.Segments; i++ {
		s := geometry.NewSphere(p.SegmentRadius(i), math.Point3{Y: p.SegmentCenter(i)})
		s.SetLongitudinalSegments(pr.BodyLongSegments)
		s.SetLatitudinalSegments(pr.BodyLatSegments)
		s.SetColor(BodyColor)
		if s.Generate() {
			tris = append(tris, s.Triangles()...)
		}
	}
	return tris
}

// arm builds one arm pivoting on the middle sphere. side is -1 for the
// snowman's right (-X) and +1 for its left.
func arm(p world.Params, pr Proportions, side float32) []geometry.Triangle {
	c := geometry.NewCylinder(pr.ArmLength, pr.ArmRadius, math.Origin)
	c.SetSegments(pr.ArmSegments)
	c.SetColor(ArmColor)
	if !c.Generate() {
		return nil
	}

	seg := p.Segments - 2
	pivot := math.Point3{
		X: side * p.SegmentRadius(seg) * pr.ArmOutset,
		Y: p.SegmentCenter(seg),
	}
	// Tilt the arm's axis outward, away from the body.
	m := math.TranslateTo(pivot).Mul(math.RotateZ(-side * pr.ArmAngle))
	return geometry.Transform(c.Triangles(), m)
}

// hatBase is the height the hat rests at, sunk into the head.
func hatBase(p world.Params, pr Proportions) float32 {
	return p.BodyHeight() - p.SegmentRadius(p.Segments-1)*pr.HatOverlap
}

func hat(p world.Params, pr Proportions) []geometry.Triangle {
	head := p.SegmentRadius(p.Segments - 1)
	base := hatBase(p, pr)

	brim := geometry.NewCylinder(pr.HatBrimHeight, head*pr.HatBrimWidth, math.Point3{Y: base + pr.HatBrimHeight/2})
	crown := geometry.NewCylinder(pr.HatHeight, head*pr.HatWidth, math.Point3{Y: base + pr.HatHeight/2})

	var tris []geometry.Triangle
	for _, c := range []*geometry.Cylinder{crown, brim} {
		c.SetColor(HatColor)
		if c.Generate() {
			tris = append(tris, c.Triangles()...)
		}
	}
	return tris
}

// headPoint returns the point on the head surface at the given elevation
// above the facing direction and azimuth toward +X.
func headPoint(p world.Params, elevation, azimuth float32) math.Point3 {
	head := p.Segments - 1
	r := p.SegmentRadius(head)
	sinEl, cosEl := gomath.Sincos(float64(elevation))
	sinAz, cosAz := gomath.Sincos(float64(azimuth))
	dir := math.Vec3{
		X: float32(sinAz * cosEl),
		Y: float32(sinEl),
		Z: float32(cosAz * cosEl),
	}
	return math.Point3{Y: p.SegmentCenter(head)}.Add(dir.Scale(r))
}

func button(pr Proportions, at math.Point3) []geometry.Triangle {
	s := geometry.NewSphere(pr.ButtonRadius, at)
	s.SetLongitudinalSegments(pr.ButtonSegments)
	s.SetLatitudinalSegments(pr.ButtonSegments)
	s.SetColor(ButtonColor)
	s.Generate()
	return s.Triangles()
}

// ButtonCenters returns the eye and mouth button centers: two eyes followed
// by the mouth buttons from one corner to the other along a smile.
func ButtonCenters(p world.Params, pr Proportions) []math.Point3 {
	centers := []math.Point3{
		headPoint(p, pr.EyeElevation, pr.EyeSeparation/2),
		headPoint(p, pr.EyeElevation, -pr.EyeSeparation/2),
	}
	for i := 0; i < pr.MouthButtons; i++ {
		f := float32(0.5)
		if pr.MouthButtons > 1 {
			f = float32(i) / float32(pr.MouthButtons-1)
		}
		azimuth := (f - 0.5) * pr.MouthWidth
		elevation := -pr.MouthStartDecline - pr.MouthDepth*float32(gomath.Sin(float64(f)*gomath.Pi))
		centers = append(centers, headPoint(p, elevation, azimuth))
	}
	return centers
}

func faceButtons(p world.Params, pr Proportions) []geometry.Triangle {
	var tris []geometry.Triangle
	for _, c := range ButtonCenters(p, pr) {
		tris = append(tris, button(pr, c)...)
	}
	return tris
}

// nose builds a cone rooted at the front of the head pointing along +Z.
func nose(p world.Params, pr Proportions) []geometry.Triangle {
	c := geometry.NewCone(pr.NoseLength, pr.NoseRadius, math.Origin)
	c.SetSegments(pr.NoseSegments)
	c.SetColor(NoseColor)
	if !c.Generate() {
		return nil
	}
	root := headPoint(p, 0, 0)
	m := math.TranslateTo(root).Mul(math.RotateX(gomath.Pi / 2))
	return geometry.Transform(c.Triangles(), m)
}

// Snowball builds the snowball mesh centered on the origin.
func Snowball(p world.Params, pr Proportions) []geometry.Triangle {
	s := geometry.NewSphere(p.SnowballRadius, math.Origin)
	s.SetLongitudinalSegments(pr.SnowballSegments)
	s.SetLatitudinalSegments(pr.SnowballSegments)
	s.SetColor(SnowballColor)
	s.Generate()
	return s.Triangles()
}

// Ground builds the ground plane.
func Ground(pr Proportions) []geometry.Triangle {
	return geometry.GroundPlane(pr.GroundHalfExtent, GroundColor)
}

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/snowfight/internal/engine/geometry"
	"github.com/Faultbox/snowfight/internal/game/world"
	"github.com/Faultbox/snowfight/pkg/math"
)

const ws = 0.03

func bounds(tris []geometry.Triangle) (lo, hi math.Point3) {
	first := true
	for _, t := range tris {
		for _, v := range t {
			p := v.Position
			if first {
				lo, hi = p, p
				first = false
				continue
			}
			lo = math.Point3{X: min(lo.X, p.X), Y: min(lo.Y, p.Y), Z: min(lo.Z, p.Z)}
			hi = math.Point3{X: max(hi.X, p.X), Y: max(hi.Y, p.Y), Z: max(hi.Z, p.Z)}
		}
	}
	return lo, hi
}

func partsByKind(parts []Part) map[PartKind]Part {
	m := make(map[PartKind]Part, len(parts))
	for _, p := range parts {
		m[p.Kind] = p
	}
	return m
}

func TestSnowmanPartsInDrawOrder(t *testing.T) {
	parts := Snowman(world.DefaultParams(ws), DefaultProportions(ws))

	var kinds []PartKind
	for _, p := range parts {
		kinds = append(kinds, p.Kind)
		assert.NotEmpty(t, p.Triangles, p.Kind.String())
	}
	assert.Equal(t, []PartKind{PartBody, PartRightArm, PartLeftArm, PartFaceButtons, PartNose, PartHat}, kinds)

	byKind := partsByKind(parts)
	assert.Equal(t, MaterialSnow, byKind[PartBody].Material)
	assert.Equal(t, MaterialMatte, byKind[PartRightArm].Material)
	assert.Equal(t, MaterialGlossy, byKind[PartFaceButtons].Material)
	assert.Equal(t, MaterialMatte, byKind[PartNose].Material)
	assert.Equal(t, MaterialHat, byKind[PartHat].Material)
}

func TestBodyStacksSpheres(t *testing.T) {
	p := world.DefaultParams(ws)
	pr := DefaultProportions(ws)
	tris := partsByKind(Snowman(p, pr))[PartBody].Triangles

	require.Len(t, tris, p.Segments*pr.BodyLongSegments*pr.BodyLatSegments*2)

	lo, hi := bounds(tris)
	assert.InDelta(t, 0, lo.Y, 1e-6, "body rests on the ground")
	assert.InDelta(t, p.BodyHeight(), hi.Y, 1e-6)
	assert.InDelta(t, p.BaseRadius, hi.X, 1e-6, "widest sphere is the base")

	for _, tri := range tris {
		for _, v := range tri {
			assert.Equal(t, BodyColor, v.Color)
		}
	}
}

func TestArmsMirrorAcrossBody(t *testing.T) {
	p := world.DefaultParams(ws)
	pr := DefaultProportions(ws)
	byKind := partsByKind(Snowman(p, pr))

	right := byKind[PartRightArm].Triangles
	left := byKind[PartLeftArm].Triangles
	require.Len(t, right, pr.ArmSegments*4)
	require.Len(t, left, pr.ArmSegments*4)

	rLo, rHi := bounds(right)
	lLo, lHi := bounds(left)
	assert.Less(t, rLo.X, -p.SegmentRadius(1), "right arm reaches past the body on -X")
	assert.Greater(t, lHi.X, p.SegmentRadius(1), "left arm reaches past the body on +X")
	assert.InDelta(t, -rLo.X, lHi.X, 1e-6)
	assert.InDelta(t, rHi.Y, lHi.Y, 1e-6)
	assert.InDelta(t, rLo.Y, lLo.Y, 1e-6)

	// Arms tilt upward away from the body.
	assert.Greater(t, lHi.Y, p.SegmentCenter(1))
}

func TestHatSitsOnHead(t *testing.T) {
	p := world.DefaultParams(ws)
	pr := DefaultProportions(ws)
	tris := partsByKind(Snowman(p, pr))[PartHat].Triangles

	require.NotEmpty(t, tris)
	lo, hi := bounds(tris)
	base := p.BodyHeight() - p.SegmentRadius(2)*pr.HatOverlap
	assert.InDelta(t, base, lo.Y, 1e-6)
	assert.InDelta(t, base+pr.HatHeight, hi.Y, 1e-6)
	assert.InDelta(t, p.SegmentRadius(2)*pr.HatBrimWidth, hi.X, 1e-6, "brim is the widest section")
}

func TestButtonCentersOnHeadSurface(t *testing.T) {
	p := world.DefaultParams(ws)
	pr := DefaultProportions(ws)
	centers := ButtonCenters(p, pr)

	require.Len(t, centers, 2+pr.MouthButtons)

	head := math.Point3{Y: p.SegmentCenter(2)}
	r := p.SegmentRadius(2)
	for i, c := range centers {
		assert.InDelta(t, r, c.DistanceFrom(head), 1e-6, "button %d", i)
		assert.Greater(t, c.Z, float32(0), "button %d faces forward", i)
	}

	// Eyes above the head center, mirrored.
	assert.Greater(t, centers[0].Y, head.Y)
	assert.InDelta(t, centers[0].Y, centers[1].Y, 1e-7)
	assert.InDelta(t, -centers[0].X, centers[1].X, 1e-7)

	// Mouth below, corners higher than the middle.
	mouth := centers[2:]
	first, last := mouth[0], mouth[len(mouth)-1]
	assert.Less(t, first.Y, head.Y)
	assert.InDelta(t, -first.X, last.X, 1e-7)
	assert.InDelta(t, first.Y, last.Y, 1e-7)
	mid := mouth[len(mouth)/2]
	assert.Less(t, mid.Y, first.Y)

	tris := partsByKind(Snowman(p, pr))[PartFaceButtons].Triangles
	assert.Len(t, tris, len(centers)*pr.ButtonSegments*pr.ButtonSegments*2)
}

func TestNosePointsForward(t *testing.T) {
	p := world.DefaultParams(ws)
	pr := DefaultProportions(ws)
	tris := partsByKind(Snowman(p, pr))[PartNose].Triangles

	require.Len(t, tris, pr.NoseSegments*2)
	lo, hi := bounds(tris)
	headR := p.SegmentRadius(2)
	assert.InDelta(t, headR, lo.Z, 1e-6, "nose is rooted on the head surface")
	assert.InDelta(t, headR+pr.NoseLength, hi.Z, 1e-6)
	assert.InDelta(t, p.SegmentCenter(2)+pr.NoseRadius, hi.Y, 1e-6)
}

func TestSingleSegmentSnowmanSkipsArmsAndHat(t *testing.T) {
	p := world.DefaultParams(ws)
	p.Segments = 1

	var kinds []PartKind
	for _, part := range Snowman(p, DefaultProportions(ws)) {
		kinds = append(kinds, part.Kind)
	}
	assert.Equal(t, []PartKind{PartBody, PartFaceButtons, PartNose}, kinds)
}

func TestSnowballMesh(t *testing.T) {
	p := world.DefaultParams(ws)
	pr := DefaultProportions(ws)
	tris := Snowball(p, pr)

	require.Len(t, tris, pr.SnowballSegments*pr.SnowballSegments*2)
	for _, tri := range tris {
		for _, v := range tri {
			assert.InDelta(t, p.SnowballRadius, v.Position.DistanceFrom(math.Origin), 1e-6)
			assert.Equal(t, SnowballColor, v.Color)
		}
	}
}

func TestGround(t *testing.T) {
	tris := Ground(DefaultProportions(ws))
	require.Len(t, tris, 2)
	lo, hi := bounds(tris)
	assert.Equal(t, math.Point3{X: -1, Z: -1}, lo)
	assert.Equal(t, math.Point3{X: 1, Z: 1}, hi)
	assert.Equal(t, GroundColor, tris[0][0].Color)
}

func TestPartKindString(t *testing.T) {
	assert.Equal(t, "hat", PartHat.String())
	assert.Equal(t, "unknown", PartKind(42).String())
}

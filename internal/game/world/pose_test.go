package world

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/snowfight/pkg/math"
)

func near(t *testing.T, want, got math.Mat4) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-5, "element %d", i)
	}
}

func TestFacingMatrix(t *testing.T) {
	headings := []math.Vec3{
		math.UnitZ,
		math.UnitX,
		{X: -1},
		{Z: -1},
		math.Vec3{X: 1, Z: -1}.Normalize(),
	}
	for _, h := range headings {
		got := FacingMatrix(h).TransformDirection(math.UnitZ)
		assert.InDelta(t, 0, got.Sub(h).Length(), 1e-5, "heading %v", h)
	}

	near(t, math.Identity(), FacingMatrix(math.Vec3{}))
	near(t, math.Identity(), FacingMatrix(math.UnitY))
}

func TestPoseTraveling(t *testing.T) {
	p := testParams()
	s := &Snowman{State: Traveling{}, Speed: p.MinSpeed}

	near(t, math.RotateZ(p.WaddleAngle), p.Pose(s, 0))
	// Half a waddle period swings to the other side
	near(t, math.RotateZ(-p.WaddleAngle), p.Pose(s, p.WaddlePeriod/2))

	// Faster snowmen have a shorter period
	fast := &Snowman{State: Traveling{}, Speed: p.MaxSpeed}
	divisor := float64((p.MaxSpeed-p.MinSpeed)/(p.MaxSpeed+p.MinSpeed)) + 1
	near(t, math.RotateZ(-p.WaddleAngle), p.Pose(fast, p.WaddlePeriod/divisor/2))
}

func TestPoseThrowing(t *testing.T) {
	p := testParams()
	s := &Snowman{State: Throwing{}, StateSince: 100}

	near(t, math.Identity(), p.Pose(s, 100))
	near(t, math.RotateX(p.ThrowLeanX).Mul(math.RotateZ(-p.ThrowLeanZ)), p.Pose(s, 200))

	// The lean tips the head forward
	head := p.Pose(s, 200).TransformDirection(math.UnitY)
	assert.Greater(t, head.Z, float32(0))
}

func TestPoseHit(t *testing.T) {
	p := testParams()
	s := &Snowman{State: Hit{}}

	mid := p.Pose(s, p.HitDuration/2)
	assert.InDelta(t, p.HitLeap, mid[13], 1e-6)

	// Backward lean
	head := mid.TransformDirection(math.UnitY)
	assert.Less(t, head.Z, float32(0))

	near(t, math.Identity(), p.Pose(s, p.HitDuration))
}

func TestPoseStunnedDamps(t *testing.T) {
	p := testParams()
	s := &Snowman{State: Stunned{}}

	// Fully damped at the end: whole turns only
	end := p.Pose(s, p.StunnedDuration)
	near(t, math.Identity(), end)

	// Past the end the pose stays clamped
	near(t, end, p.Pose(s, p.StunnedDuration*3))

	quarter := p.Pose(s, p.StunnedDuration/12)
	up := quarter.TransformDirection(math.UnitY)
	assert.Less(t, up.Y, float32(gomath.Cos(0.01)))
}

func TestModelMatrixComposition(t *testing.T) {
	p := testParams()
	s := &Snowman{
		State:    Traveling{},
		Position: math.Point3{X: 0.1, Z: -0.2},
		Heading:  math.UnitX,
		Speed:    p.MinSpeed,
	}
	now := p.WaddlePeriod / 4 // waddle crosses zero

	m := p.ModelMatrix(s, now)
	origin := m.TransformPoint(math.Origin)
	assert.InDelta(t, 0.1, origin.X, 1e-6)
	assert.InDelta(t, -0.2, origin.Z, 1e-6)

	forward := m.TransformDirection(math.UnitZ)
	assert.InDelta(t, 1, forward.X, 1e-5)
}

func TestStateNames(t *testing.T) {
	for _, tt := range []struct {
		s    State
		want string
	}{
		{Traveling{}, "traveling"},
		{Throwing{}, "throwing"},
		{Hit{}, "hit"},
		{Stunned{}, "stunned"},
	} {
		assert.Equal(t, tt.want, tt.s.Name())
	}
}

package world

import (
	gomath "math"

	"github.com/Faultbox/snowfight/pkg/math"
)

func atan2(y, x float32) float32 {
	return float32(gomath.Atan2(float64(y), float64(x)))
}

func sin(x float64) float32 {
	return float32(gomath.Sin(x))
}

func cos(x float64) float32 {
	return float32(gomath.Cos(x))
}

// completion returns how far through a state of the given duration the
// snowman is, clamped to [0, 1].
func completion(elapsed, duration float64) float64 {
	if duration <= 0 {
		return 1
	}
	f := elapsed / duration
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

// Pose returns the state-dependent local transform of s at scene time now.
func (p Params) Pose(s *Snowman, now float64) math.Mat4 {
	elapsed := now - s.StateSince

	switch s.State.(type) {
	case Traveling:
		// Faster snowmen waddle faster.
		divisor := 1.0
		if sum := p.MaxSpeed + p.MinSpeed; sum > 0 {
			divisor += float64((s.Speed - p.MinSpeed) / sum)
		}
		period := p.WaddlePeriod / divisor
		angle := p.WaddleAngle * cos(2*gomath.Pi*elapsed/period)
		return math.RotateZ(angle)

	case Throwing:
		t := sin(gomath.Pi * completion(elapsed, p.ThrowDuration))
		return math.RotateX(p.ThrowLeanX * t).Mul(math.RotateZ(-p.ThrowLeanZ * t))

	case Hit:
		t := sin(gomath.Pi * completion(elapsed, p.HitDuration))
		return math.Translate(0, p.HitLeap*t, 0).Mul(math.RotateX(-p.HitLean * t))

	case Stunned:
		f := completion(elapsed, p.StunnedDuration)
		turns := f * 2 * gomath.Pi * float64(p.StunnedSpins)
		wobble := p.StunnedLean * sin(turns) * float32(1-f)
		return math.RotateY(float32(-turns)).Mul(math.RotateZ(-wobble))
	}
	return math.Identity()
}

// ModelMatrix composes position, facing and pose for s at scene time now.
func (p Params) ModelMatrix(s *Snowman, now float64) math.Mat4 {
	return math.TranslateTo(s.Position).Mul(s.Facing()).Mul(p.Pose(s, now))
}

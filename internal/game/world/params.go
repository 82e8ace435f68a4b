// Package world simulates the snowball fight: snowmen walking, throwing,
// getting hit and recovering, and the snowballs flying between them.
//
// Time is measured in milliseconds and distances in world units, where one
// snowman base-sphere radius is Params.WorldScale.
package world

import (
	gomath "math"

	"github.com/Faultbox/snowfight/pkg/math"
)

// Params holds the tuning constants of the simulation.
type Params struct {
	WorldScale float32

	// Gravitational acceleration, world units per ms².
	Gravity float32

	Center   math.Point3
	Boundary float32 // max distance of any snowman from Center

	// Body: Segments stacked spheres, each ReductionFactor smaller than the
	// one below and sunk into it by Overlap of the lower radius.
	BaseRadius      float32
	ReductionFactor float32
	Overlap         float32
	Segments        int

	SnowballRadius float32

	// Motion ranges sampled per snowman.
	MinSpeed, MaxSpeed                 float32 // units per ms
	MinThrowInterval, MaxThrowInterval float64 // ms
	MinThrowVelocity, MaxThrowVelocity float32 // units per ms
	MinFOV, MaxFOV                     float32 // half-angle, radians
	VelocityVariance                   float32 // fraction of the mean throw velocity
	HeadingJitter                      float32 // max deflection after a boundary bounce

	// State durations in ms.
	ThrowDuration   float64
	HitDuration     float64
	StunnedDuration float64
	LaunchFraction  float64

	// Poses.
	WaddleAngle  float32
	WaddlePeriod float64
	ThrowLeanX   float32
	ThrowLeanZ   float32
	HitLean      float32
	HitLeap      float32
	StunnedLean  float32
	StunnedSpins float32

	// Leaders are marked once the top strike count reaches this.
	LeaderThreshold int

	// Population.
	Population     int
	RarePopulation int
	RareChance     float64
}

// DefaultParams returns the standard scene tuning for the given world scale.
func DefaultParams(worldScale float32) Params {
	ws := worldScale
	boundary := 16 * ws
	return Params{
		WorldScale: ws,
		Gravity:    32.34 * ws / 1e6,

		Center:   math.Origin,
		Boundary: boundary,

		BaseRadius:      1.0 * ws,
		ReductionFactor: 0.70,
		Overlap:         0.4,
		Segments:        3,

		SnowballRadius: 0.35 * ws,

		MinSpeed:         boundary / 7500,
		MaxSpeed:         boundary / 3000,
		MinThrowInterval: 800,
		MaxThrowInterval: 4000,
		MinThrowVelocity: 35 * ws / 1000,
		MaxThrowVelocity: 75 * ws / 1000,
		MinFOV:           gomath.Pi / 9,
		MaxFOV:           gomath.Pi / 3,
		VelocityVariance: 0.15,
		HeadingJitter:    gomath.Pi / 4,

		ThrowDuration:   200,
		HitDuration:     200,
		StunnedDuration: 300,
		LaunchFraction:  0.5,

		WaddleAngle:  gomath.Pi / 20,
		WaddlePeriod: 1200,
		ThrowLeanX:   gomath.Pi / 8,
		ThrowLeanZ:   gomath.Pi / 15,
		HitLean:      gomath.Pi / 7,
		HitLeap:      1.5 * ws,
		StunnedLean:  gomath.Pi / 3,
		StunnedSpins: 3,

		LeaderThreshold: 500,

		Population:     15,
		RarePopulation: 100,
		RareChance:     0.001,
	}
}

// SegmentRadius returns the radius of body sphere i, counting from the ground.
func (p Params) SegmentRadius(i int) float32 {
	if i < 0 {
		return 0
	}
	return p.BaseRadius * float32(gomath.Pow(float64(p.ReductionFactor), float64(i)))
}

// SegmentCenter returns the height of the center of body sphere i.
func (p Params) SegmentCenter(i int) float32 {
	y := p.BaseRadius
	for k := 0; k < i; k++ {
		r := p.SegmentRadius(k)
		y += r + p.SegmentRadius(k+1) - p.Overlap*r
	}
	return y
}

// HeightForSegments returns the height of the top of a stack of n spheres.
func (p Params) HeightForSegments(n int) float32 {
	if n <= 0 {
		return 0
	}
	return p.SegmentCenter(n-1) + p.SegmentRadius(n-1)
}

// BodyHeight is the full height of a snowman body.
func (p Params) BodyHeight() float32 {
	return p.HeightForSegments(p.Segments)
}

// LaunchHeight is the height snowballs are released from: the top of the
// sphere below the head.
func (p Params) LaunchHeight() float32 {
	return p.HeightForSegments(p.Segments - 1)
}

// Package model builds the meshes that make up a snowman, a snowball and the
// ground. Meshes are generated once in snowman-local space (feet at the origin,
// facing +Z) and shared by every actor; per-actor placement happens through the
// model matrix computed by the world.
package model

import (
	gomath "math"

	"github.com/Faultbox/snowfight/internal/engine/geometry"
)

// Proportions holds the accessory dimensions. Body proportions come from
// world.Params so that collision and rendering agree.
type Proportions struct {
	BodyLongSegments int
	BodyLatSegments  int

	ArmRadius   float32
	ArmLength   float32
	ArmSegments int
	ArmAngle    float32 // tilt from vertical
	ArmOutset   float32 // fraction of the middle sphere radius

	HatHeight     float32
	HatBrimHeight float32
	HatOverlap    float32 // fraction of the head radius the hat sinks in
	HatBrimWidth  float32 // brim radius as a multiple of the head radius
	HatWidth      float32 // crown radius as a multiple of the head radius

	ButtonRadius      float32
	ButtonSegments    int
	EyeElevation      float32
	EyeSeparation     float32
	MouthButtons      int
	MouthStartDecline float32
	MouthWidth        float32
	MouthDepth        float32

	NoseLength   float32
	NoseRadius   float32
	NoseSegments int

	SnowballSegments int

	GroundHalfExtent float32
}

// DefaultProportions returns the standard snowman build for the given world scale.
func DefaultProportions(ws float32) Proportions {
	return Proportions{
		BodyLongSegments: 20,
		BodyLatSegments:  10,

		ArmRadius:   0.07 * ws,
		ArmLength:   2.5 * ws,
		ArmSegments: 10,
		ArmAngle:    gomath.Pi / 4,
		ArmOutset:   0.6,

		HatHeight:     0.7 * ws,
		HatBrimHeight: 0.03 * ws,
		HatOverlap:    0.4,
		HatBrimWidth:  1.5,
		HatWidth:      0.9,

		ButtonRadius:      0.08 * ws,
		ButtonSegments:    5,
		EyeElevation:      gomath.Pi / 8,
		EyeSeparation:     gomath.Pi / 5,
		MouthButtons:      8,
		MouthStartDecline: gomath.Pi / 20,
		MouthWidth:        gomath.Pi / 4,
		MouthDepth:        gomath.Pi / 10,

		NoseLength:   1.0 * ws,
		NoseRadius:   0.1 * ws,
		NoseSegments: 6,

		SnowballSegments: 10,

		GroundHalfExtent: 1,
	}
}

// Part colors.
var (
	BodyColor     = geometry.RGB(0.8, 0.8, 0.8)
	ArmColor      = geometry.RGB(0.6, 0.3, 0.15)
	SnowballColor = geometry.RGB(0.7, 0.7, 0.7)
	HatColor      = geometry.RGB(0.1, 0.1, 0.1)
	ButtonColor   = geometry.RGB(0.05, 0.05, 0.05)
	NoseColor     = geometry.RGB(1.0, 0.45, 0.2)
	GroundColor   = geometry.RGB(0.4, 0.4, 0.7)
)

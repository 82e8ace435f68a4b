package world

import "github.com/Faultbox/snowfight/pkg/math"

// ActorID identifies a snowman. It is its index in the world and stays
// valid for the life of the world.
type ActorID int

// NoActor is the zero value for an absent actor reference.
const NoActor ActorID = -1

// Snowman is one autonomous actor.
type Snowman struct {
	ID         ActorID
	State      State
	StateSince float64 // scene clock at state entry

	Position math.Point3
	Heading  math.Vec3 // unit, horizontal

	Speed             float32 // units per ms
	ThrowInterval     float64 // ms between throws
	MeanThrowVelocity float32
	FOV               float32 // half-angle

	LastThrow    float64
	Strikes      int
	HitsReceived int

	// Model is Translate(Position) * Facing * Pose, refreshed every update.
	Model math.Mat4
}

// Facing returns the rotation that turns the body's local +Z onto the
// heading.
func (s *Snowman) Facing() math.Mat4 {
	return FacingMatrix(s.Heading)
}

// FacingMatrix returns the Y rotation mapping +Z onto the horizontal part
// of heading. A vertical or zero heading yields identity.
func FacingMatrix(heading math.Vec3) math.Mat4 {
	h := heading.XZ()
	if h.Length() == 0 {
		return math.Identity()
	}
	return math.RotateY(atan2(h.X, h.Z))
}

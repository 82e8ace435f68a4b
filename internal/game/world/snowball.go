package world

import "github.com/Faultbox/snowfight/pkg/math"

// ProjectileID identifies a snowball for the lifetime of the world.
type ProjectileID uint64

// Snowball is a projectile in ballistic flight.
type Snowball struct {
	ID       ProjectileID
	Position math.Point3
	Velocity math.Vec3
	Source   ActorID // thrower; never collides with it

	// Invalidated balls are removed by the end-of-frame sweep.
	Invalidated bool

	// Model translates the ball mesh to Position.
	Model math.Mat4
}

// integrate advances the ball by dt: position with the current velocity
// first, then gravity into the velocity.
func (b *Snowball) integrate(dt float64, gravity float32) {
	step := float32(dt)
	b.Position = b.Position.Add(b.Velocity.Scale(step))
	b.Velocity.Y -= gravity * step
	b.Model = math.TranslateTo(b.Position)
}

// aim builds a snowball thrown from src toward dst at the given horizontal
// speed, released at height launch. The vertical velocity puts the apex at
// half the horizontal flight time.
func aim(src, dst math.Point3, launch, speed, gravity float32) (math.Point3, math.Vec3) {
	start := math.Point3{X: src.X, Y: launch, Z: src.Z}
	end := math.Point3{X: dst.X, Y: launch, Z: dst.Z}

	delta := end.Sub(start)
	velocity := delta.Normalize().Scale(speed)

	var flight float32
	if speed > 0 {
		flight = delta.Length() / speed
	}
	velocity.Y = gravity * flight / 2
	return start, velocity
}

// FlightTime returns the estimated time for b to cover the horizontal
// distance to target.
func FlightTime(b *Snowball, target math.Point3) float32 {
	h := b.Velocity.XZ().Length()
	if h == 0 {
		return 0
	}
	return target.Sub(b.Position).XZ().Length() / h
}

package world

import (
	gomath "math"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/Faultbox/snowfight/internal/logger"
	"github.com/Faultbox/snowfight/pkg/math"
)

// World owns the snowmen, the snowballs in flight and the scene clock.
// It is not safe for concurrent use; one goroutine drives it frame by frame.
type World struct {
	params Params
	rng    *rand.Rand
	log    *zap.Logger

	clock float64 // ms

	snowmen   []Snowman
	snowballs []Snowball
	nextBall  ProjectileID

	leaderStrikes int
	release       func(ProjectileID)
}

// New creates a world with count snowmen placed at random.
func New(params Params, count int, rng *rand.Rand) *World {
	w := &World{
		params:  params,
		rng:     rng,
		log:     logger.Log.Named("world"),
		snowmen: make([]Snowman, 0, max(count, 0)),
	}
	for i := 0; i < count; i++ {
		w.snowmen = append(w.snowmen, w.spawnSnowman(ActorID(i)))
	}
	for i := range w.snowmen {
		w.snowmen[i].Model = params.ModelMatrix(&w.snowmen[i], w.clock)
	}

	w.log.Info("world created",
		zap.Int("snowmen", count),
		zap.Float32("boundary", params.Boundary),
	)
	return w
}

// Population picks the number of snowmen: usually Population, occasionally
// RarePopulation.
func Population(params Params, rng *rand.Rand) int {
	if params.RareChance > 0 && rng.Float64() < params.RareChance {
		return params.RarePopulation
	}
	return params.Population
}

// OnRelease registers fn to be called with each snowball removed by Sweep.
func (w *World) OnRelease(fn func(ProjectileID)) {
	w.release = fn
}

// Params returns the simulation constants.
func (w *World) Params() Params { return w.params }

// Now returns the scene clock in ms.
func (w *World) Now() float64 { return w.clock }

// Snowmen returns the actors. The slice is owned by the world.
func (w *World) Snowmen() []Snowman { return w.snowmen }

// Snowballs returns the balls in flight. The slice is owned by the world.
func (w *World) Snowballs() []Snowball { return w.snowballs }

// Snowman returns the actor with the given id, or nil.
func (w *World) Snowman(id ActorID) *Snowman { return w.snowman(id) }

func (w *World) snowman(id ActorID) *Snowman {
	if id < 0 || int(id) >= len(w.snowmen) {
		return nil
	}
	return &w.snowmen[id]
}

// LeaderStrikes returns the highest strike count after the last update.
func (w *World) LeaderStrikes() int { return w.leaderStrikes }

// IsLeader reports whether s carries the leader marking: it holds the top
// strike count and that count has reached the threshold.
func (w *World) IsLeader(s *Snowman) bool {
	return w.leaderStrikes >= w.params.LeaderThreshold && s.Strikes >= w.leaderStrikes
}

// Update advances every snowman and snowball by dt ms, resolves collisions,
// sweeps spent snowballs and refreshes the leader count. The clock itself
// moves only in AdvanceClock.
func (w *World) Update(dt float64) {
	if dt < 0 || gomath.IsNaN(dt) {
		dt = 0
	}

	for i := range w.snowmen {
		w.advance(&w.snowmen[i], dt)
	}
	for i := range w.snowballs {
		w.snowballs[i].integrate(dt, w.params.Gravity)
	}

	w.resolveCollisions()
	w.Sweep()
	w.updateLeader()

	for i := range w.snowmen {
		w.snowmen[i].Model = w.params.ModelMatrix(&w.snowmen[i], w.clock)
	}
}

// AdvanceClock moves the scene clock forward by dt ms.
func (w *World) AdvanceClock(dt float64) {
	if dt > 0 {
		w.clock += dt
	}
}

// Step runs Update followed by AdvanceClock.
func (w *World) Step(dt float64) {
	w.Update(dt)
	w.AdvanceClock(dt)
}

// enter switches s to next, restarting the state timer.
func (w *World) enter(s *Snowman, next State) {
	from := "none"
	if s.State != nil {
		from = s.State.Name()
	}
	w.log.Debug("snowman state",
		zap.Int("id", int(s.ID)),
		zap.String("from", from),
		zap.String("to", next.Name()),
	)
	s.State = next
	s.StateSince = w.clock
}

// advance is the single transition function for one snowman tick.
func (w *World) advance(s *Snowman, dt float64) {
	elapsed := w.clock - s.StateSince

	switch st := s.State.(type) {
	case Traveling:
		w.move(s, dt)
		if w.clock-s.LastThrow >= s.ThrowInterval {
			if target, ok := w.FindTarget(s.ID); ok {
				w.enter(s, Throwing{Target: target})
				s.LastThrow = w.clock
			}
		}

	case Throwing:
		if elapsed > w.params.ThrowDuration {
			w.enter(s, Traveling{})
			return
		}
		if !st.Launched && elapsed/w.params.ThrowDuration >= w.params.LaunchFraction {
			w.launch(s, st.Target)
			st.Launched = true
			s.State = st
		}

	case Hit:
		if elapsed > w.params.HitDuration {
			w.enter(s, Stunned{})
		}

	case Stunned:
		if elapsed > w.params.StunnedDuration {
			w.enter(s, Traveling{})
		}

	default:
		w.enter(s, Traveling{})
	}
}

// maxBounces bounds the boundary retry loop before falling back to turning
// toward the center.
const maxBounces = 32

// move walks s along its heading, bouncing off the world boundary.
func (w *World) move(s *Snowman, dt float64) {
	step := s.Speed * float32(dt)
	candidate := s.Position.Add(s.Heading.Scale(step))

	for i := 0; w.outside(candidate); i++ {
		if i == maxBounces {
			s.Heading = w.params.Center.Sub(s.Position).XZ().Normalize()
			candidate = s.Position.Add(s.Heading.Scale(step))
			if w.outside(candidate) {
				candidate = s.Position
			}
			break
		}
		jitter := (w.rng.Float32()*2 - 1) * w.params.HeadingJitter
		s.Heading = s.Heading.Negate().RotateY(jitter).Normalize()
		candidate = s.Position.Add(s.Heading.Scale(step))
	}
	s.Position = candidate
}

func (w *World) outside(p math.Point3) bool {
	return p.DistanceFrom(w.params.Center) > w.params.Boundary
}

// launch throws a snowball from s toward target.
func (w *World) launch(s *Snowman, target ActorID) {
	t := w.snowman(target)
	if t == nil {
		return
	}

	p := w.params
	lo := max((1-p.VelocityVariance)*s.MeanThrowVelocity, p.MinThrowVelocity)
	hi := min((1+p.VelocityVariance)*s.MeanThrowVelocity, p.MaxThrowVelocity)
	if hi < lo {
		lo, hi = hi, lo
	}
	speed := lo + w.rng.Float32()*(hi-lo)

	start, velocity := aim(s.Position, t.Position, p.LaunchHeight(), speed, p.Gravity)
	w.nextBall++
	w.snowballs = append(w.snowballs, Snowball{
		ID:       w.nextBall,
		Position: start,
		Velocity: velocity,
		Source:   s.ID,
		Model:    math.TranslateTo(start),
	})
}

func (w *World) updateLeader() {
	top := 0
	for i := range w.snowmen {
		top = max(top, w.snowmen[i].Strikes)
	}
	if top != w.leaderStrikes && top == w.params.LeaderThreshold {
		w.log.Info("leader marking active", zap.Int("strikes", top))
	}
	w.leaderStrikes = top
}

// spawnSnowman creates a traveling snowman at a random spot inside the
// boundary with randomized traits.
func (w *World) spawnSnowman(id ActorID) Snowman {
	p := w.params
	distance := w.rng.Float32() * p.Boundary
	angle := w.rng.Float32() * 2 * gomath.Pi
	offset := math.Vec3{Z: distance}.RotateY(angle)
	heading := math.UnitZ.RotateY(w.rng.Float32() * 2 * gomath.Pi)

	return Snowman{
		ID:                id,
		State:             Traveling{},
		StateSince:        w.clock,
		Position:          p.Center.Add(offset),
		Heading:           heading,
		Speed:             uniform32(w.rng, p.MinSpeed, p.MaxSpeed),
		ThrowInterval:     p.MinThrowInterval + w.rng.Float64()*(p.MaxThrowInterval-p.MinThrowInterval),
		MeanThrowVelocity: uniform32(w.rng, p.MinThrowVelocity, p.MaxThrowVelocity),
		FOV:               uniform32(w.rng, p.MinFOV, p.MaxFOV),
		LastThrow:         w.clock,
	}
}

func uniform32(rng *rand.Rand, lo, hi float32) float32 {
	return lo + rng.Float32()*(hi-lo)
}

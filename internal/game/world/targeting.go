package world

// InFieldOfView reports whether other lies within s's field of view: the
// angle between the heading and the direction to other is at most s.FOV.
func InFieldOfView(s, other *Snowman) bool {
	to := other.Position.Sub(s.Position)
	return s.Heading.AngleTo(to) <= s.FOV
}

// FindTarget returns the nearest other snowman inside id's field of view.
// The first eligible candidate is always taken; later ones replace it only
// when strictly closer, so ties keep the earlier actor.
func (w *World) FindTarget(id ActorID) (ActorID, bool) {
	self := w.snowman(id)
	if self == nil {
		return NoActor, false
	}

	best := NoActor
	var bestDist float32
	for i := range w.snowmen {
		other := &w.snowmen[i]
		if other.ID == id || !InFieldOfView(self, other) {
			continue
		}
		d := other.Position.DistanceFrom(self.Position)
		if best == NoActor || d < bestDist {
			best = other.ID
			bestDist = d
		}
	}
	return best, best != NoActor
}

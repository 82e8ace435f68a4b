package world

import "github.com/Faultbox/snowfight/pkg/math"

// Collides reports whether ball b touches snowman s. The snowman is treated
// as its vertical axis from the ground to full body height, thickened by the
// base radius.
func (p Params) Collides(b *Snowball, s *Snowman) bool {
	if b.Source == s.ID {
		return false
	}

	bottom := s.Position
	top := bottom.Offset(0, p.BodyHeight(), 0)
	r := p.SnowballRadius

	if b.Position.Y+r < bottom.Y || b.Position.Y-r > top.Y {
		return false
	}
	return distanceToLine(b.Position, bottom, top) <= r+p.BaseRadius
}

// distanceToLine returns the distance from pt to the line through a and b.
func distanceToLine(pt, a, b math.Point3) float32 {
	axis := b.Sub(a)
	l := axis.Length()
	if l == 0 {
		return pt.DistanceFrom(a)
	}
	return pt.Sub(a).Cross(pt.Sub(b)).Length() / l
}

// resolveCollisions scores every hit and invalidates spent balls, including
// any ball touching the ground. Balls already invalidated this frame are
// ignored so one ball scores once.
func (w *World) resolveCollisions() {
	for i := range w.snowmen {
		s := &w.snowmen[i]
		for j := range w.snowballs {
			b := &w.snowballs[j]
			if b.Invalidated || !w.params.Collides(b, s) {
				continue
			}
			w.hit(b, s)
		}
	}

	for j := range w.snowballs {
		if b := &w.snowballs[j]; b.Position.Y-w.params.SnowballRadius <= 0 {
			b.Invalidated = true
		}
	}
}

func (w *World) hit(b *Snowball, target *Snowman) {
	if src := w.snowman(b.Source); src != nil {
		src.Strikes++
	}
	target.HitsReceived++
	w.enter(target, Hit{})
	b.Invalidated = true
}

// Sweep removes invalidated snowballs in one pass, calling the release hook
// for each, and returns how many were removed. A second call without new
// invalidations removes nothing.
func (w *World) Sweep() int {
	kept := w.snowballs[:0]
	removed := 0
	for _, b := range w.snowballs {
		if b.Invalidated {
			if w.release != nil {
				w.release(b.ID)
			}
			removed++
			continue
		}
		kept = append(kept, b)
	}
	clear(w.snowballs[len(kept):])
	w.snowballs = kept
	return removed
}

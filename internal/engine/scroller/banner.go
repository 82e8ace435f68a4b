package scroller

import (
	"image"
	"image/color"
)

// Phase is the visibility stage of the banner.
type Phase int

const (
	// PhaseLeadIn shows nothing.
	PhaseLeadIn Phase = iota
	// PhaseFadeIn ramps the background strip in.
	PhaseFadeIn
	// PhaseDisplay scrolls the message over the strip.
	PhaseDisplay
)

func (p Phase) String() string {
	switch p {
	case PhaseLeadIn:
		return "lead-in"
	case PhaseFadeIn:
		return "fade-in"
	case PhaseDisplay:
		return "display"
	default:
		return "unknown"
	}
}

// BannerConfig holds the banner timings and strip color.
type BannerConfig struct {
	LeadIn         float64 // ms
	FadeIn         float64 // ms
	UpdateInterval int     // frames between redraws
	Intensity      float64 // strip gray level, 0..1
	Alpha          float64 // strip opacity once faded in, 0..1
}

// DefaultBannerConfig returns the standard holiday banner timings.
func DefaultBannerConfig() BannerConfig {
	return BannerConfig{
		LeadIn:         4000,
		FadeIn:         3000,
		UpdateInterval: 2,
		Intensity:      0.1,
		Alpha:          0.4,
	}
}

// Banner drives a Scroller through its lead-in, fade-in and display phases
// and redraws the overlay canvas on a throttled interval.
type Banner struct {
	cfg      BannerConfig
	scroller *Scroller
	canvas   Canvas
	origin   image.Point

	phase     Phase
	phaseTime float64
	count     int
}

// NewBanner creates a banner drawing s onto canvas.
func NewBanner(cfg BannerConfig, s *Scroller, canvas Canvas) *Banner {
	return &Banner{
		cfg:      cfg,
		scroller: s,
		canvas:   canvas,
		origin:   canvas.Bounds().Min,
	}
}

// Phase returns the current phase.
func (b *Banner) Phase() Phase {
	return b.phase
}

// Scroller returns the driven scroller.
func (b *Banner) Scroller() *Scroller {
	return b.scroller
}

// Image returns the overlay raster.
func (b *Banner) Image() *image.RGBA {
	return b.canvas.Image()
}

// StripAlpha returns the strip opacity for the current phase.
func (b *Banner) StripAlpha() float64 {
	switch b.phase {
	case PhaseLeadIn:
		return 0
	case PhaseFadeIn:
		if b.cfg.FadeIn <= 0 {
			return b.cfg.Alpha
		}
		return b.cfg.Alpha * min(b.phaseTime/b.cfg.FadeIn, 1)
	default:
		return b.cfg.Alpha
	}
}

// Frame redraws the overlay when the interval counter is due, then advances
// the phase clock by dt ms. It reports whether the raster was due for upload
// this frame.
func (b *Banner) Frame(dt float64) bool {
	due := b.count >= b.cfg.UpdateInterval
	if due && b.phase != PhaseLeadIn {
		b.redraw()
	}
	b.advance(dt)
	return due
}

func (b *Banner) redraw() {
	bounds := b.canvas.Bounds()
	b.canvas.ClearRect(image.Rectangle{Min: b.origin, Max: bounds.Max})

	strip := image.Rect(b.origin.X, b.origin.Y, bounds.Max.X, b.origin.Y+b.scroller.TextAreaHeight())
	b.canvas.FillRect(strip, stripColor(b.cfg.Intensity, b.StripAlpha()))

	if b.phase == PhaseDisplay {
		b.scroller.Render(b.canvas, b.origin.X, b.origin.Y)
		b.scroller.Advance()
	}
}

func (b *Banner) advance(dt float64) {
	b.phaseTime += dt
	switch {
	case b.phase == PhaseLeadIn && b.phaseTime >= b.cfg.LeadIn:
		b.phase = PhaseFadeIn
		b.phaseTime = 0
	case b.phase == PhaseFadeIn && b.phaseTime >= b.cfg.FadeIn:
		b.phase = PhaseDisplay
		b.phaseTime = 0
	}

	b.count++
	if b.count > b.cfg.UpdateInterval {
		b.count = 0
	}
}

func stripColor(intensity, alpha float64) color.NRGBA {
	v := unit8(intensity)
	return color.NRGBA{R: v, G: v, B: v, A: unit8(alpha)}
}

func unit8(v float64) uint8 {
	return uint8(min(max(v, 0), 1)*255 + 0.5)
}

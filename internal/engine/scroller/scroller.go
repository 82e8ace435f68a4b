// Package scroller implements the segmented marquee that scrolls the holiday
// message across the overlay strip.
package scroller

import (
	"image"
	"image/color"
	gomath "math"
)

// Canvas is the 2D surface the scroller measures and draws with.
// overlay.Canvas satisfies it.
type Canvas interface {
	Bounds() image.Rectangle
	ClearRect(r image.Rectangle)
	FillRect(r image.Rectangle, c color.Color)
	MeasureText(s string) float64
	FillText(s string, x, y float64, c color.Color)
	DrawImage(src image.Image, x, y int)
	Image() *image.RGBA
}

// Factory creates an off-screen surface of the given size.
type Factory func(width, height int) Canvas

// descentFactor leaves room below the baseline for descenders.
const descentFactor = 1.5

// DefaultStep is the scroll distance per Advance in pixels.
const DefaultStep = 4

// Scroller splits a message into segments no wider than the target canvas
// and keeps two consecutive segments rendered on lead and trailing surfaces.
type Scroller struct {
	text      string
	fontSize  float64
	step      int
	color     color.Color
	newCanvas Factory

	segments []string
	widths   []int

	index    int
	offset   int
	finished bool

	lead     Canvas
	trailing Canvas
}

// New creates a scroller for text at fontSize px. A non-positive step uses
// DefaultStep.
func New(text string, fontSize float64, step int, factory Factory) *Scroller {
	if step <= 0 {
		step = DefaultStep
	}
	return &Scroller{
		text:      text,
		fontSize:  fontSize,
		step:      step,
		color:     color.White,
		newCanvas: factory,
	}
}

// SetText replaces the message. The scroller restarts at the next Render.
func (s *Scroller) SetText(text string) {
	s.text = text
	s.segments = nil
	s.widths = nil
}

// TextAreaHeight returns the strip height the text needs in pixels.
func (s *Scroller) TextAreaHeight() int {
	return int(gomath.Ceil(descentFactor * s.fontSize))
}

// Initialized reports whether segments exist and the end has not been reached.
func (s *Scroller) Initialized() bool {
	return len(s.segments) > 0 && !s.finished
}

// Finished reports whether the last segment has scrolled off.
func (s *Scroller) Finished() bool {
	return s.finished
}

// Segments returns the current message segments.
func (s *Scroller) Segments() []string {
	return s.segments
}

// Index returns the segment shown on the lead surface.
func (s *Scroller) Index() int {
	return s.index
}

// Offset returns the scroll position within the lead segment in pixels.
func (s *Scroller) Offset() int {
	return s.offset
}

// Init segments the message against ref and renders the first two segments.
// The text starts just past the right edge of ref. It is a no-op when ref has
// no width.
func (s *Scroller) Init(ref Canvas) {
	width := ref.Bounds().Dx()
	if width <= 0 {
		return
	}
	s.finished = false
	s.index = 0
	s.segments, s.widths = split(s.text, ref, width)

	s.offset = -width
	s.lead, s.trailing = nil, nil
	if len(s.segments) > 0 {
		s.lead = s.renderSegment(0)
	}
	if len(s.segments) > 1 {
		s.trailing = s.renderSegment(1)
	}
}

// split divides text into ceil(textWidth/width) runs of equal rune count.
// The last run may be shorter.
func split(text string, ref Canvas, width int) ([]string, []int) {
	runes := []rune(text)
	total := ref.MeasureText(text)
	n := int(gomath.Ceil(total / float64(width)))
	if n <= 0 || len(runes) == 0 {
		return nil, nil
	}
	per := (len(runes) + n - 1) / n

	segments := make([]string, 0, n)
	widths := make([]int, 0, n)
	for i := 0; i < n; i++ {
		start := min(i*per, len(runes))
		end := min((i+1)*per, len(runes))
		seg := string(runes[start:end])
		segments = append(segments, seg)
		widths = append(widths, int(gomath.Ceil(ref.MeasureText(seg))))
	}
	return segments, widths
}

func (s *Scroller) renderSegment(i int) Canvas {
	c := s.newCanvas(s.widths[i], s.TextAreaHeight())
	c.ClearRect(c.Bounds())
	c.FillText(s.segments[i], 0, s.fontSize, s.color)
	return c
}

func surfaceWidth(c Canvas) int {
	if c == nil {
		return 0
	}
	return c.Bounds().Dx()
}

// Advance moves the text left by one step. Once the lead surface is fully
// off the left edge the trailing surface takes its place.
func (s *Scroller) Advance() {
	if s.finished {
		return
	}
	s.offset += s.step
	leadWidth := surfaceWidth(s.lead)
	if s.offset <= leadWidth {
		return
	}

	s.offset -= leadWidth
	s.index++
	if s.index >= len(s.segments) {
		s.finished = true
		return
	}
	s.lead = s.trailing
	s.trailing = nil
	if s.index+1 < len(s.segments) {
		s.trailing = s.renderSegment(s.index + 1)
	}
}

// Render draws the lead and trailing surfaces onto dst with the strip's
// top-left corner at (x, y), restarting the message first if needed.
func (s *Scroller) Render(dst Canvas, x, y int) {
	if !s.Initialized() {
		s.Init(dst)
	}
	if s.lead != nil {
		dst.DrawImage(s.lead.Image(), x-s.offset, y)
	}
	if s.trailing != nil {
		dst.DrawImage(s.trailing.Image(), x+surfaceWidth(s.lead)-s.offset, y)
	}
}

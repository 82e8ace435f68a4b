package scroller

import (
	"image"
	"image/color"
	"unicode/utf8"
)

const runeWidth = 10

type fill struct {
	rect  image.Rectangle
	color color.Color
}

type blit struct {
	x, y  int
	width int
}

// fakeCanvas measures every rune as runeWidth pixels and records calls.
type fakeCanvas struct {
	img    *image.RGBA
	texts  []string
	fills  []fill
	clears []image.Rectangle
	blits  []blit
}

func newFakeCanvas(w, h int) *fakeCanvas {
	return &fakeCanvas{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (c *fakeCanvas) Bounds() image.Rectangle { return c.img.Bounds() }

func (c *fakeCanvas) ClearRect(r image.Rectangle) { c.clears = append(c.clears, r) }

func (c *fakeCanvas) FillRect(r image.Rectangle, col color.Color) {
	c.fills = append(c.fills, fill{r, col})
}

func (c *fakeCanvas) MeasureText(s string) float64 {
	return float64(utf8.RuneCountInString(s) * runeWidth)
}

func (c *fakeCanvas) FillText(s string, _, _ float64, _ color.Color) {
	c.texts = append(c.texts, s)
}

func (c *fakeCanvas) DrawImage(src image.Image, x, y int) {
	c.blits = append(c.blits, blit{x, y, src.Bounds().Dx()})
}

func (c *fakeCanvas) Image() *image.RGBA { return c.img }

// surfaceLog collects the surfaces a Scroller creates.
type surfaceLog struct {
	created []*fakeCanvas
}

func (l *surfaceLog) factory(w, h int) Canvas {
	c := newFakeCanvas(w, h)
	l.created = append(l.created, c)
	return c
}

func (l *surfaceLog) texts() []string {
	var out []string
	for _, c := range l.created {
		out = append(out, c.texts...)
	}
	return out
}

package overlay

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCanvas(t *testing.T, w, h int) *Canvas {
	t.Helper()
	face, err := NewItalicFace(20)
	require.NoError(t, err)
	return New(w, h, face)
}

func TestMeasureText(t *testing.T) {
	c := newTestCanvas(t, DefaultWidth, DefaultHeight)

	assert.Zero(t, c.MeasureText(""))
	short := c.MeasureText("Happy")
	long := c.MeasureText("Happy holidays")
	assert.Greater(t, short, 0.0)
	assert.Greater(t, long, short)
}

func TestFillAndClearRect(t *testing.T) {
	c := newTestCanvas(t, 8, 4)
	strip := image.Rect(0, 0, 8, 4)

	c.FillRect(strip, color.NRGBA{R: 26, G: 26, B: 26, A: 102})
	px := c.Image().RGBAAt(3, 2)
	assert.Equal(t, uint8(102), px.A)
	assert.LessOrEqual(t, px.R, px.A, "premultiplied")

	c.ClearRect(image.Rect(0, 0, 4, 4))
	assert.Equal(t, color.RGBA{}, c.Image().RGBAAt(1, 1))
	assert.Equal(t, uint8(102), c.Image().RGBAAt(6, 1).A)
}

func TestFillTextDrawsInsideStrip(t *testing.T) {
	c := newTestCanvas(t, 200, 30)
	c.FillText("Joy", 0, 20, color.White)

	var lit int
	img := c.Image()
	for y := 0; y < 30; y++ {
		for x := 0; x < 200; x++ {
			if img.RGBAAt(x, y).A > 0 {
				lit++
			}
		}
	}
	assert.Positive(t, lit)
}

func TestDrawImageOffsets(t *testing.T) {
	c := newTestCanvas(t, 10, 2)
	src := New(2, 2, nil)
	src.FillRect(src.Bounds(), color.White)

	c.DrawImage(src.Image(), 5, 0)
	assert.Zero(t, c.Image().RGBAAt(4, 0).A)
	assert.Equal(t, uint8(255), c.Image().RGBAAt(5, 0).A)
	assert.Equal(t, uint8(255), c.Image().RGBAAt(6, 1).A)
	assert.Zero(t, c.Image().RGBAAt(7, 0).A)

	c.DrawImage(src.Image(), -1, 0)
	assert.Equal(t, uint8(255), c.Image().RGBAAt(0, 0).A)
}

func TestNilFaceIsInert(t *testing.T) {
	c := New(4, 4, nil)
	assert.Zero(t, c.MeasureText("abc"))
	c.FillText("abc", 0, 2, color.White)
	assert.Zero(t, c.Image().RGBAAt(0, 0).A)
}

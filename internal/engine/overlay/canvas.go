// Package overlay provides the 2D raster the scroller draws into before it is
// uploaded as the overlay texture.
package overlay

import (
	"fmt"
	"image"
	"image/color"
	gomath "math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Default raster size of the overlay strip.
const (
	DefaultWidth  = 960
	DefaultHeight = 48
)

// NewItalicFace returns the Go italic face at size px.
func NewItalicFace(size float64) (font.Face, error) {
	f, err := opentype.Parse(goitalic.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse italic font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72, // one point per pixel
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	return face, nil
}

// Canvas is an RGBA raster with a text face.
type Canvas struct {
	img  *image.RGBA
	face font.Face
}

// New creates a transparent canvas. Non-positive sizes yield an empty raster.
func New(width, height int, face font.Face) *Canvas {
	return &Canvas{
		img:  image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0))),
		face: face,
	}
}

// Bounds returns the raster bounds.
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Bounds()
}

// ClearRect makes r fully transparent.
func (c *Canvas) ClearRect(r image.Rectangle) {
	draw.Draw(c.img, r, image.Transparent, image.Point{}, draw.Src)
}

// FillRect composites col over r.
func (c *Canvas) FillRect(r image.Rectangle, col color.Color) {
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Over)
}

// MeasureText returns the advance width of s in pixels.
func (c *Canvas) MeasureText(s string) float64 {
	if c.face == nil {
		return 0
	}
	return fixedToFloat(font.MeasureString(c.face, s))
}

// FillText draws s with its baseline starting at (x, y).
func (c *Canvas) FillText(s string, x, y float64, col color.Color) {
	if c.face == nil {
		return
	}
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: c.face,
		Dot:  fixed.Point26_6{X: floatToFixed(x), Y: floatToFixed(y)},
	}
	d.DrawString(s)
}

// DrawImage composites src with its top-left corner at (x, y).
func (c *Canvas) DrawImage(src image.Image, x, y int) {
	b := src.Bounds()
	draw.Draw(c.img, b.Sub(b.Min).Add(image.Pt(x, y)), src, b.Min, draw.Over)
}

// Image returns the backing raster.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(gomath.Round(v * 64))
}

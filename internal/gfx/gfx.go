// Package gfx defines the drawing context the watch face paints through and
// a software implementation of it backed by an *image.RGBA.
package gfx

import (
	"image"
	"image/color"

	"owlface/internal/geom"
)

var (
	ColorBlack      = color.RGBA{0x00, 0x00, 0x00, 0xff}
	ColorWhite      = color.RGBA{0xff, 0xff, 0xff, 0xff}
	ColorOxfordBlue = color.RGBA{0x00, 0x00, 0x55, 0xff}
	ColorClear      = color.RGBA{}
)

// CompOp controls how a bitmap is combined with what is already drawn.
type CompOp int

const (
	// CompOpAssign copies the bitmap pixels, transparency included.
	CompOpAssign CompOp = iota
	// CompOpSet draws the bitmap over the destination; transparent pixels
	// leave it untouched.
	CompOpSet
)

func (op CompOp) String() string {
	switch op {
	case CompOpAssign:
		return "assign"
	case CompOpSet:
		return "set"
	}
	return "unknown"
}

// Context is the set of drawing primitives a layer update proc may use.
// Implementations are not safe for concurrent use.
type Context interface {
	SetFillColor(c color.Color)
	SetStrokeColor(c color.Color)
	FillRect(r image.Rectangle)
	DrawBitmap(b *Bitmap, r image.Rectangle, op CompOp)
	FillPolygon(pts []geom.Point)
	StrokePolygon(pts []geom.Point)
}

// Bitmap is a decoded image owned by whoever created it.
type Bitmap struct {
	name string
	img  image.Image
}

func NewBitmap(name string, img image.Image) *Bitmap {
	return &Bitmap{name: name, img: img}
}

func (b *Bitmap) Name() string { return b.name }

// Image returns the pixels, or nil once the bitmap has been released.
func (b *Bitmap) Image() image.Image { return b.img }

func (b *Bitmap) Bounds() image.Rectangle {
	if b.img == nil {
		return image.Rectangle{}
	}
	return b.img.Bounds()
}

// Release drops the pixel data. Drawing a released bitmap is a no-op.
func (b *Bitmap) Release() { b.img = nil }

func (b *Bitmap) Released() bool { return b.img == nil }

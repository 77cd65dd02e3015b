//go:build !tinygo

// Package ebitengfx implements gfx.Context on an ebiten image.
package ebitengfx

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"owlface/internal/geom"
	"owlface/internal/gfx"
)

// Context draws onto one *ebiten.Image per frame. Decoded bitmaps are
// uploaded once and kept until the bitmap is released.
type Context struct {
	dst    *ebiten.Image
	fill   color.Color
	stroke color.Color

	images map[*gfx.Bitmap]*ebiten.Image
	path   vector.Path
}

func New() *Context {
	return &Context{
		fill:   gfx.ColorBlack,
		stroke: gfx.ColorBlack,
		images: make(map[*gfx.Bitmap]*ebiten.Image),
	}
}

// Begin targets dst and frees textures of released bitmaps.
func (c *Context) Begin(dst *ebiten.Image) {
	c.dst = dst
	for b, img := range c.images {
		if b.Released() {
			img.Deallocate()
			delete(c.images, b)
		}
	}
}

// Cached reports how many bitmap textures are held.
func (c *Context) Cached() int { return len(c.images) }

func (c *Context) SetFillColor(clr color.Color) { c.fill = clr }

func (c *Context) SetStrokeColor(clr color.Color) { c.stroke = clr }

func (c *Context) FillRect(r image.Rectangle) {
	vector.FillRect(c.dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c.fill, false)
}

func (c *Context) DrawBitmap(b *gfx.Bitmap, r image.Rectangle, op gfx.CompOp) {
	img := c.texture(b)
	if img == nil {
		return
	}
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	if op == gfx.CompOpAssign {
		opts.Blend = ebiten.BlendCopy
	}
	sb := img.Bounds()
	w, h := min(sb.Dx(), r.Dx()), min(sb.Dy(), r.Dy())
	c.dst.DrawImage(img.SubImage(image.Rect(sb.Min.X, sb.Min.Y, sb.Min.X+w, sb.Min.Y+h)).(*ebiten.Image), opts)
}

func (c *Context) texture(b *gfx.Bitmap) *ebiten.Image {
	if b.Released() {
		return nil
	}
	img, ok := c.images[b]
	if !ok {
		img = ebiten.NewImageFromImage(b.Image())
		c.images[b] = img
	}
	return img
}

// FillPolygon fills pts with the fill color. Vertices sit on pixel centers.
func (c *Context) FillPolygon(pts []geom.Point) {
	if len(pts) < 3 {
		return
	}
	c.path.Reset()
	c.path.MoveTo(float32(pts[0].X)+0.5, float32(pts[0].Y)+0.5)
	for _, p := range pts[1:] {
		c.path.LineTo(float32(p.X)+0.5, float32(p.Y)+0.5)
	}
	c.path.Close()

	op := &vector.DrawPathOptions{}
	op.ColorScale.ScaleWithColor(c.fill)
	vector.FillPath(c.dst, &c.path, &vector.FillOptions{FillRule: vector.FillRuleNonZero}, op)
}

// StrokePolygon draws a closed one-pixel outline through pts.
func (c *Context) StrokePolygon(pts []geom.Point) {
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		vector.StrokeLine(c.dst,
			float32(a.X)+0.5, float32(a.Y)+0.5,
			float32(b.X)+0.5, float32(b.Y)+0.5,
			1, c.stroke, false)
	}
}

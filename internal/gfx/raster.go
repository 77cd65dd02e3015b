package gfx

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"

	"owlface/internal/geom"
)

// Raster is a software Context drawing into an RGBA image.
type Raster struct {
	dst    *image.RGBA
	fill   color.Color
	stroke color.Color
	z      *vector.Rasterizer
}

// NewRaster returns a Raster over a fresh w×h image cleared to transparent.
func NewRaster(w, h int) *Raster {
	return NewRasterOn(image.NewRGBA(image.Rect(0, 0, w, h)))
}

// NewRasterOn draws into dst.
func NewRasterOn(dst *image.RGBA) *Raster {
	return &Raster{
		dst:    dst,
		fill:   ColorBlack,
		stroke: ColorBlack,
	}
}

func (r *Raster) Image() *image.RGBA { return r.dst }

func (r *Raster) SetFillColor(c color.Color) { r.fill = c }

func (r *Raster) SetStrokeColor(c color.Color) { r.stroke = c }

func (r *Raster) FillRect(rect image.Rectangle) {
	draw.Draw(r.dst, rect, image.NewUniform(r.fill), image.Point{}, draw.Src)
}

func (r *Raster) DrawBitmap(b *Bitmap, rect image.Rectangle, op CompOp) {
	src := b.Image()
	if src == nil {
		return
	}
	dop := draw.Src
	if op == CompOpSet {
		dop = draw.Over
	}
	draw.Draw(r.dst, rect, src, src.Bounds().Min, dop)
}

// FillPolygon fills pts with the fill color. Vertices sit on pixel centers.
func (r *Raster) FillPolygon(pts []geom.Point) {
	if len(pts) < 3 {
		return
	}
	b := r.dst.Bounds()
	if r.z == nil {
		r.z = vector.NewRasterizer(b.Dx(), b.Dy())
	} else {
		r.z.Reset(b.Dx(), b.Dy())
	}
	r.z.DrawOp = draw.Over
	r.z.MoveTo(float32(pts[0].X-b.Min.X)+0.5, float32(pts[0].Y-b.Min.Y)+0.5)
	for _, p := range pts[1:] {
		r.z.LineTo(float32(p.X-b.Min.X)+0.5, float32(p.Y-b.Min.Y)+0.5)
	}
	r.z.ClosePath()
	r.z.Draw(r.dst, b, image.NewUniform(r.fill), image.Point{})
}

// StrokePolygon draws a closed one-pixel outline through pts.
func (r *Raster) StrokePolygon(pts []geom.Point) {
	for i := range pts {
		r.line(pts[i], pts[(i+1)%len(pts)])
	}
}

func (r *Raster) line(a, b geom.Point) {
	dx, sx := abs(b.X-a.X), 1
	if a.X > b.X {
		sx = -1
	}
	dy, sy := -abs(b.Y-a.Y), 1
	if a.Y > b.Y {
		sy = -1
	}
	e := dx + dy
	x, y := a.X, a.Y
	for {
		r.dst.Set(x, y, r.stroke)
		if x == b.X && y == b.Y {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

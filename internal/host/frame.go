// Package host runs a ui.Runtime without a desktop window: headless for
// logs and soak runs, as a one-shot PNG snapshot, or pushing RGB565
// frames to an SPI panel.
package host

import (
	"image"

	"owlface/internal/gfx"
	"owlface/internal/ui"
)

// Frame is a reusable software framebuffer for a runtime's display.
type Frame struct {
	raster *gfx.Raster
	rgb565 []byte
}

func NewFrame(bounds image.Rectangle) *Frame {
	return &Frame{raster: gfx.NewRasterOn(image.NewRGBA(bounds))}
}

func (f *Frame) Image() *image.RGBA { return f.raster.Image() }

func (f *Frame) Context() gfx.Context { return f.raster }

// Render repaints the top window if it is dirty and reports whether it did.
func (f *Frame) Render(rt *ui.Runtime) bool {
	if !rt.NeedsRender() {
		return false
	}
	return rt.Render(f.raster)
}

// RGB565 packs the frame big-endian, row by row, as SPI panels expect.
func (f *Frame) RGB565() []byte {
	img := f.Image()
	b := img.Bounds()
	n := b.Dx() * b.Dy() * 2
	if cap(f.rgb565) < n {
		f.rgb565 = make([]byte, n)
	}
	f.rgb565 = f.rgb565[:n]
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.RGBAAt(x, y)
			p := rgb565(c.R, c.G, c.B)
			f.rgb565[i] = byte(p >> 8)
			f.rgb565[i+1] = byte(p)
			i += 2
		}
	}
	return f.rgb565
}

func rgb565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

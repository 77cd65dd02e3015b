//go:build !tinygo

package ebitengfx_test

import (
	"testing"

	"owlface/internal/gfx"
	"owlface/internal/gfx/ebitengfx"
)

var _ gfx.Context = (*ebitengfx.Context)(nil)

// New allocates nothing on the GPU, so it runs without a window.
func TestNewHoldsNoTextures(t *testing.T) {
	c := ebitengfx.New()
	c.SetFillColor(gfx.ColorOxfordBlue)
	c.SetStrokeColor(gfx.ColorWhite)
	if got := c.Cached(); got != 0 {
		t.Errorf("Cached() = %d on a new context, want 0", got)
	}
}

package host

import (
	"context"
	"fmt"
	"time"

	"owlface/internal/ui"
)

// Panel is an SPI display taking big-endian RGB565 rectangles, as the
// tinygo st7789 driver does.
type Panel interface {
	DrawRGBBitmap8(x, y int16, data []uint8, w, h int16) error
}

// PanelConfig places the face on the panel.
type PanelConfig struct {
	Hz   int
	X, Y int16 // top-left of the face on the panel
}

// RunPanel polls rt and pushes a full frame to p after every repaint.
func RunPanel(ctx context.Context, rt *ui.Runtime, p Panel, cfg PanelConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 1
	}
	frame := NewFrame(rt.Bounds())
	push := func() error {
		rt.Step()
		if !frame.Render(rt) {
			return nil
		}
		b := rt.Bounds()
		if err := p.DrawRGBBitmap8(cfg.X, cfg.Y, frame.RGB565(), int16(b.Dx()), int16(b.Dy())); err != nil {
			return fmt.Errorf("push frame: %w", err)
		}
		return nil
	}

	if err := push(); err != nil {
		return err
	}
	t := time.NewTicker(time.Second / time.Duration(cfg.Hz))
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if err := push(); err != nil {
				return err
			}
		}
	}
}

package host

import (
	"context"
	"fmt"
	"log"
	"time"

	"owlface/internal/clock"
	"owlface/internal/ui"
)

// HeadlessConfig controls the no-window runner.
type HeadlessConfig struct {
	Hz     int
	Ticks  uint64 // stop after this many polls; 0 runs until ctx is done
	Logger *log.Logger
}

// RunHeadless polls rt at cfg.Hz, renders into a software frame whenever
// the face asks for it and logs each redraw.
func RunHeadless(ctx context.Context, rt *ui.Runtime, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 1
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	frame := NewFrame(rt.Bounds())
	step := func() {
		rt.Step()
		if frame.Render(rt) {
			r := clock.Read(rt.Clock)
			cfg.Logger.Printf("redraw %02d:%02d", r.Hour, r.Minute)
		}
	}

	step()
	var n uint64 = 1
	if cfg.Ticks > 0 && n >= cfg.Ticks {
		return nil
	}

	t := time.NewTicker(d)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			step()
			n++
			if cfg.Ticks > 0 && n >= cfg.Ticks {
				return nil
			}
		}
	}
}

package host_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"owlface/internal/assets"
	"owlface/internal/clock"
	"owlface/internal/face"
	"owlface/internal/gfx"
	"owlface/internal/host"
	"owlface/internal/ui"
)

var screen = image.Rect(0, 0, 144, 168)

func newFace(t *testing.T) (*ui.Runtime, *face.Owl) {
	t.Helper()
	c := clock.NewManual(time.Date(2026, 10, 19, 10, 9, 0, 0, time.UTC))
	rt := ui.NewRuntime(screen, c, assets.Bundled())
	opts := face.DefaultOptions()
	opts.Color = true
	opts.Logger = log.New(io.Discard, "", 0)
	owl := face.New(rt, opts)
	owl.Init()
	t.Cleanup(owl.Deinit)
	return rt, owl
}

func TestFrameRGB565(t *testing.T) {
	f := host.NewFrame(image.Rect(0, 0, 2, 1))
	f.Image().SetRGBA(0, 0, gfx.ColorOxfordBlue)
	f.Image().SetRGBA(1, 0, gfx.ColorWhite)

	want := []byte{0x00, 0x0A, 0xFF, 0xFF}
	if diff := cmp.Diff(want, f.RGB565()); diff != "" {
		t.Errorf("RGB565 mismatch (-want +got):\n%s", diff)
	}
}

func TestSnapshot(t *testing.T) {
	rt, _ := newFace(t)

	var buf bytes.Buffer
	if err := host.Snapshot(rt, &buf); err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if img.Bounds() != screen {
		t.Errorf("snapshot bounds = %v, want %v", img.Bounds(), screen)
	}
}

func TestSnapshotWithoutWindow(t *testing.T) {
	rt := ui.NewRuntime(screen, nil, nil)
	if err := host.Snapshot(rt, io.Discard); err == nil {
		t.Error("Snapshot returned nil error with an empty stack")
	}
}

func TestRunHeadlessTicks(t *testing.T) {
	rt, owl := newFace(t)
	var logs bytes.Buffer

	err := host.RunHeadless(context.Background(), rt, host.HeadlessConfig{
		Hz:     1000,
		Ticks:  3,
		Logger: log.New(&logs, "", 0),
	})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if got := strings.Count(logs.String(), "redraw 10:09"); got != 1 {
		t.Errorf("logged %d redraws, want 1:\n%s", got, logs.String())
	}
	if owl.Redraws() != 1 {
		t.Errorf("Redraws() = %d, want 1", owl.Redraws())
	}
}

func TestRunHeadlessCancel(t *testing.T) {
	rt, _ := newFace(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := host.RunHeadless(ctx, rt, host.HeadlessConfig{Hz: 1, Logger: log.New(io.Discard, "", 0)})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("RunHeadless = %v, want context.Canceled", err)
	}
}

type fakePanel struct {
	cancel context.CancelFunc
	calls  int
	x, y   int16
	w, h   int16
	size   int
	err    error
}

func (p *fakePanel) DrawRGBBitmap8(x, y int16, data []uint8, w, h int16) error {
	p.calls++
	p.x, p.y, p.w, p.h, p.size = x, y, w, h, len(data)
	p.cancel()
	return p.err
}

func TestRunPanel(t *testing.T) {
	rt, _ := newFace(t)
	ctx, cancel := context.WithCancel(context.Background())
	p := &fakePanel{cancel: cancel}

	err := host.RunPanel(ctx, rt, p, host.PanelConfig{Hz: 1000, X: 48, Y: 36})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("RunPanel = %v, want context.Canceled", err)
	}
	if p.calls != 1 {
		t.Errorf("panel pushed %d frames, want 1", p.calls)
	}
	if p.x != 48 || p.y != 36 || p.w != 144 || p.h != 168 || p.size != 144*168*2 {
		t.Errorf("push = (%d,%d %dx%d, %d bytes)", p.x, p.y, p.w, p.h, p.size)
	}
}

func TestRunPanelError(t *testing.T) {
	rt, _ := newFace(t)
	boom := errors.New("spi busy")
	p := &fakePanel{cancel: func() {}, err: boom}

	err := host.RunPanel(context.Background(), rt, p, host.PanelConfig{})
	if !errors.Is(err, boom) {
		t.Errorf("RunPanel = %v, want %v", err, boom)
	}
}

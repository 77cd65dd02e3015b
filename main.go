//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"owlface/internal/assets"
	"owlface/internal/clock"
	"owlface/internal/config"
	"owlface/internal/face"
	"owlface/internal/host"
	"owlface/internal/ui"
)

// Watch display
const (
	ScreenWidth  = 144
	ScreenHeight = 168
	WindowTitle  = "Owl Face"
)

type options struct {
	configPath string
	snapshot   string
	at         string
	platform   string
	headless   bool
	debug      bool
	hz         int
	scale      int
	ticks      uint64
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "JSON config file.")
	flag.StringVar(&opts.snapshot, "snapshot", "", "Render one frame to this PNG file and exit.")
	flag.StringVar(&opts.at, "at", "", "Pin the clock to HH:MM instead of following the system clock.")
	flag.StringVar(&opts.platform, "platform", "", "Display palette: color or bw.")
	flag.BoolVar(&opts.headless, "headless", false, "Run without a window.")
	flag.BoolVar(&opts.debug, "debug", false, "Show a debug overlay in the window.")
	flag.IntVar(&opts.hz, "hz", 0, "Poll rate in headless mode.")
	flag.IntVar(&opts.scale, "scale", 0, "Window scale factor.")
	flag.Uint64Var(&opts.ticks, "ticks", 0, "Stop after N polls in headless mode (0 = run forever).")
	flag.Parse()

	cfg, err := loadConfig(opts)
	if err != nil {
		log.Fatal(err)
	}

	var c clock.Clock = clock.System{}
	if opts.at != "" {
		t, err := clock.ParseHHMM(opts.at, time.Now())
		if err != nil {
			log.Fatal(err)
		}
		c = clock.NewManual(t)
	}

	resources := assets.Bundled()
	if cfg.AssetsDir != "" {
		resources = assets.NewPack(os.DirFS(cfg.AssetsDir))
	}
	rt := ui.NewRuntime(image.Rect(0, 0, ScreenWidth, ScreenHeight), c, resources)

	// 1. Init
	owl := face.New(rt, face.Options{
		Color:       cfg.Color(),
		MinutePivot: cfg.MinutePivot,
		HourPivot:   cfg.HourPivot,
	})
	owl.Init()

	// 2. Run Loop
	err = run(rt, owl, cfg, opts)

	// 3. Deinit
	owl.Deinit()
	if err != nil {
		log.Fatal(err)
	}
}

func loadConfig(opts options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.platform != "" {
		cfg.Platform = opts.platform
	}
	if opts.scale > 0 {
		cfg.Scale = opts.scale
	}
	if opts.hz > 0 {
		cfg.HeadlessHz = opts.hz
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}

func run(rt *ui.Runtime, owl *face.Owl, cfg *config.Config, opts options) error {
	switch {
	case opts.snapshot != "":
		f, err := os.Create(opts.snapshot)
		if err != nil {
			return err
		}
		if err := host.Snapshot(rt, f); err != nil {
			f.Close()
			return err
		}
		return f.Close()

	case opts.headless:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err := host.RunHeadless(ctx, rt, host.HeadlessConfig{Hz: cfg.HeadlessHz, Ticks: opts.ticks})
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	// Window Setup
	ebiten.SetWindowSize(ScreenWidth*cfg.Scale, ScreenHeight*cfg.Scale)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetScreenClearedEveryFrame(false)

	return ebiten.RunGame(NewGame(rt, owl, opts.debug))
}

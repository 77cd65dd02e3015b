//go:build !tinygo

package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"owlface/internal/face"
	"owlface/internal/gfx/ebitengfx"
	"owlface/internal/ui"
)

// Game adapts the watch runtime to ebiten's loop.
type Game struct {
	rt    *ui.Runtime
	owl   *face.Owl
	ctx   *ebitengfx.Context
	debug bool
	Tick  int
}

func NewGame(rt *ui.Runtime, owl *face.Owl, debug bool) *Game {
	return &Game{
		rt:    rt,
		owl:   owl,
		ctx:   ebitengfx.New(),
		debug: debug,
	}
}

// Update: Logic (TPS). Delivers minute ticks to the face.
func (g *Game) Update() error {
	g.Tick++
	g.rt.Step()
	return nil
}

// Draw: Rendering (VSync). The screen keeps its pixels between frames, so
// the face is only repainted when it asked for it.
func (g *Game) Draw(screen *ebiten.Image) {
	if !g.rt.NeedsRender() && !g.debug {
		return
	}
	g.ctx.Begin(screen)
	g.rt.Render(g.ctx)

	if g.debug {
		msg := fmt.Sprintf("TPS %.0f\nredraws %d\ntextures %d\n%s",
			ebiten.ActualTPS(), g.owl.Redraws(), g.ctx.Cached(), g.rt.Ledger)
		ebitenutil.DebugPrint(screen, msg)
	}
}

// Layout: Scaling Strategy
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	// Always render at the watch resolution, let Ebiten scale it up
	return ScreenWidth, ScreenHeight
}

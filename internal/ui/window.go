package ui

import (
	"image"
	"image/color"

	"owlface/internal/gfx"
)

// WindowHandlers are called as the window enters and leaves the stack.
type WindowHandlers struct {
	Load   func(w *Window)
	Unload func(w *Window)
}

// Window is a full-screen root layer plus its lifecycle handlers.
type Window struct {
	root       *Layer
	handlers   WindowHandlers
	background color.Color
	loaded     bool
	dirty      bool
	stack      *Stack
	ledger     *Ledger
}

func newWindow(bounds image.Rectangle, ledger *Ledger) *Window {
	ledger.Create(KindWindow)
	w := &Window{
		root:       &Layer{bounds: bounds},
		background: gfx.ColorWhite,
		ledger:     ledger,
	}
	w.root.window = w
	return w
}

func (w *Window) RootLayer() *Layer { return w.root }

func (w *Window) SetWindowHandlers(h WindowHandlers) { w.handlers = h }

func (w *Window) SetBackgroundColor(c color.Color) {
	w.background = c
	w.dirty = true
}

func (w *Window) Loaded() bool { return w.loaded }

func (w *Window) Dirty() bool { return w.dirty }

// Render paints the background and the layer tree, then clears the dirty
// flag.
func (w *Window) Render(ctx gfx.Context) {
	ctx.SetFillColor(w.background)
	ctx.FillRect(w.root.bounds)
	w.root.draw(ctx)
	w.dirty = false
}

// Destroy removes the window from its stack, unloading it, and releases it.
func (w *Window) Destroy() {
	if w.stack != nil {
		w.stack.Remove(w)
	}
	w.root.children = nil
	w.ledger.Destroy(KindWindow)
}

func (w *Window) load() {
	if w.loaded {
		return
	}
	w.loaded = true
	if w.handlers.Load != nil {
		w.handlers.Load(w)
	}
	w.dirty = true
}

func (w *Window) unload() {
	if !w.loaded {
		return
	}
	if w.handlers.Unload != nil {
		w.handlers.Unload(w)
	}
	w.loaded = false
}

// Stack holds the pushed windows; the top one is displayed.
type Stack struct {
	windows []*Window
}

// Push loads w and shows it on top.
func (s *Stack) Push(w *Window) {
	s.Remove(w)
	s.windows = append(s.windows, w)
	w.stack = s
	w.load()
	w.dirty = true
}

// Remove unloads w and takes it off the stack. It reports whether w was
// on the stack.
func (s *Stack) Remove(w *Window) bool {
	for i, c := range s.windows {
		if c != w {
			continue
		}
		s.windows = append(s.windows[:i], s.windows[i+1:]...)
		w.stack = nil
		w.unload()
		if top := s.Top(); top != nil {
			top.dirty = true
		}
		return true
	}
	return false
}

func (s *Stack) Top() *Window {
	if len(s.windows) == 0 {
		return nil
	}
	return s.windows[len(s.windows)-1]
}

func (s *Stack) Len() int { return len(s.windows) }

package ui

import (
	"fmt"
	"image"

	"owlface/internal/clock"
	"owlface/internal/geom"
	"owlface/internal/gfx"
	"owlface/internal/tick"
)

// ResourceLoader decodes bundled images by name.
type ResourceLoader interface {
	Load(name string) (image.Image, error)
}

// Runtime is what an app is given by its host: a display, a window stack,
// a tick service, a clock and bundled resources. Every object created
// through it is counted in Ledger.
type Runtime struct {
	Ledger  *Ledger
	Windows Stack
	Ticks   tick.Service
	Clock   clock.Clock

	bounds    image.Rectangle
	resources ResourceLoader
}

func NewRuntime(bounds image.Rectangle, c clock.Clock, resources ResourceLoader) *Runtime {
	if c == nil {
		c = clock.System{}
	}
	return &Runtime{
		Ledger:    NewLedger(),
		Clock:     c,
		bounds:    bounds,
		resources: resources,
	}
}

// Bounds is the display rectangle.
func (rt *Runtime) Bounds() image.Rectangle { return rt.bounds }

func (rt *Runtime) NewWindow() *Window {
	return newWindow(rt.bounds, rt.Ledger)
}

func (rt *Runtime) NewLayer(bounds image.Rectangle) *Layer {
	return newLayer(bounds, rt.Ledger, KindLayer)
}

func (rt *Runtime) NewBitmapLayer(bounds image.Rectangle) *BitmapLayer {
	return newBitmapLayer(bounds, rt.Ledger)
}

// LoadBitmap decodes the named resource.
func (rt *Runtime) LoadBitmap(name string) (*gfx.Bitmap, error) {
	if rt.resources == nil {
		return nil, fmt.Errorf("load bitmap %q: no resources", name)
	}
	img, err := rt.resources.Load(name)
	if err != nil {
		return nil, fmt.Errorf("load bitmap %q: %w", name, err)
	}
	rt.Ledger.Create(KindBitmap)
	return gfx.NewBitmap(name, img), nil
}

// DestroyBitmap releases b. A nil bitmap is ignored.
func (rt *Runtime) DestroyBitmap(b *gfx.Bitmap) {
	if b == nil {
		return
	}
	b.Release()
	rt.Ledger.Destroy(KindBitmap)
}

func (rt *Runtime) NewPath(points ...geom.Point) *geom.Path {
	rt.Ledger.Create(KindPath)
	return geom.NewPath(points...)
}

func (rt *Runtime) DestroyPath(p *geom.Path) {
	if p == nil {
		return
	}
	rt.Ledger.Destroy(KindPath)
}

// SubscribeTicks replaces the app's tick subscription.
func (rt *Runtime) SubscribeTicks(units tick.Units, h tick.Handler) {
	if !rt.Ticks.Subscribed() {
		rt.Ledger.Create(KindTickSubscription)
	}
	rt.Ticks.Subscribe(units, h)
}

func (rt *Runtime) UnsubscribeTicks() {
	if !rt.Ticks.Subscribed() {
		return
	}
	rt.Ticks.Unsubscribe()
	rt.Ledger.Destroy(KindTickSubscription)
}

// Step delivers any due tick and reports whether one fired.
func (rt *Runtime) Step() bool {
	return rt.Ticks.Poll(rt.Clock.Now())
}

// NeedsRender reports whether the top window has pending changes.
func (rt *Runtime) NeedsRender() bool {
	top := rt.Windows.Top()
	return top != nil && top.Dirty()
}

// Render paints the top window into ctx and reports whether there was one.
func (rt *Runtime) Render(ctx gfx.Context) bool {
	top := rt.Windows.Top()
	if top == nil {
		return false
	}
	top.Render(ctx)
	return true
}

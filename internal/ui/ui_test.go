package ui_test

import (
	"errors"
	"image"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"owlface/internal/clock"
	"owlface/internal/gfx"
	"owlface/internal/tick"
	"owlface/internal/ui"
)

type mapLoader map[string]image.Image

func (m mapLoader) Load(name string) (image.Image, error) {
	img, ok := m[name]
	if !ok {
		return nil, errors.New("not found")
	}
	return img, nil
}

var screen = image.Rect(0, 0, 4, 4)

func newRuntime() *ui.Runtime {
	dot := image.NewRGBA(image.Rect(0, 0, 4, 4))
	dot.SetRGBA(1, 1, gfx.ColorBlack)
	c := clock.NewManual(time.Date(2026, 10, 19, 10, 9, 0, 0, time.UTC))
	return ui.NewRuntime(screen, c, mapLoader{"dot.png": dot})
}

func TestLedgerPairing(t *testing.T) {
	l := ui.NewLedger()
	l.Create(ui.KindLayer)
	l.Create(ui.KindLayer)
	l.Create(ui.KindBitmap)
	l.Destroy(ui.KindLayer)

	want := map[ui.Kind]int{ui.KindLayer: 1, ui.KindBitmap: 1}
	if diff := cmp.Diff(want, l.Live()); diff != "" {
		t.Errorf("Live() mismatch (-want +got):\n%s", diff)
	}
	if l.Balanced() {
		t.Error("Balanced() = true with live objects")
	}
	if got, want := l.String(), "live: bitmap=1 layer=1"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	l.Destroy(ui.KindLayer)
	l.Destroy(ui.KindBitmap)
	if !l.Balanced() {
		t.Errorf("Balanced() = false, %s", l)
	}
}

func TestLedgerDoubleDestroyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	l := ui.NewLedger()
	l.Create(ui.KindPath)
	l.Destroy(ui.KindPath)
	l.Destroy(ui.KindPath)
}

func TestLayerTree(t *testing.T) {
	rt := newRuntime()
	w := rt.NewWindow()
	root := w.RootLayer()
	a, b, c := rt.NewLayer(screen), rt.NewLayer(screen), rt.NewLayer(screen)
	root.AddChild(a)
	root.AddChild(b)
	root.AddChild(c)
	root.AddChild(a) // re-adding moves to top

	got := root.Children()
	want := []*ui.Layer{b, c, a}
	if len(got) != len(want) {
		t.Fatalf("len(Children()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("child %d out of order", i)
		}
	}
	if a.Window() != w {
		t.Error("a.Window() is not the owning window")
	}

	b.Destroy()
	if b.Parent() != nil || len(root.Children()) != 2 {
		t.Error("destroyed layer still attached")
	}
}

func TestWindowLifecycle(t *testing.T) {
	rt := newRuntime()
	var events []string
	w := rt.NewWindow()
	w.SetWindowHandlers(ui.WindowHandlers{
		Load:   func(*ui.Window) { events = append(events, "load") },
		Unload: func(*ui.Window) { events = append(events, "unload") },
	})

	rt.Windows.Push(w)
	if !w.Loaded() || !rt.NeedsRender() {
		t.Fatal("pushed window is not loaded and dirty")
	}
	w.Destroy()

	if diff := cmp.Diff([]string{"load", "unload"}, events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
	if rt.Windows.Len() != 0 {
		t.Errorf("stack len = %d after destroy", rt.Windows.Len())
	}
	if !rt.Ledger.Balanced() {
		t.Errorf("ledger not balanced: %s", rt.Ledger)
	}
}

func TestRenderClearsDirty(t *testing.T) {
	rt := newRuntime()
	w := rt.NewWindow()
	rt.Windows.Push(w)

	bmp, err := rt.LoadBitmap("dot.png")
	if err != nil {
		t.Fatalf("LoadBitmap: %v", err)
	}
	bl := rt.NewBitmapLayer(screen)
	bl.SetBitmap(bmp)
	bl.SetCompositingMode(gfx.CompOpSet)
	w.RootLayer().AddChild(bl.Layer())

	r := gfx.NewRaster(4, 4)
	if !rt.Render(r) {
		t.Fatal("Render() = false with a pushed window")
	}
	if rt.NeedsRender() {
		t.Error("window still dirty after render")
	}
	if got := r.Image().RGBAAt(1, 1); got != gfx.ColorBlack {
		t.Errorf("bitmap pixel = %v, want black", got)
	}
	if got := r.Image().RGBAAt(0, 0); got != gfx.ColorWhite {
		t.Errorf("background pixel = %v, want white", got)
	}

	bl.Layer().SetHidden(true)
	if !bl.Layer().Hidden() {
		t.Error("Hidden() = false after SetHidden(true)")
	}
	if !rt.NeedsRender() {
		t.Error("hiding a layer did not mark the window dirty")
	}
	rt.Render(r)
	if got := r.Image().RGBAAt(1, 1); got != gfx.ColorWhite {
		t.Errorf("hidden bitmap pixel = %v, want white", got)
	}

	bl.Destroy()
	rt.DestroyBitmap(bmp)
	w.Destroy()
	if !rt.Ledger.Balanced() {
		t.Errorf("ledger not balanced: %s", rt.Ledger)
	}
}

func TestLoadBitmapMissing(t *testing.T) {
	rt := newRuntime()
	if _, err := rt.LoadBitmap("nope.png"); err == nil {
		t.Fatal("LoadBitmap(nope.png) returned nil error")
	}
	if rt.Ledger.Created(ui.KindBitmap) != 0 {
		t.Error("failed load was counted")
	}
}

func TestRuntimeTicks(t *testing.T) {
	rt := newRuntime()
	c := rt.Clock.(*clock.Manual)
	fired := 0
	rt.SubscribeTicks(tick.MinuteUnit, func(time.Time, tick.Units) { fired++ })
	rt.SubscribeTicks(tick.MinuteUnit, func(time.Time, tick.Units) { fired++ })
	if got := rt.Ledger.Created(ui.KindTickSubscription); got != 1 {
		t.Errorf("resubscribe counted %d subscriptions", got)
	}

	rt.Step()
	c.Advance(30 * time.Second)
	rt.Step()
	c.Advance(30 * time.Second)
	rt.Step()
	if fired != 2 {
		t.Errorf("fired = %d, want 2", fired)
	}

	rt.UnsubscribeTicks()
	rt.UnsubscribeTicks()
	if !rt.Ledger.Balanced() {
		t.Errorf("ledger not balanced: %s", rt.Ledger)
	}
}

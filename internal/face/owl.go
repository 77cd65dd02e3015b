// Package face is the owl watch face: a background, the eye, numeral and
// owl artwork, and an hour and a minute hand set in the owl's eyes.
package face

import (
	"image/color"
	"log"
	"time"

	"owlface/internal/assets"
	"owlface/internal/clock"
	"owlface/internal/entity"
	"owlface/internal/geom"
	"owlface/internal/gfx"
	"owlface/internal/tick"
	"owlface/internal/ui"
)

// Options configure an Owl. Pivots are used as given; start from
// DefaultOptions to get the stock ones.
type Options struct {
	Color       bool
	MinutePivot geom.Point
	HourPivot   geom.Point
	Logger      *log.Logger
}

var (
	DefaultMinutePivot = geom.Point{X: 105, Y: 56}
	DefaultHourPivot   = geom.Point{X: 41, Y: 56}
)

// Owl is the watch face app.
type Owl struct {
	rt   *ui.Runtime
	opts Options
	log  *log.Logger

	window *ui.Window

	solidBgLayer *ui.Layer
	handsLayer   *ui.Layer
	owlLayer     *ui.BitmapLayer
	numLayer     *ui.BitmapLayer
	eyesLayer    *ui.BitmapLayer
	owlBitmap    *gfx.Bitmap
	numBitmap    *gfx.Bitmap
	eyesBitmap   *gfx.Bitmap

	minuteHand *entity.Hand
	hourHand   *entity.Hand

	redraws int
}

// DefaultOptions is a black-and-white face with the hands in the owl's eyes.
func DefaultOptions() Options {
	return Options{
		MinutePivot: DefaultMinutePivot,
		HourPivot:   DefaultHourPivot,
	}
}

func New(rt *ui.Runtime, opts Options) *Owl {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Owl{rt: rt, opts: opts, log: opts.Logger}
}

// Background is the solid fill behind the artwork.
func (o *Owl) Background() color.Color {
	if o.opts.Color {
		return gfx.ColorOxfordBlue
	}
	return gfx.ColorBlack
}

// Init creates and pushes the window, creates the hands and subscribes to
// minute ticks.
func (o *Owl) Init() {
	o.window = o.rt.NewWindow()
	o.window.SetWindowHandlers(ui.WindowHandlers{
		Load:   o.windowLoad,
		Unload: o.windowUnload,
	})
	o.window.SetBackgroundColor(o.Background())
	o.rt.Windows.Push(o.window)

	o.minuteHand = entity.NewMinuteHand(o.rt, o.opts.MinutePivot)
	o.hourHand = entity.NewHourHand(o.rt, o.opts.HourPivot)

	o.rt.SubscribeTicks(tick.MinuteUnit, o.handleMinuteTick)
	o.log.Printf("owl: subscribed to %v ticks", tick.MinuteUnit)
}

// Deinit releases everything Init created.
func (o *Owl) Deinit() {
	o.minuteHand.Destroy(o.rt)
	o.hourHand.Destroy(o.rt)
	o.minuteHand, o.hourHand = nil, nil

	o.rt.UnsubscribeTicks()

	o.window.Destroy()
	o.window = nil
	o.log.Printf("owl: deinit after %d redraws, %s", o.redraws, o.rt.Ledger)
}

func (o *Owl) Window() *ui.Window { return o.window }

// Hands returns the hour and minute hands, or nils outside Init/Deinit.
func (o *Owl) Hands() (hour, minute *entity.Hand) {
	return o.hourHand, o.minuteHand
}

// Redraws counts the repaints requested by minute ticks. Frames rendered
// for other reasons do not count.
func (o *Owl) Redraws() int { return o.redraws }

// BackgroundLayer and HandsLayer are nil outside window load/unload.
func (o *Owl) BackgroundLayer() *ui.Layer { return o.solidBgLayer }
func (o *Owl) HandsLayer() *ui.Layer      { return o.handsLayer }

// Artwork returns the eyes, numerals and owl bitmap layers.
func (o *Owl) Artwork() (eyes, numbers, owl *ui.BitmapLayer) {
	return o.eyesLayer, o.numLayer, o.owlLayer
}

func (o *Owl) windowLoad(w *ui.Window) {
	windowLayer := w.RootLayer()
	bounds := windowLayer.Bounds()

	o.solidBgLayer = o.rt.NewLayer(bounds)
	o.solidBgLayer.SetUpdateProc(o.bgUpdate)
	windowLayer.AddChild(o.solidBgLayer)

	o.eyesLayer, o.eyesBitmap = o.addBitmapLayer(windowLayer, assets.Eyes)

	o.handsLayer = o.rt.NewLayer(bounds)
	o.handsLayer.SetUpdateProc(o.handsUpdate)
	windowLayer.AddChild(o.handsLayer)

	o.numLayer, o.numBitmap = o.addBitmapLayer(windowLayer, assets.Numbers)
	o.owlLayer, o.owlBitmap = o.addBitmapLayer(windowLayer, assets.Owl)

	o.log.Printf("owl: window loaded, %d layers", len(windowLayer.Children()))
}

func (o *Owl) addBitmapLayer(parent *ui.Layer, name string) (*ui.BitmapLayer, *gfx.Bitmap) {
	bmp, err := o.rt.LoadBitmap(name)
	if err != nil {
		o.log.Printf("owl: %v", err)
	}
	bl := o.rt.NewBitmapLayer(parent.Bounds())
	bl.SetBitmap(bmp)
	bl.SetCompositingMode(gfx.CompOpSet)
	parent.AddChild(bl.Layer())
	return bl, bmp
}

func (o *Owl) windowUnload(*ui.Window) {
	o.solidBgLayer.Destroy()

	o.rt.DestroyBitmap(o.owlBitmap)
	o.owlLayer.Destroy()

	o.rt.DestroyBitmap(o.eyesBitmap)
	o.eyesLayer.Destroy()

	o.rt.DestroyBitmap(o.numBitmap)
	o.numLayer.Destroy()

	o.handsLayer.Destroy()

	o.solidBgLayer, o.handsLayer = nil, nil
	o.owlLayer, o.numLayer, o.eyesLayer = nil, nil, nil
	o.owlBitmap, o.numBitmap, o.eyesBitmap = nil, nil, nil
	o.log.Print("owl: window unloaded")
}

func (o *Owl) bgUpdate(l *ui.Layer, ctx gfx.Context) {
	ctx.SetFillColor(o.Background())
	ctx.FillRect(l.Bounds())
}

func (o *Owl) handsUpdate(_ *ui.Layer, ctx gfx.Context) {
	if o.hourHand == nil || o.minuteHand == nil {
		return
	}
	now := clock.Read(o.rt.Clock)

	o.hourHand.Update(now)
	o.hourHand.Draw(ctx)

	o.minuteHand.Update(now)
	o.minuteHand.Draw(ctx)
}

func (o *Owl) handleMinuteTick(time.Time, tick.Units) {
	o.redraws++
	o.window.RootLayer().MarkDirty()
}

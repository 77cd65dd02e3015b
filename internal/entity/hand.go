package entity

import (
	"image/color"

	"owlface/internal/clock"
	"owlface/internal/geom"
	"owlface/internal/gfx"
	"owlface/internal/ui"
)

// Hand outlines, pointing at 12 o'clock with the pivot at the origin.
var (
	MinuteHandPoints = []geom.Point{{X: -3, Y: 4}, {X: 3, Y: 4}, {X: 1, Y: -20}, {X: -1, Y: -20}}
	HourHandPoints   = []geom.Point{{X: -3, Y: 4}, {X: 3, Y: 4}, {X: 1, Y: -13}, {X: -1, Y: -13}}
)

// Hand is one analog clock hand: a path pinned to a pivot whose rotation
// follows one component of the time.
type Hand struct {
	Name   string
	Fill   color.Color
	Stroke color.Color

	path  *geom.Path
	angle func(clock.Reading) geom.Angle
}

// NewHourHand creates the hour hand at pivot.
func NewHourHand(rt *ui.Runtime, pivot geom.Point) *Hand {
	return newHand(rt, "hour", pivot, HourHandPoints, func(r clock.Reading) geom.Angle {
		return geom.HourAngle(r.Hour)
	})
}

// NewMinuteHand creates the minute hand at pivot.
func NewMinuteHand(rt *ui.Runtime, pivot geom.Point) *Hand {
	return newHand(rt, "minute", pivot, MinuteHandPoints, func(r clock.Reading) geom.Angle {
		return geom.MinuteAngle(r.Minute)
	})
}

func newHand(rt *ui.Runtime, name string, pivot geom.Point, points []geom.Point, angle func(clock.Reading) geom.Angle) *Hand {
	p := rt.NewPath(points...)
	p.MoveTo(pivot)
	return &Hand{
		Name:   name,
		Fill:   gfx.ColorBlack,
		Stroke: gfx.ColorBlack,
		path:   p,
		angle:  angle,
	}
}

// Update rotates the hand to the time in r.
func (h *Hand) Update(r clock.Reading) {
	h.path.RotateTo(h.angle(r))
}

// Draw fills the hand and then outlines it.
func (h *Hand) Draw(ctx gfx.Context) {
	pts := h.path.Points()
	ctx.SetFillColor(h.Fill)
	ctx.FillPolygon(pts)
	ctx.SetStrokeColor(h.Stroke)
	ctx.StrokePolygon(pts)
}

func (h *Hand) Angle() geom.Angle { return h.path.Rotation() }

func (h *Hand) Pivot() geom.Point { return h.path.Offset() }

func (h *Hand) Points() []geom.Point { return h.path.Points() }

// Destroy releases the hand's path.
func (h *Hand) Destroy(rt *ui.Runtime) {
	rt.DestroyPath(h.path)
	h.path = nil
}

package geom_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"owlface/internal/geom"
)

func TestPathRotateTo(t *testing.T) {
	testCases := []struct {
		name  string
		angle geom.Angle
		want  []geom.Point
	}{
		{name: "12 o'clock", angle: 0, want: []geom.Point{{X: 0, Y: -20}, {X: 3, Y: 0}}},
		{name: "3 o'clock", angle: geom.TrigMaxAngle / 4, want: []geom.Point{{X: 20, Y: 0}, {X: 0, Y: 3}}},
		{name: "6 o'clock", angle: geom.TrigMaxAngle / 2, want: []geom.Point{{X: 0, Y: 20}, {X: -3, Y: 0}}},
		{name: "9 o'clock", angle: geom.TrigMaxAngle * 3 / 4, want: []geom.Point{{X: -20, Y: 0}, {X: 0, Y: -3}}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := geom.NewPath(geom.Point{X: 0, Y: -20}, geom.Point{X: 3, Y: 0})
			p.RotateTo(tc.angle)
			if diff := cmp.Diff(tc.want, p.Points()); diff != "" {
				t.Errorf("Points() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPathMoveTo(t *testing.T) {
	p := geom.NewPath(geom.Point{X: -2, Y: 4}, geom.Point{X: 2, Y: 4}, geom.Point{X: 0, Y: -18})
	p.MoveTo(geom.Point{X: 105, Y: 56})
	p.RotateTo(geom.TrigMaxAngle / 4)

	want := []geom.Point{{X: 101, Y: 54}, {X: 101, Y: 58}, {X: 123, Y: 56}}
	if diff := cmp.Diff(want, p.Points()); diff != "" {
		t.Errorf("Points() mismatch (-want +got):\n%s", diff)
	}
	if p.Offset() != (geom.Point{X: 105, Y: 56}) {
		t.Errorf("Offset() = %v", p.Offset())
	}
}

func TestPathOutlineUnchangedByTransform(t *testing.T) {
	src := []geom.Point{{X: -1, Y: 2}, {X: 1, Y: 2}, {X: 0, Y: -10}}
	p := geom.NewPath(src...)
	p.RotateTo(geom.MinuteAngle(17))
	p.MoveTo(geom.Point{X: 41, Y: 56})
	src[0] = geom.Point{X: 99, Y: 99}

	want := []geom.Point{{X: -1, Y: 2}, {X: 1, Y: 2}, {X: 0, Y: -10}}
	if diff := cmp.Diff(want, p.Outline()); diff != "" {
		t.Errorf("Outline() mismatch (-want +got):\n%s", diff)
	}
}

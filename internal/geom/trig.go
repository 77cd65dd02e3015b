// Package geom holds the fixed-point trigonometry and polygon paths used to
// place the clock hands.
package geom

import "math"

const (
	// TrigMaxAngle is one full turn.
	TrigMaxAngle = 0x10000
	// TrigMaxRatio is the scale of the values returned by Sin and Cos.
	TrigMaxRatio = 0xffff
)

// Angle is a fixed-point angle in units of 1/TrigMaxAngle of a turn,
// measured clockwise from 12 o'clock on a y-down display.
type Angle int32

// Normalize folds a into [0, TrigMaxAngle).
func (a Angle) Normalize() Angle {
	a %= TrigMaxAngle
	if a < 0 {
		a += TrigMaxAngle
	}
	return a
}

// Radians converts a to radians.
func (a Angle) Radians() float64 {
	return float64(a.Normalize()) * 2 * math.Pi / TrigMaxAngle
}

// Sin returns sin(a) scaled by TrigMaxRatio.
func Sin(a Angle) int32 {
	return int32(math.Round(math.Sin(a.Radians()) * TrigMaxRatio))
}

// Cos returns cos(a) scaled by TrigMaxRatio.
func Cos(a Angle) int32 {
	return int32(math.Round(math.Cos(a.Radians()) * TrigMaxRatio))
}

// HourAngle is the hour hand angle. Hours past noon fold onto the same dial.
func HourAngle(hour int) Angle {
	return Angle(TrigMaxAngle * wrap(hour, 12) / 12)
}

// MinuteAngle is the minute hand angle.
func MinuteAngle(minute int) Angle {
	return Angle(TrigMaxAngle * wrap(minute, 60) / 60)
}

// SecondAngle is the second hand angle.
func SecondAngle(second int) Angle {
	return Angle(TrigMaxAngle * wrap(second, 60) / 60)
}

func wrap(v, period int) int {
	v %= period
	if v < 0 {
		v += period
	}
	return v
}

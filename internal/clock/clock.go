// Package clock provides the wall-clock source for the face. The face reads
// time through the Clock interface so tests and snapshots can pin it.
package clock

import (
	"fmt"
	"time"
)

// Clock provides time to the application.
type Clock interface {
	Now() time.Time
}

// System reads the host clock in Location, or local time when nil.
type System struct {
	Location *time.Location
}

func (s System) Now() time.Time {
	if s.Location == nil {
		return time.Now()
	}
	return time.Now().In(s.Location)
}

// Manual is a clock that only moves when told to.
type Manual struct {
	t time.Time
}

func NewManual(t time.Time) *Manual {
	return &Manual{t: t}
}

func (m *Manual) Now() time.Time { return m.t }

func (m *Manual) Set(t time.Time) { m.t = t }

func (m *Manual) Advance(d time.Duration) { m.t = m.t.Add(d) }

// Reading is the broken-down local time the hands are drawn from.
type Reading struct {
	Hour   int
	Minute int
	Second int
	Time   time.Time
}

func NewReading(t time.Time) Reading {
	h, m, s := t.Clock()
	return Reading{
		Hour:   h,
		Minute: m,
		Second: s,
		Time:   t.Truncate(0),
	}
}

// Read takes a Reading from c.
func Read(c Clock) Reading {
	return NewReading(c.Now())
}

// ParseHHMM returns day with its wall clock replaced by hhmm ("15:04").
func ParseHHMM(hhmm string, day time.Time) (time.Time, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time of day %q: %w", hhmm, err)
	}
	y, mo, d := day.Date()
	return time.Date(y, mo, d, t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}

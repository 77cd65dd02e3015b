// Package tick delivers wall-clock tick events to a single subscriber.
// The host polls the service with the current time; the service decides
// whether a subscribed unit rolled over since the previous poll.
package tick

import (
	"strings"
	"time"
)

// Units is a set of calendar units.
type Units uint8

const (
	SecondUnit Units = 1 << iota
	MinuteUnit
	HourUnit
	DayUnit
	MonthUnit
	YearUnit
)

var unitNames = []string{"second", "minute", "hour", "day", "month", "year"}

func (u Units) String() string {
	if u == 0 {
		return "none"
	}
	var names []string
	for i, name := range unitNames {
		if u&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return strings.Join(names, "|")
}

// Handler receives the poll time and every unit that changed.
type Handler func(now time.Time, changed Units)

// Service holds at most one subscription.
type Service struct {
	units   Units
	handler Handler
	last    time.Time
	primed  bool
}

// Subscribe replaces any existing subscription. The next Poll always fires
// so subscribers can paint immediately.
func (s *Service) Subscribe(units Units, h Handler) {
	s.units = units
	s.handler = h
	s.primed = false
}

func (s *Service) Unsubscribe() {
	s.units = 0
	s.handler = nil
	s.primed = false
}

func (s *Service) Subscribed() bool { return s.handler != nil }

// Poll fires the handler if a subscribed unit changed since the last poll
// and reports whether it did.
func (s *Service) Poll(now time.Time) bool {
	if s.handler == nil {
		return false
	}
	changed := SecondUnit | MinuteUnit | HourUnit | DayUnit | MonthUnit | YearUnit
	if s.primed {
		changed = Changed(s.last, now)
	}
	s.last = now
	s.primed = true
	if changed&s.units == 0 {
		return false
	}
	s.handler(now, changed)
	return true
}

// Changed returns the units whose value, or the value of any larger unit,
// differs between prev and now. Both times are compared in now's location.
func Changed(prev, now time.Time) Units {
	prev = prev.In(now.Location())
	py, pmo, pd := prev.Date()
	ph, pm, ps := prev.Clock()
	ny, nmo, nd := now.Date()
	nh, nm, ns := now.Clock()

	var u Units
	switch {
	case py != ny:
		u |= YearUnit
		fallthrough
	case pmo != nmo:
		u |= MonthUnit
		fallthrough
	case pd != nd:
		u |= DayUnit
		fallthrough
	case ph != nh:
		u |= HourUnit
		fallthrough
	case pm != nm:
		u |= MinuteUnit
		fallthrough
	case ps != ns:
		u |= SecondUnit
	}
	return u
}

package ui

import (
	"fmt"
	"sort"
)

// Kind names a class of host resource.
type Kind string

const (
	KindWindow           Kind = "window"
	KindLayer            Kind = "layer"
	KindBitmapLayer      Kind = "bitmap_layer"
	KindBitmap           Kind = "bitmap"
	KindPath             Kind = "path"
	KindTickSubscription Kind = "tick_subscription"
)

// Ledger counts creates and destroys per resource kind. A nil *Ledger
// accepts and ignores everything.
type Ledger struct {
	created   map[Kind]int
	destroyed map[Kind]int
}

func NewLedger() *Ledger {
	return &Ledger{
		created:   make(map[Kind]int),
		destroyed: make(map[Kind]int),
	}
}

func (l *Ledger) Create(k Kind) {
	if l == nil {
		return
	}
	l.created[k]++
}

// Destroy records a destroy. Destroying more than was created is a
// programming error and panics.
func (l *Ledger) Destroy(k Kind) {
	if l == nil {
		return
	}
	if l.destroyed[k] >= l.created[k] {
		panic(fmt.Sprintf("ui: destroy of %s with none live", k))
	}
	l.destroyed[k]++
}

// Live returns the kinds with outstanding objects.
func (l *Ledger) Live() map[Kind]int {
	live := make(map[Kind]int)
	if l == nil {
		return live
	}
	for k, n := range l.created {
		if d := n - l.destroyed[k]; d > 0 {
			live[k] = d
		}
	}
	return live
}

func (l *Ledger) Created(k Kind) int {
	if l == nil {
		return 0
	}
	return l.created[k]
}

func (l *Ledger) Destroyed(k Kind) int {
	if l == nil {
		return 0
	}
	return l.destroyed[k]
}

// Balanced reports whether every create has a matching destroy.
func (l *Ledger) Balanced() bool {
	return len(l.Live()) == 0
}

func (l *Ledger) String() string {
	live := l.Live()
	kinds := make([]string, 0, len(live))
	for k := range live {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)
	s := "live:"
	for _, k := range kinds {
		s += fmt.Sprintf(" %s=%d", k, live[Kind(k)])
	}
	if len(kinds) == 0 {
		s += " none"
	}
	return s
}

package input

import (
	"github.com/golang/geo/r2"

	"github.com/lixenwraith/gravity-slingshot/core"
	"github.com/lixenwraith/gravity-slingshot/event"
)

// SpawnFunc builds a projectile from a completed gesture
// Injected by the owner so this package stays independent of engine
type SpawnFunc func(launch, release r2.Point) *core.Projectile

// Segment is a line from Start to End in playfield coordinates
type Segment struct {
	Start, End r2.Point
}

// Translator turns pointer events into launches
// Holds at most one pending launch position; a gesture is down followed by up
type Translator struct {
	spawn SpawnFunc

	pointer    r2.Point
	pending    r2.Point
	hasPending bool
}

// NewTranslator creates a translator with no pending gesture
func NewTranslator(spawn SpawnFunc) *Translator {
	return &Translator{spawn: spawn}
}

// Handle dispatches a pointer event, returns the spawned projectile when a gesture completes
func (t *Translator) Handle(ev event.PointerEvent) (*core.Projectile, bool) {
	switch ev.Kind {
	case event.PointerDown:
		t.PointerDown(ev.X, ev.Y)
	case event.PointerMove:
		t.PointerMove(ev.X, ev.Y)
	case event.PointerUp:
		return t.PointerUp(ev.X, ev.Y)
	}
	return nil, false
}

// PointerDown records the launch position, replacing any earlier pending one
func (t *Translator) PointerDown(x, y float64) {
	t.pointer = r2.Point{X: x, Y: y}
	t.pending = t.pointer
	t.hasPending = true
}

// PointerMove tracks the current pointer for the aim line
func (t *Translator) PointerMove(x, y float64) {
	t.pointer = r2.Point{X: x, Y: y}
}

// PointerUp completes the gesture and clears the pending position
// Release without a pending press is ignored
func (t *Translator) PointerUp(x, y float64) (*core.Projectile, bool) {
	t.pointer = r2.Point{X: x, Y: y}
	if !t.hasPending {
		return nil, false
	}

	launch := t.pending
	t.hasPending = false
	t.pending = r2.Point{}

	p := t.spawn(launch, t.pointer)
	return p, p != nil
}

// Pending returns the launch position of the gesture in progress
func (t *Translator) Pending() (r2.Point, bool) {
	return t.pending, t.hasPending
}

// AimLine returns pending -> current pointer while a gesture is in progress
func (t *Translator) AimLine() (Segment, bool) {
	if !t.hasPending {
		return Segment{}, false
	}
	return Segment{Start: t.pending, End: t.pointer}, true
}

// Reset drops any pending gesture
func (t *Translator) Reset() {
	t.hasPending = false
	t.pending = r2.Point{}
}

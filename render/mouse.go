package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gravity-slingshot/event"
)

// MouseTracker converts tcell mouse reports into pointer events
// tcell reports button state, not transitions, so the previous state is kept here
type MouseTracker struct {
	down    bool
	lastX   int
	lastY   int
	hasLast bool
}

func NewMouseTracker() *MouseTracker {
	return &MouseTracker{}
}

// Translate returns the pointer events implied by ev in playfield coordinates
// Press and release carry their own position, so no separate move is emitted for them
func (m *MouseTracker) Translate(ev *tcell.EventMouse, view Viewport) []event.PointerEvent {
	col, row := ev.Position()
	pos := view.ToPlayfield(col, row)
	pressed := ev.Buttons()&tcell.Button1 != 0

	var out []event.PointerEvent
	moved := !m.hasLast || col != m.lastX || row != m.lastY
	m.lastX, m.lastY, m.hasLast = col, row, true

	switch {
	case pressed && !m.down:
		m.down = true
		out = append(out, event.Down(pos.X, pos.Y))
	case !pressed && m.down:
		m.down = false
		out = append(out, event.Up(pos.X, pos.Y))
	case moved:
		out = append(out, event.Move(pos.X, pos.Y))
	}
	return out
}

// Pressed reports whether the primary button is currently held
func (m *MouseTracker) Pressed() bool {
	return m.down
}

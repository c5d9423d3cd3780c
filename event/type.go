package event

// PointerKind identifies a resolved pointer input
type PointerKind uint8

const (
	// PointerMove updates the current pointer position
	// Trigger: mouse motion (button held or not)
	PointerMove PointerKind = iota

	// PointerDown begins a launch gesture at the pointer position
	// Trigger: primary button press
	PointerDown

	// PointerUp completes a launch gesture at the pointer position
	// Trigger: primary button release
	PointerUp
)

func (k PointerKind) String() string {
	switch k {
	case PointerMove:
		return "move"
	case PointerDown:
		return "down"
	case PointerUp:
		return "up"
	default:
		return "unknown"
	}
}

// PointerEvent carries a pointer input already mapped into playfield coordinates
type PointerEvent struct {
	Kind PointerKind
	X, Y float64
}

func Down(x, y float64) PointerEvent { return PointerEvent{Kind: PointerDown, X: x, Y: y} }
func Up(x, y float64) PointerEvent   { return PointerEvent{Kind: PointerUp, X: x, Y: y} }
func Move(x, y float64) PointerEvent { return PointerEvent{Kind: PointerMove, X: x, Y: y} }

package parameter

import "time"

// Game Loop & Engine Timing
const (
	// TickRate is the fixed number of simulation ticks per second
	TickRate = 60

	// TickInterval is the wall-clock duration of one simulation tick (~60 FPS)
	TickInterval = time.Second / TickRate
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the pointer event ring, a power of two
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = EventQueueSize - 1
)

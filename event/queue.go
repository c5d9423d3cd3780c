package event

import (
	"sync"

	"github.com/lixenwraith/gravity-slingshot/parameter"
)

// Queue buffers pointer events between the terminal poller and the game loop
// Thread-Safety:
//   - Push: any number of producers
//   - Consume: single consumer (game loop, once per tick)
//
// Consecutive moves collapse into the latest one, since only the last pointer
// position matters for aiming. When full, the oldest move is evicted first so
// presses and releases survive motion floods; only a queue holding no moves at
// all loses its oldest press or release
type Queue struct {
	mu     sync.Mutex
	events [parameter.EventQueueSize]PointerEvent
	head   int // Index of the oldest pending event
	count  int
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push adds ev, merging it into a trailing move when both are moves
func (q *Queue) Push(ev PointerEvent) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if ev.Kind == PointerMove && q.count > 0 {
		last := q.slot(q.count - 1)
		if q.events[last].Kind == PointerMove {
			q.events[last] = ev
			return
		}
	}

	if q.count == parameter.EventQueueSize {
		q.evict()
	}
	q.events[q.slot(q.count)] = ev
	q.count++
}

// evict frees one slot, preferring the oldest move; caller holds mu
func (q *Queue) evict() {
	victim := 0
	for i := 0; i < q.count; i++ {
		if q.events[q.slot(i)].Kind == PointerMove {
			victim = i
			break
		}
	}

	// Close the gap by shifting newer events toward the head
	for i := victim; i < q.count-1; i++ {
		q.events[q.slot(i)] = q.events[q.slot(i+1)]
	}
	q.count--
}

// slot maps a position relative to head onto the ring
func (q *Queue) slot(i int) int {
	return (q.head + i) & parameter.EventBufferMask
}

// Consume returns all pending events in arrival order and empties the queue
func (q *Queue) Consume() []PointerEvent {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.count == 0 {
		return nil
	}

	result := make([]PointerEvent, q.count)
	for i := range result {
		result[i] = q.events[q.slot(i)]
	}
	q.head = q.slot(q.count)
	q.count = 0
	return result
}

// Len returns the pending event count
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.count
}

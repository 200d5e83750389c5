package input

// Queue is a bounded, concurrency-safe event buffer. Producers (joystick
// reader, terminal, HTTP API) push from their own goroutines; the control
// loop drains it with Poll.
type Queue struct {
	ch chan Event
}

// NewQueue creates a queue holding at most size pending events.
func NewQueue(size int) *Queue {
	if size <= 0 {
		size = 1
	}
	return &Queue{ch: make(chan Event, size)}
}

// Push enqueues ev. It reports false and drops the event when the queue is
// full.
func (q *Queue) Push(ev Event) bool {
	select {
	case q.ch <- ev:
		return true
	default:
		return false
	}
}

// Poll returns every pending event in arrival order.
func (q *Queue) Poll() []Event {
	var events []Event
	for {
		select {
		case ev := <-q.ch:
			events = append(events, ev)
		default:
			return events
		}
	}
}

package input

import "sync"

// Queue is an unbounded FIFO of events with a non-blocking drain
// Push never waits on the consumer; a failure is recorded once and reported with the next drain
type Queue struct {
	mu    sync.Mutex
	items []Event
	err   error
}

// NewQueue creates an empty queue
func NewQueue() *Queue {
	return &Queue{items: make([]Event, 0, 64)}
}

// Push appends ev
func (q *Queue) Push(ev Event) {
	q.mu.Lock()
	q.items = append(q.items, ev)
	q.mu.Unlock()
}

// Fail records the producer's terminal error; first error wins
func (q *Queue) Fail(err error) {
	if err == nil {
		return
	}
	q.mu.Lock()
	if q.err == nil {
		q.err = err
	}
	q.mu.Unlock()
}

// Drain appends every queued event to dst[:0] in arrival order and empties the queue
// The producer error, if any, is returned alongside the events pushed before it
func (q *Queue) Drain(dst []Event) ([]Event, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	dst = append(dst[:0], q.items...)
	clear(q.items)
	q.items = q.items[:0]
	return dst, q.err
}

// pending returns the number of queued events
func (q *Queue) pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

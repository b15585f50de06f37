package input

import (
	"errors"
	"log"
)

// ErrSourceClosed is returned by a Source whose underlying stream ended normally
var ErrSourceClosed = errors.New("input source closed")

// Source produces events one at a time, blocking until one is available
type Source interface {
	Next() (Event, error)
}

// Listener pumps a Source into a Queue on its own goroutine
type Listener struct {
	src     Source
	queue   *Queue
	onPanic func(any)
	done    chan struct{} // closed when the pump exits
}

// NewListener wires src to q; nothing runs until Start
func NewListener(src Source, q *Queue) *Listener {
	return &Listener{
		src:   src,
		queue: q,
		done:  make(chan struct{}),
	}
}

// SetCrashHandler installs the handler invoked if the pump goroutine panics
// Without one the panic propagates and kills the process
func (l *Listener) SetCrashHandler(fn func(any)) {
	l.onPanic = fn
}

// Start launches the pump; it runs until the source fails. There is no stop:
// the goroutine is abandoned at process exit
func (l *Listener) Start() {
	go l.run()
}

func (l *Listener) run() {
	defer close(l.done)
	if l.onPanic != nil {
		defer func() {
			if r := recover(); r != nil {
				l.onPanic(r)
			}
		}()
	}

	for {
		ev, err := l.src.Next()
		if err != nil {
			log.Printf("input: listener stopped: %v", err)
			l.queue.Fail(err)
			return
		}
		l.queue.Push(ev)
	}
}

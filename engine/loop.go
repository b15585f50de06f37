package engine

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/lixenwraith/termcast/input"
	"github.com/lixenwraith/termcast/render"
	"github.com/lixenwraith/termcast/world"
)

// ErrBadGeometry rejects a display with no drawable cells
var ErrBadGeometry = errors.New("bad display geometry")

// Display receives each composed frame
type Display interface {
	Present(s *render.Screen) error
}

// EventSource hands the loop every event queued since the previous frame without blocking
type EventSource interface {
	Drain(dst []input.Event) ([]input.Event, error)
}

// FrameHook observes each frame after input is applied and before it is drawn
type FrameHook func(st State, out Outcome)

// LoopConfig wires a Loop; Clock defaults to SystemClock
type LoopConfig struct {
	Width, Height int
	Map           *world.Map
	Start         Player
	Clock         Clock
	Display       Display
	Events        EventSource
	OnFrame       FrameHook
}

// Loop runs the read-input, step, render, present cycle
type Loop struct {
	width, height int
	m             *world.Map
	clock         Clock
	display       Display
	events        EventSource
	onFrame       FrameHook

	state   State
	frames  uint64
	pending []input.Event
	dist    []float64
}

// NewLoop validates cfg and prepares a loop positioned at cfg.Start
func NewLoop(cfg LoopConfig) (*Loop, error) {
	if cfg.Width < 1 || cfg.Height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadGeometry, cfg.Width, cfg.Height)
	}
	if cfg.Map == nil || cfg.Display == nil || cfg.Events == nil {
		return nil, errors.New("loop requires a map, a display and an event source")
	}
	clock := cfg.Clock
	if clock == nil {
		clock = SystemClock{}
	}

	return &Loop{
		width:   cfg.Width,
		height:  cfg.Height,
		m:       cfg.Map,
		clock:   clock,
		display: cfg.Display,
		events:  cfg.Events,
		onFrame: cfg.OnFrame,
		state:   State{Player: cfg.Start},
		pending: make([]input.Event, 0, 16),
		dist:    make([]float64, cfg.Width),
	}, nil
}

// State returns the state after the most recent frame
func (l *Loop) State() State {
	return l.state
}

// Frames returns the number of frames presented
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Run loops until Quit is received, ctx is cancelled, or input or display fail
// Quit and cancellation return nil
func (l *Loop) Run(ctx context.Context) error {
	prev := l.clock.Now()
	for {
		select {
		case <-ctx.Done():
			log.Printf("loop: context done after %d frames", l.frames)
			return nil
		default:
		}

		now := l.clock.Now()
		elapsed := now.Sub(prev)
		prev = now

		events, inputErr := l.events.Drain(l.pending)
		l.pending = events

		var out Outcome
		l.state, out = Advance(l.state, l.m, elapsed, events)
		if l.onFrame != nil {
			l.onFrame(l.state, out)
		}
		if out.Quit {
			log.Printf("loop: quit after %d frames", l.frames)
			return nil
		}
		if inputErr != nil {
			return fmt.Errorf("input: %w", inputErr)
		}

		screen := render.NewScreen(l.width, l.height)
		l.dist = compose(screen, l.state, l.m, elapsed, l.dist)
		if err := l.display.Present(screen); err != nil {
			return fmt.Errorf("present frame %d: %w", l.frames, err)
		}
		l.frames++
	}
}

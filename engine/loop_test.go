package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/termcast/input"
	"github.com/lixenwraith/termcast/world"
)

func newTestLoop(t *testing.T, src EventSource, d Display, step time.Duration, hook FrameHook) *Loop {
	t.Helper()
	l, err := NewLoop(LoopConfig{
		Width:   40,
		Height:  20,
		Map:     world.Default(),
		Start:   Player{X: 1.5, Y: 1.5},
		Clock:   newStepClock(step),
		Display: d,
		Events:  src,
		OnFrame: hook,
	})
	if err != nil {
		t.Fatalf("NewLoop: %v", err)
	}
	return l
}

func TestNewLoopRejectsGeometry(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 24},
		{"zero height", 80, 0},
		{"negative", -1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoop(LoopConfig{
				Width:   tt.w,
				Height:  tt.h,
				Map:     world.Default(),
				Display: &recordDisplay{},
				Events:  &scriptSource{},
			})
			if !errors.Is(err, ErrBadGeometry) {
				t.Errorf("NewLoop(%dx%d) error = %v, want ErrBadGeometry", tt.w, tt.h, err)
			}
		})
	}
}

func TestNewLoopRequiresCollaborators(t *testing.T) {
	if _, err := NewLoop(LoopConfig{Width: 10, Height: 10}); err == nil {
		t.Error("NewLoop without map, display and source succeeded")
	}
}

func TestLoopRunsUntilQuit(t *testing.T) {
	src := &scriptSource{batches: [][]input.Event{
		{{Kind: input.TurnRight}},
		nil,
		{{Kind: input.Quit}, {Kind: input.TurnRight}},
	}}
	d := &recordDisplay{}
	l := newTestLoop(t, src, d, 100*time.Millisecond, nil)

	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if l.Frames() != 2 || len(d.frames) != 2 {
		t.Errorf("frames = %d presented %d, want 2", l.Frames(), len(d.frames))
	}
	if d.width != 40 || d.height != 20 {
		t.Errorf("presented %dx%d, want 40x20", d.width, d.height)
	}
	if !near(l.State().Player.Angle, 0.5) {
		t.Errorf("Angle = %v, want 0.5", l.State().Player.Angle)
	}
}

func TestLoopBlockedForward(t *testing.T) {
	src := &scriptSource{batches: [][]input.Event{
		{{Kind: input.MoveForward}},
		{{Kind: input.Quit}},
	}}
	var blocked int
	hook := func(_ State, out Outcome) { blocked += out.Blocked }

	l, err := NewLoop(LoopConfig{
		Width:   20,
		Height:  10,
		Map:     world.MustParse(box4),
		Start:   Player{X: 1, Y: 1},
		Clock:   newStepClock(time.Second),
		Display: &recordDisplay{},
		Events:  src,
		OnFrame: hook,
	})
	if err != nil {
		t.Fatalf("NewLoop: %v", err)
	}
	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if blocked != 1 {
		t.Errorf("blocked = %d, want 1", blocked)
	}
	if p := l.State().Player; p.X != 1 || p.Y != 1 {
		t.Errorf("Player = (%v, %v), want (1, 1)", p.X, p.Y)
	}
}

func TestLoopDisplayErrorIsFatal(t *testing.T) {
	errWrite := errors.New("write failed")
	l := newTestLoop(t, &scriptSource{}, &recordDisplay{err: errWrite}, time.Millisecond, nil)

	err := l.Run(context.Background())
	if !errors.Is(err, errWrite) {
		t.Fatalf("Run error = %v, want %v", err, errWrite)
	}
}

func TestLoopInputErrorAfterApplying(t *testing.T) {
	errRead := errors.New("read failed")
	src := &scriptSource{
		batches: [][]input.Event{{{Kind: input.TurnLeft}}},
		err:     errRead,
	}
	d := &recordDisplay{}
	l := newTestLoop(t, src, d, 100*time.Millisecond, nil)

	err := l.Run(context.Background())
	if !errors.Is(err, errRead) {
		t.Fatalf("Run error = %v, want %v", err, errRead)
	}
	if !near(l.State().Player.Angle, -0.5) {
		t.Errorf("Angle = %v, want -0.5", l.State().Player.Angle)
	}
	if len(d.frames) != 0 {
		t.Errorf("presented %d frames after input failure", len(d.frames))
	}
}

func TestLoopContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := 0
	hook := func(State, Outcome) {
		calls++
		if calls == 3 {
			cancel()
		}
	}
	d := &recordDisplay{}
	l := newTestLoop(t, &scriptSource{}, d, time.Millisecond, hook)

	if err := l.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if l.Frames() != 3 {
		t.Errorf("Frames = %d, want 3", l.Frames())
	}
}

func TestLoopCancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := &scriptSource{}
	l := newTestLoop(t, src, &recordDisplay{}, time.Millisecond, nil)
	if err := l.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if src.drains != 0 || l.Frames() != 0 {
		t.Errorf("drains = %d frames = %d, want 0", src.drains, l.Frames())
	}
}

func TestLoopWithQueue(t *testing.T) {
	q := input.NewQueue()
	q.Push(input.Event{Kind: input.MoveForward})
	q.Push(input.Unknown("key tab"))
	q.Push(input.Event{Kind: input.Quit})

	var last State
	hook := func(st State, _ Outcome) { last = st }
	l := newTestLoop(t, q, &recordDisplay{}, 50*time.Millisecond, hook)

	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !near(last.Player.Y, 2.0) {
		t.Errorf("Y = %v, want 2.0", last.Player.Y)
	}
	if last.Diagnostic != "got unexpected event: key tab" {
		t.Errorf("Diagnostic = %q", last.Diagnostic)
	}
}

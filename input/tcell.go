package input

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// FromTcell maps a tcell key event to an intent
func FromTcell(ev *tcell.EventKey) Event {
	if ev.Modifiers() != tcell.ModNone {
		return Unknown(ev.Name())
	}
	switch ev.Key() {
	case tcell.KeyUp:
		return Event{Kind: MoveForward}
	case tcell.KeyDown:
		return Event{Kind: MoveBackward}
	case tcell.KeyLeft:
		return Event{Kind: TurnLeft}
	case tcell.KeyRight:
		return Event{Kind: TurnRight}
	case tcell.KeyRune:
		if ev.Rune() == 'q' {
			return Event{Kind: Quit}
		}
	}
	return Unknown(ev.Name())
}

// TcellSource reads key events from a tcell screen
// Non-key events (resize, focus, paste, mouse) are not keyboard input and are skipped
type TcellSource struct {
	screen tcell.Screen
}

// NewTcellSource wraps an initialized screen
func NewTcellSource(s tcell.Screen) *TcellSource {
	return &TcellSource{screen: s}
}

// Next blocks for the next key event
func (s *TcellSource) Next() (Event, error) {
	for {
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			return Event{}, ErrSourceClosed
		case *tcell.EventKey:
			return FromTcell(ev), nil
		case *tcell.EventError:
			return Event{}, fmt.Errorf("tcell: %w", ev)
		}
	}
}

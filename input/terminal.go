package input

import (
	"errors"
	"io"

	"github.com/lixenwraith/termcast/terminal"
)

// FromTerminal maps a terminal key event to an intent
// Only unmodified arrows and 'q' are recognized
func FromTerminal(ev terminal.Event) Event {
	if ev.Type != terminal.EventKey || ev.Modifiers != terminal.ModNone {
		return Unknown(ev.String())
	}
	switch ev.Key {
	case terminal.KeyUp:
		return Event{Kind: MoveForward}
	case terminal.KeyDown:
		return Event{Kind: MoveBackward}
	case terminal.KeyLeft:
		return Event{Kind: TurnLeft}
	case terminal.KeyRight:
		return Event{Kind: TurnRight}
	case terminal.KeyRune:
		if ev.Rune == 'q' {
			return Event{Kind: Quit}
		}
	}
	return Unknown(ev.String())
}

// Poller is the part of terminal.Terminal a TerminalSource needs
type Poller interface {
	PollEvent() terminal.Event
}

// TerminalSource reads key events from the raw terminal
type TerminalSource struct {
	term Poller
}

// NewTerminalSource wraps t
func NewTerminalSource(t Poller) *TerminalSource {
	return &TerminalSource{term: t}
}

// Next blocks for the next key; read errors and closure end the stream, EOF counts as closure
func (s *TerminalSource) Next() (Event, error) {
	ev := s.term.PollEvent()
	switch ev.Type {
	case terminal.EventError:
		if errors.Is(ev.Err, io.EOF) {
			return Event{}, ErrSourceClosed
		}
		return Event{}, ev.Err
	case terminal.EventClosed:
		return Event{}, ErrSourceClosed
	}
	return FromTerminal(ev), nil
}

package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/termcast/terminal"
)

func TestFromTerminal(t *testing.T) {
	tests := []struct {
		name string
		ev   terminal.Event
		want Kind
	}{
		{"up", terminal.Event{Type: terminal.EventKey, Key: terminal.KeyUp}, MoveForward},
		{"down", terminal.Event{Type: terminal.EventKey, Key: terminal.KeyDown}, MoveBackward},
		{"left", terminal.Event{Type: terminal.EventKey, Key: terminal.KeyLeft}, TurnLeft},
		{"right", terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRight}, TurnRight},
		{"q", terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: 'q'}, Quit},
		{"Q", terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: 'Q'}, Unrecognized},
		{"w", terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: 'w'}, Unrecognized},
		{"ctrl up", terminal.Event{Type: terminal.EventKey, Key: terminal.KeyUp, Modifiers: terminal.ModCtrl}, Unrecognized},
		{"alt q", terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: 'q', Modifiers: terminal.ModAlt}, Unrecognized},
		{"escape", terminal.Event{Type: terminal.EventKey, Key: terminal.KeyEscape}, Unrecognized},
		{"f1", terminal.Event{Type: terminal.EventKey, Key: terminal.KeyF1}, Unrecognized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromTerminal(tt.ev)
			if got.Kind != tt.want {
				t.Errorf("FromTerminal(%v).Kind = %v, want %v", tt.ev, got.Kind, tt.want)
			}
			if tt.want == Unrecognized && got.Raw != tt.ev.String() {
				t.Errorf("Raw = %q, want %q", got.Raw, tt.ev.String())
			}
			if tt.want != Unrecognized && got.Raw != "" {
				t.Errorf("recognized event carries Raw %q", got.Raw)
			}
		})
	}
}

func TestFromTcell(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Kind
	}{
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), MoveForward},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), MoveBackward},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), TurnLeft},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), TurnRight},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), Quit},
		{"x", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), Unrecognized},
		{"shift up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModShift), Unrecognized},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), Unrecognized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromTcell(tt.ev)
			if got.Kind != tt.want {
				t.Errorf("FromTcell(%s).Kind = %v, want %v", tt.ev.Name(), got.Kind, tt.want)
			}
			if tt.want == Unrecognized && got.Raw == "" {
				t.Error("unrecognized event has empty Raw")
			}
		})
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{Event{Kind: MoveForward}, "move_forward"},
		{Event{Kind: Quit}, "quit"},
		{Unknown("key f5"), "unrecognized(key f5)"},
		{Event{Kind: Kind(42)}, "kind(42)"},
	}
	for _, tt := range tests {
		if got := tt.ev.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

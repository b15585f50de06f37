// Package input turns raw keyboard events into renderer intents and queues them for the frame loop.
package input

import "fmt"

// Kind discriminates input intents
type Kind uint8

const (
	MoveForward  Kind = iota // Up
	MoveBackward             // Down
	TurnLeft                 // Left
	TurnRight                // Right
	Quit                     // q
	Unrecognized             // Anything else, Raw describes it
)

var kindNames = [...]string{
	MoveForward:  "move_forward",
	MoveBackward: "move_backward",
	TurnLeft:     "turn_left",
	TurnRight:    "turn_right",
	Quit:         "quit",
	Unrecognized: "unrecognized",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Event is a single intent; Raw is set only for Unrecognized
type Event struct {
	Kind Kind
	Raw  string
}

// Unknown builds an Unrecognized event from a raw description
func Unknown(raw string) Event {
	return Event{Kind: Unrecognized, Raw: raw}
}

func (e Event) String() string {
	if e.Kind == Unrecognized {
		return fmt.Sprintf("%s(%s)", e.Kind, e.Raw)
	}
	return e.Kind.String()
}

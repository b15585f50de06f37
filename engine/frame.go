package engine

import (
	"fmt"
	"time"

	"github.com/lixenwraith/termcast/input"
	"github.com/lixenwraith/termcast/raycast"
	"github.com/lixenwraith/termcast/render"
	"github.com/lixenwraith/termcast/world"
)

// State is everything carried from one frame to the next
type State struct {
	Player     Player
	Diagnostic string // last unrecognized input, shown until replaced
}

// Outcome summarizes what applying a batch of events did
type Outcome struct {
	Quit         bool
	Applied      int // events consumed, including the quit itself
	Blocked      int // moves rejected by collision
	Unrecognized int
}

// Advance applies events in order to st using the frame's elapsed time
// Processing stops at the first Quit; later events in the batch are discarded
func Advance(st State, m *world.Map, elapsed time.Duration, events []input.Event) (State, Outcome) {
	var out Outcome
	for _, ev := range events {
		out.Applied++
		switch ev.Kind {
		case input.Quit:
			out.Quit = true
			return st, out
		case input.TurnLeft:
			st.Player.Turn(Left, elapsed)
		case input.TurnRight:
			st.Player.Turn(Right, elapsed)
		case input.MoveForward:
			if !st.Player.Move(Forward, elapsed, m) {
				out.Blocked++
			}
		case input.MoveBackward:
			if !st.Player.Move(Backward, elapsed, m) {
				out.Blocked++
			}
		default:
			st.Diagnostic = diagnostic(ev)
			out.Unrecognized++
		}
	}
	return st, out
}

func diagnostic(ev input.Event) string {
	return fmt.Sprintf("got unexpected event: %s", ev.Raw)
}

// Compose renders one frame of st into s: wall columns, minimap, stats and diagnostic
func Compose(s *render.Screen, st State, m *world.Map, elapsed time.Duration) {
	compose(s, st, m, elapsed, nil)
}

// compose reuses dist for the per-column distances and returns it
func compose(s *render.Screen, st State, m *world.Map, elapsed time.Duration, dist []float64) []float64 {
	p := st.Player
	dist = raycast.CastColumns(raycast.Pose{X: p.X, Y: p.Y, Angle: p.Angle}, s.Width(), m, dist)
	for x, d := range dist {
		render.DrawColumn(s, x, d)
	}

	render.DrawMinimap(s, m, p.X, p.Y, p.Angle)
	render.DrawStats(s, framesPerSecond(elapsed), p.X, p.Y, p.Angle)
	render.DrawDiagnostic(s, st.Diagnostic)
	return dist
}

// framesPerSecond reports 0 for a zero-length frame instead of +Inf
func framesPerSecond(elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return 1 / elapsed.Seconds()
}

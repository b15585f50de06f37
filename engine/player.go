package engine

import (
	"math"
	"time"

	"github.com/lixenwraith/termcast/world"
)

const (
	MoveSpeed = 10.0 // map cells per second
	TurnSpeed = 5.0  // radians per second
)

// Direction selects forward or backward travel along the heading
type Direction int8

const (
	Forward  Direction = 1
	Backward Direction = -1
)

// Rotation selects the turn sense; Left decreases the angle
type Rotation int8

const (
	Left  Rotation = -1
	Right Rotation = 1
)

// Player is the viewer pose in map coordinates
type Player struct {
	X, Y  float64
	Angle float64
}

// Move displaces the player along its heading by MoveSpeed*elapsed
// The destination cell must be walkable; otherwise the player is left untouched and false is returned
func (p *Player) Move(dir Direction, elapsed time.Duration, m *world.Map) bool {
	step := float64(dir) * MoveSpeed * elapsed.Seconds()
	nx := p.X + math.Sin(p.Angle)*step
	ny := p.Y + math.Cos(p.Angle)*step

	if !walkable(nx, ny, m) {
		return false
	}
	p.X, p.Y = nx, ny
	return true
}

// Turn rotates the heading by TurnSpeed*elapsed; rotation never collides
func (p *Player) Turn(rot Rotation, elapsed time.Duration) {
	p.Angle += float64(rot) * TurnSpeed * elapsed.Seconds()
}

// walkable truncates toward zero, so values in (-1, 0) must be rejected before the int conversion
func walkable(x, y float64, m *world.Map) bool {
	if x < 0 || y < 0 || math.IsNaN(x) || math.IsNaN(y) {
		return false
	}
	if x >= float64(m.Width()) || y >= float64(m.Height()) {
		return false
	}
	return m.IsWalkable(int(x), int(y))
}

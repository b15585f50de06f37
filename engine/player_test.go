package engine

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/termcast/world"
)

const box4 = "####\n#..#\n#..#\n####"

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestMoveBlockedLeavesPlayerUnchanged(t *testing.T) {
	m := world.MustParse(box4)
	p := Player{X: 1, Y: 1, Angle: 0}
	before := p

	if p.Move(Forward, time.Second, m) {
		t.Fatal("Move into out-of-bounds cell reported success")
	}
	if p != before {
		t.Errorf("Player changed on blocked move: %+v -> %+v", before, p)
	}
}

func TestMoveCommits(t *testing.T) {
	m := world.Default()
	tests := []struct {
		name    string
		start   Player
		dir     Direction
		elapsed time.Duration
		wantX   float64
		wantY   float64
		wantOK  bool
	}{
		{"forward south", Player{X: 1.5, Y: 1.5}, Forward, 100 * time.Millisecond, 1.5, 2.5, true},
		{"backward into wall", Player{X: 1.5, Y: 1.5}, Backward, 100 * time.Millisecond, 1.5, 1.5, false},
		{"forward east", Player{X: 1.5, Y: 1.5, Angle: math.Pi / 2}, Forward, 200 * time.Millisecond, 3.5, 1.5, true},
		{"east into interior wall", Player{X: 5.5, Y: 1.5, Angle: math.Pi / 2}, Forward, 100 * time.Millisecond, 5.5, 1.5, false},
		{"zero elapsed", Player{X: 2.5, Y: 2.5}, Forward, 0, 2.5, 2.5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.start
			ok := p.Move(tt.dir, tt.elapsed, m)
			if ok != tt.wantOK {
				t.Fatalf("Move() = %v, want %v", ok, tt.wantOK)
			}
			if !near(p.X, tt.wantX) || !near(p.Y, tt.wantY) {
				t.Errorf("position = (%v, %v), want (%v, %v)", p.X, p.Y, tt.wantX, tt.wantY)
			}
			if p.Angle != tt.start.Angle {
				t.Errorf("Move changed angle: %v -> %v", tt.start.Angle, p.Angle)
			}
		})
	}
}

func TestWalkableGuards(t *testing.T) {
	m := world.MustParse(box4)
	tests := []struct {
		x, y float64
		want bool
	}{
		{1.5, 1.5, true},
		{2.99, 2.99, true},
		{-0.5, 1.5, false},
		{1.5, -0.1, false},
		{3.5, 1.5, false},
		{4.0, 1.5, false},
		{math.NaN(), 1.5, false},
		{1.5, math.Inf(1), false},
	}
	for _, tt := range tests {
		if got := walkable(tt.x, tt.y, m); got != tt.want {
			t.Errorf("walkable(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestTurn(t *testing.T) {
	p := Player{X: 1, Y: 1}
	p.Turn(Right, time.Second)
	if !near(p.Angle, 5) {
		t.Errorf("after Right 1s angle = %v, want 5", p.Angle)
	}
	p.Turn(Left, 200*time.Millisecond)
	if !near(p.Angle, 4) {
		t.Errorf("after Left 200ms angle = %v, want 4", p.Angle)
	}
	if p.X != 1 || p.Y != 1 {
		t.Errorf("Turn moved the player to (%v, %v)", p.X, p.Y)
	}
}

package display

import (
	"bytes"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termcast/render"
)

func TestANSIPresent(t *testing.T) {
	var buf bytes.Buffer
	s := render.NewScreen(4, 2)
	s.Draw(0, 0, "ab")
	s.Draw(1, 1, "cd")

	if err := NewANSI(&buf).Present(s); err != nil {
		t.Fatalf("Present: %v", err)
	}
	want := "\x1b[Hab   cd "
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestTcellPresent(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(10, 3)

	s := render.NewScreen(10, 3)
	s.Draw(2, 1, "FPS")
	s.Set(9, 2, render.WallFull)

	if err := NewTcell(screen).Present(s); err != nil {
		t.Fatalf("Present: %v", err)
	}

	tests := []struct {
		x, y int
		want rune
	}{
		{2, 1, 'F'},
		{3, 1, 'P'},
		{4, 1, 'S'},
		{0, 0, ' '},
		{9, 2, render.WallFull},
	}
	for _, tt := range tests {
		got, _, _, _ := screen.GetContent(tt.x, tt.y)
		if got != tt.want {
			t.Errorf("cell (%d, %d) = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}
}

package display

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termcast/render"
)

// Tcell presents frames through a tcell screen
type Tcell struct {
	screen tcell.Screen
	style  tcell.Style
}

// NewTcell wraps an initialized screen
func NewTcell(s tcell.Screen) *Tcell {
	return &Tcell{
		screen: s,
		style:  tcell.StyleDefault,
	}
}

// OpenTcell creates and initializes the default tcell screen
func OpenTcell() (tcell.Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tcell screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("tcell init: %w", err)
	}
	s.HideCursor()
	s.Clear()
	return s, nil
}

// Present copies every cell of s and shows the result
// Cells beyond the tcell screen are clipped by tcell
func (t *Tcell) Present(s *render.Screen) error {
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			t.screen.SetContent(x, y, s.Rune(x, y), nil, t.style)
		}
	}
	t.screen.Show()
	return nil
}

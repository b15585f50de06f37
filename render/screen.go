// Package render composes a frame into a rune grid: wall and floor shading, minimap and status overlays.
package render

import (
	"io"
	"math"
	"strings"
	"unicode/utf8"
)

// cursorHome is written ahead of every frame so the buffer overwrites the previous one in place
const cursorHome = "\x1b[H"

// Screen is a fixed-size row-major rune grid, owned by a single frame
type Screen struct {
	cells  []rune // cells[y*width + x]
	width  int
	height int
}

// NewScreen allocates a blank width x height screen
func NewScreen(width, height int) *Screen {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([]rune, width*height)
	for i := range cells {
		cells[i] = ' '
	}
	return &Screen{
		cells:  cells,
		width:  width,
		height: height,
	}
}

// Width returns the screen width in cells
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells
func (s *Screen) Height() int {
	return s.height
}

// offset returns y*width + x, or false when the product or sum overflows int
// An overflowing offset is always outside storage
func (s *Screen) offset(x, y int) (int, bool) {
	if s.width > 0 && (y > math.MaxInt/s.width || y < math.MinInt/s.width) {
		return 0, false
	}
	p := y * s.width
	if (x > 0 && p > math.MaxInt-x) || (x < 0 && p < math.MinInt-x) {
		return 0, false
	}
	return p + x, true
}

// Draw writes text left to right from (x, y) in row-major order
// Runes landing before the first or at/after the last cell are dropped; nothing wraps to the start
func (s *Screen) Draw(x, y int, text string) {
	if len(s.cells) == 0 || (y >= s.height && x >= 0) {
		return
	}
	offset, ok := s.offset(x, y)
	if !ok {
		return
	}
	i := 0
	for _, r := range text {
		idx := offset + i
		i++
		if idx < 0 {
			continue
		}
		if idx >= len(s.cells) {
			return
		}
		s.cells[idx] = r
	}
}

// Set writes a single rune, dropping it when (x, y) is outside the grid
func (s *Screen) Set(x, y int, r rune) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y*s.width+x] = r
}

// Rune returns the rune at (x, y), or 0 outside the grid
func (s *Screen) Rune(x, y int) rune {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0
	}
	return s.cells[y*s.width+x]
}

// Row returns row y as a string, or "" outside the grid
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return ""
	}
	return string(s.cells[y*s.width : (y+1)*s.width])
}

// String returns the raw contents without the cursor prefix
func (s *Screen) String() string {
	return string(s.cells)
}

// Flush writes the cursor-home sequence and every cell as a single Write call
func (s *Screen) Flush(w io.Writer) error {
	var sb strings.Builder
	sb.Grow(len(cursorHome) + len(s.cells)*utf8.UTFMax)
	sb.WriteString(cursorHome)
	for _, r := range s.cells {
		sb.WriteRune(r)
	}

	frame := []byte(sb.String())
	n, err := w.Write(frame)
	if err != nil {
		return err
	}
	if n != len(frame) {
		return io.ErrShortWrite
	}
	return nil
}

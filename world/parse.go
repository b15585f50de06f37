package world

import (
	"fmt"
	"strings"
)

// Parse builds a Map from newline-delimited rows of '#' and '.'
// A single trailing newline and CRLF line endings are accepted
// The result is guaranteed rectangular and enclosed by walls
func Parse(text string) (*Map, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, ErrEmpty
	}

	lines := strings.Split(text, "\n")
	width := len([]rune(lines[0]))
	if width == 0 {
		return nil, ErrEmpty
	}

	m := &Map{
		cells:  make([]Cell, 0, width*len(lines)),
		width:  width,
		height: len(lines),
	}

	for y, line := range lines {
		row := []rune(line)
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRagged, y, len(row), width)
		}
		for x, r := range row {
			switch r {
			case GlyphWall:
				m.cells = append(m.cells, Wall)
			case GlyphEmpty:
				m.cells = append(m.cells, Empty)
			default:
				return nil, fmt.Errorf("%w: %q at row %d column %d", ErrGlyph, r, y, x)
			}
		}
	}

	if err := m.validateEnclosed(); err != nil {
		return nil, err
	}
	return m, nil
}

// MustParse is Parse for compiled-in levels; panics on error
func MustParse(text string) *Map {
	m, err := Parse(text)
	if err != nil {
		panic(fmt.Sprintf("world: invalid built-in map: %v", err))
	}
	return m
}

// validateEnclosed checks every border cell is a wall
func (m *Map) validateEnclosed() error {
	for x := 0; x < m.width; x++ {
		for _, y := range [2]int{0, m.height - 1} {
			if m.cells[y*m.width+x] != Wall {
				return fmt.Errorf("%w: open cell at (%d, %d)", ErrNotEnclosed, x, y)
			}
		}
	}
	for y := 0; y < m.height; y++ {
		for _, x := range [2]int{0, m.width - 1} {
			if m.cells[y*m.width+x] != Wall {
				return fmt.Errorf("%w: open cell at (%d, %d)", ErrNotEnclosed, x, y)
			}
		}
	}
	return nil
}

// Package world holds the immutable tile grid that drives collision and ray termination.
package world

import (
	"errors"
	"fmt"
	"strings"
)

// Cell is the tag of a single map tile
type Cell uint8

const (
	Empty Cell = iota
	Wall
)

// Map source glyphs
const (
	GlyphWall  = '#'
	GlyphEmpty = '.'
)

var (
	ErrOutOfBounds = errors.New("cell out of bounds")
	ErrEmpty       = errors.New("map has no rows")
	ErrRagged      = errors.New("map rows differ in length")
	ErrGlyph       = errors.New("unknown map glyph")
	ErrNotEnclosed = errors.New("map border is not fully walled")
)

// Map is a rectangular grid of cells
// x is the column (left to right in the source text), y the row (top to bottom)
type Map struct {
	cells  []Cell // Row-major: cells[y*width + x]
	width  int
	height int
}

// Width returns the number of columns
func (m *Map) Width() int {
	return m.width
}

// Height returns the number of rows
func (m *Map) Height() int {
	return m.height
}

// InBounds reports whether (x, y) is a valid cell index
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// CellAt returns the cell at (x, y) or ErrOutOfBounds
func (m *Map) CellAt(x, y int) (Cell, error) {
	if !m.InBounds(x, y) {
		return Wall, fmt.Errorf("%w: (%d, %d) outside %dx%d", ErrOutOfBounds, x, y, m.width, m.height)
	}
	return m.cells[y*m.width+x], nil
}

// IsWalkable reports whether (x, y) is in bounds and empty
func (m *Map) IsWalkable(x, y int) bool {
	c, err := m.CellAt(x, y)
	return err == nil && c == Empty
}

// Glyph returns the source glyph of an in-bounds cell, or 0 when out of bounds
func (m *Map) Glyph(x, y int) rune {
	c, err := m.CellAt(x, y)
	if err != nil {
		return 0
	}
	if c == Wall {
		return GlyphWall
	}
	return GlyphEmpty
}

// String renders the map back into its newline-delimited source form
func (m *Map) String() string {
	var sb strings.Builder
	sb.Grow((m.width + 1) * m.height)
	for y := 0; y < m.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < m.width; x++ {
			sb.WriteRune(m.Glyph(x, y))
		}
	}
	return sb.String()
}

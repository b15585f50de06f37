package render

import (
	"math"

	"github.com/lixenwraith/termcast/raycast"
)

// Wall glyphs from nearest to farthest
const (
	WallFull   = '\u2588'
	WallDark   = '\u2593'
	WallMedium = '\u2592'
	WallLight  = '\u2591'
	Blank      = ' '
)

// WallGlyph maps a hit distance to a shading glyph
// Bands: <= MAX/4, < MAX/3, < MAX/2, < MAX, otherwise blank
func WallGlyph(distance float64) rune {
	switch {
	case distance <= raycast.MaxRenderDist/4.0:
		return WallFull
	case distance < raycast.MaxRenderDist/3.0:
		return WallDark
	case distance < raycast.MaxRenderDist/2.0:
		return WallMedium
	case distance < raycast.MaxRenderDist:
		return WallLight
	}
	return Blank
}

// FloorGlyph shades a floor row by its offset below the horizon
// b runs from 1 at the horizon to 0 at the bottom row
func FloorGlyph(y, height int) rune {
	half := float64(height) / 2.0
	b := 1.0 - ((float64(y) - half) / half)
	switch {
	case b < 0.25:
		return '#'
	case b < 0.5:
		return 'x'
	case b < 0.75:
		return '.'
	case b < 0.9:
		return '-'
	}
	return Blank
}

// Projection returns the ceiling and floor row split for a column at distance
// Rows < ceiling are sky, rows in (ceiling, floor] are wall, the rest floor
func Projection(distance float64, height int) (ceiling, floor int) {
	c := float64(height)/2.0 - float64(height)/distance
	if c < 0 || math.IsNaN(c) {
		c = 0
	}
	ceiling = int(c)
	return ceiling, height - ceiling
}

// DrawColumn paints one screen column from its ray distance
func DrawColumn(s *Screen, x int, distance float64) {
	h := s.Height()
	ceiling, floor := Projection(distance, h)
	wall := WallGlyph(distance)
	for y := 0; y < h; y++ {
		switch {
		case y < ceiling:
			s.Set(x, y, Blank)
		case y > ceiling && y <= floor:
			s.Set(x, y, wall)
		default:
			s.Set(x, y, FloorGlyph(y, h))
		}
	}
}

package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/termcast/world"
)

// Minimap and status placement
const (
	MinimapOffsetX = 2
	MinimapOffsetY = 2
	StatsX         = 2
	StatsY         = 1
)

// twoPi keeps the same pi approximation as the field of view
const twoPi = 2.0 * 3.14159

// Direction band edges in radians, kept as measured rather than exact quadrants
const (
	bandSouthEnd = 0.785
	bandWestEnd  = 2.356
	bandNorthEnd = 3.927
	bandEastEnd  = 5.498
)

// DirectionGlyph picks the minimap player marker for a heading
// Values below 1.0 after normalization are negated before band selection
func DirectionGlyph(angle float64) rune {
	a := NormalizeHeading(angle)
	return directionBand(a)
}

// NormalizeHeading reduces angle modulo 2pi (sign follows the dividend) and negates values below 1.0
func NormalizeHeading(angle float64) float64 {
	a := math.Mod(angle, twoPi)
	if a < 1.0 {
		a *= -1.0
	}
	return a
}

// directionBand selects the glyph for a normalized heading
func directionBand(a float64) rune {
	switch {
	case a >= bandEastEnd || a < bandSouthEnd:
		return 'v'
	case a >= bandSouthEnd && a < bandWestEnd:
		return '<'
	case a >= bandWestEnd && a < bandNorthEnd:
		return '^'
	}
	return '>'
}

// DrawMinimap draws the full map one cell per rune at the minimap offset,
// replacing the player's truncated cell with its direction glyph
func DrawMinimap(s *Screen, m *world.Map, px, py, angle float64) {
	cellX, cellY := int(px), int(py)
	marker := DirectionGlyph(angle)
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			r := m.Glyph(x, y)
			if x == cellX && y == cellY && px >= 0 && py >= 0 {
				r = marker
			}
			s.Set(x+MinimapOffsetX, y+MinimapOffsetY, r)
		}
	}
}

// StatsLine formats the frame rate and player pose readout
func StatsLine(fps, x, y, angle float64) string {
	return fmt.Sprintf("FPS=%.3f, X=%.3f, Y=%.3f, A=%.3f", fps, x, y, angle)
}

// DrawStats writes the status readout at its fixed position
func DrawStats(s *Screen, fps, x, y, angle float64) {
	s.Draw(StatsX, StatsY, StatsLine(fps, x, y, angle))
}

// DrawDiagnostic writes msg on the bottom row, truncated to the screen width
func DrawDiagnostic(s *Screen, msg string) {
	if msg == "" || s.Height() == 0 {
		return
	}
	line := runewidth.Truncate(singleCell(msg), s.Width(), "…")
	s.Draw(0, s.Height()-1, line)
}

// singleCell spells out every rune that does not occupy exactly one column as U+XXXX,
// since the buffer stores one rune per cell
func singleCell(msg string) string {
	var b strings.Builder
	for _, r := range msg {
		if runewidth.RuneWidth(r) == 1 {
			b.WriteRune(r)
			continue
		}
		fmt.Fprintf(&b, "%U", r)
	}
	return b.String()
}

// Package raycast marches rays through a world.Map to build a per-column distance field.
package raycast

import (
	"math"

	"github.com/lixenwraith/termcast/world"
)

const (
	// MaxRenderDist is the distance reported when no wall is found
	MaxRenderDist = 16.0
	// StepSize is the march increment in world units
	StepSize = 0.1
	// FOV is the total horizontal field of view in radians
	FOV = 3.14159 / 4.0
)

// maxSteps bounds the march so distance never exceeds MaxRenderDist
var maxSteps = int(math.Round(MaxRenderDist / StepSize))

// Pose is an origin and heading in world space
type Pose struct {
	X, Y  float64
	Angle float64
}

// Cast returns the distance from (x, y) along angle to the first wall cell
// Direction is (sin(angle), cos(angle)); samples leaving the map report MaxRenderDist
// An origin inside a wall reports the first step distance
func Cast(x, y, angle float64, m *world.Map) float64 {
	eyeX := math.Sin(angle)
	eyeY := math.Cos(angle)
	w := float64(m.Width())
	h := float64(m.Height())

	for n := 1; n <= maxSteps; n++ {
		dist := float64(n) * StepSize
		sx := x + eyeX*dist
		sy := y + eyeY*dist

		// Coordinate range check precedes truncation: int() rounds toward zero for (-1, 0)
		if sx < 0 || sx >= w || sy < 0 || sy >= h {
			return MaxRenderDist
		}

		cell, err := m.CellAt(int(sx), int(sy))
		if err != nil {
			return MaxRenderDist
		}
		if cell == world.Wall {
			return dist
		}
	}
	return MaxRenderDist
}

// ColumnAngle maps a screen column to its ray angle, spanning FOV centered on heading
func ColumnAngle(column, width int, heading float64) float64 {
	return (heading - FOV/2.0) + (float64(column)/float64(width))*FOV
}

// CastColumns fills dst with one distance per screen column and returns it
// dst is reallocated only when its capacity is below width
func CastColumns(p Pose, width int, m *world.Map, dst []float64) []float64 {
	if cap(dst) < width {
		dst = make([]float64, width)
	}
	dst = dst[:width]
	for col := range dst {
		dst[col] = Cast(p.X, p.Y, ColumnAngle(col, width, p.Angle), m)
	}
	return dst
}

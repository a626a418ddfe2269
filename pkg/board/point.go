// Package board contains the bit-packed playfield, piece geometry and the pure
// Game state reducer for a Perfect-Clear solver.
package board

import "fmt"

// Point is a signed 2-D playfield coordinate. y = 0 is the bottom row, x = 0 is
// the left column. x = -1 and x = 10 are conceptual walls; y = -1 is the floor.
type Point struct {
	X, Y int
}

// NewPoint returns a Point at (x, y).
func NewPoint(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the pointwise sum of p and other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the pointwise difference of p and other.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is a horizontal or vertical translation applied to a piece.
type Direction uint8

const (
	Left Direction = iota
	Right
	Down
)

// Offset returns the unit translation for the direction.
func (d Direction) Offset() Point {
	switch d {
	case Left:
		return Point{X: -1, Y: 0}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: -1}
	default:
		panic(fmt.Sprintf("invalid direction: %v", uint8(d)))
	}
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Down:
		return "Down"
	default:
		return "?"
	}
}

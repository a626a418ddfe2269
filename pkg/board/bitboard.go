package board

import (
	"fmt"
	"strings"
)

// Width is the number of playfield columns.
const Width = 10

// WindowHeight is the number of rows the solver tracks: the four Perfect-Clear
// rows plus a two-row spawn buffer above them.
const WindowHeight = 6

// PCRows is the number of rows a Perfect Clear reduces to empty.
const PCRows = 4

const fullRow = (1 << Width) - 1 // 0b1111111111

// pcMask is the canonical board value for a Perfect Clear that has filled the
// bottom n rows (n in [1,PCRows]) and nothing above.
func pcMask(n int) uint64 {
	var m uint64
	for i := 0; i < n; i++ {
		m |= uint64(fullRow) << uint(i*Width)
	}
	return m
}

// Board is a bit-packed playfield: an unsigned integer wide enough for
// Width*WindowHeight bits. Cell (x, y) maps to bit index x + y*Width. The
// zero value is the empty board.
type Board uint64

// Empty returns a Board with every in-window cell empty.
func Empty() Board {
	return Board(0)
}

// Filled returns a Board with every in-window cell filled. Useful as scratch
// space in tests that carve empty cells out of a filled field.
func Filled() Board {
	return Board(pcMask(WindowHeight))
}

func index(p Point) int {
	return p.X + p.Y*Width
}

// inBounds reports whether p addresses an actual bit in the board, i.e. is
// within the playfield columns and the tracked window rows (both above and
// below zero).
func inBounds(p Point) bool {
	return p.X >= 0 && p.X < Width && p.Y >= 0 && p.Y < WindowHeight
}

// IsFilled reports whether p is filled. Points outside the column range or
// below the floor are always filled (walls/floor); points above the tracked
// window are always empty.
func (b Board) IsFilled(p Point) bool {
	if p.X < 0 || p.X >= Width || p.Y < 0 {
		return true
	}
	if p.Y >= WindowHeight {
		return false
	}
	return uint64(b)&(uint64(1)<<uint(index(p))) != 0
}

// Fill sets p to filled. Out-of-range points are a silent no-op.
func (b Board) Fill(p Point) Board {
	if !inBounds(p) {
		return b
	}
	return b | Board(uint64(1)<<uint(index(p)))
}

// EmptyAt returns a copy of b with p cleared. Out-of-range points are a silent
// no-op. (Method, not to be confused with the package-level Empty().)
func (b Board) EmptyAt(p Point) Board {
	if !inBounds(p) {
		return b
	}
	return b &^ Board(uint64(1)<<uint(index(p)))
}

// HasIntersect reports whether b and other share any filled cell.
func (b Board) HasIntersect(other Board) bool {
	return uint64(b)&uint64(other) != 0
}

// Union returns the bitwise OR of b and other.
func (b Board) Union(other Board) Board {
	return b | other
}

// CanFit reports whether none of the four points is filled.
func (b Board) CanFit(points [4]Point) bool {
	for _, p := range points {
		if b.IsFilled(p) {
			return false
		}
	}
	return true
}

// CanPlace reports whether points can fit and at least one of them has a
// filled cell (or the floor) directly beneath it.
func (b Board) CanPlace(points [4]Point) bool {
	if !b.CanFit(points) {
		return false
	}
	for _, p := range points {
		if b.IsFilled(Point{X: p.X, Y: p.Y - 1}) {
			return true
		}
	}
	return false
}

// FillPiecePoints sets the four given cells.
func (b Board) FillPiecePoints(points [4]Point) Board {
	for _, p := range points {
		b = b.Fill(p)
	}
	return b
}

// IsLineFilled reports whether every cell of row y is filled.
func (b Board) IsLineFilled(y int) bool {
	return uint64(b)&(uint64(fullRow)<<uint(y*Width)) == uint64(fullRow)<<uint(y*Width)
}

// IsLineEmpty reports whether every cell of row y is empty.
func (b Board) IsLineEmpty(y int) bool {
	return uint64(b)&(uint64(fullRow)<<uint(y*Width)) == 0
}

// CanPerfectClear reports whether the board equals one of the four canonical
// Perfect-Clear masks: the bottom n rows (1 <= n <= PCRows) fully filled and
// everything else empty.
func (b Board) CanPerfectClear() bool {
	for n := 1; n <= PCRows; n++ {
		if uint64(b) == pcMask(n) {
			return true
		}
	}
	return false
}

// TooHigh reports whether any cell at or above the PC window (row PCRows and
// up) is filled; such a board can never reduce to a Perfect Clear.
func (b Board) TooHigh() bool {
	for y := PCRows; y < WindowHeight; y++ {
		if !b.IsLineEmpty(y) {
			return true
		}
	}
	return false
}

// ClearFilledLines removes every fully filled row, shifting the rows above it
// down to take its place, preserving relative order; freshly vacated top rows
// become empty.
func (b Board) ClearFilledLines() Board {
	var next Board
	y := 0
	for src := 0; src < WindowHeight; src++ {
		if b.IsLineFilled(src) {
			continue
		}
		row := (uint64(b) >> uint(src*Width)) & uint64(fullRow)
		next |= Board(row << uint(y*Width))
		y++
	}
	return next
}

func (b Board) String() string {
	var sb strings.Builder
	for y := WindowHeight - 1; y >= 0; y-- {
		for x := 0; x < Width; x++ {
			if b.IsFilled(Point{X: x, Y: y}) {
				sb.WriteRune('#')
			} else {
				sb.WriteRune('.')
			}
		}
		if y > 0 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

// GoString renders the board as a hex literal, suitable for use as a
// memoization key in logs.
func (b Board) GoString() string {
	return fmt.Sprintf("Board(0x%x)", uint64(b))
}

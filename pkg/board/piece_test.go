package board_test

import (
	"testing"

	"github.com/herohde/morlock/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestBoxSize(t *testing.T) {
	assert.Equal(t, 4, board.I.BoxSize())
	assert.Equal(t, 4, board.O.BoxSize())
	assert.Equal(t, 3, board.J.BoxSize())
	assert.Equal(t, 3, board.T.BoxSize())
}

func TestSpawnPoint(t *testing.T) {
	assert.Equal(t, board.NewPoint(3, board.SpawnTop-2), board.I.SpawnPoint())
	assert.Equal(t, board.NewPoint(3, board.SpawnTop-1), board.T.SpawnPoint())
}

func TestSpawnPointsAreNotPreFilled(t *testing.T) {
	for kind := board.PieceKind(0); kind < board.NumPieceKinds; kind++ {
		piece := board.Spawn(kind)
		assert.True(t, board.Empty().CanFit(piece.Points()), "kind=%v", kind)
	}
}

func TestPointsCountIsFour(t *testing.T) {
	for kind := board.PieceKind(0); kind < board.NumPieceKinds; kind++ {
		for o := board.North; o <= board.West; o++ {
			piece := board.Spawn(kind).WithOrientation(o)
			seen := map[board.Point]bool{}
			for _, p := range piece.Points() {
				seen[p] = true
			}
			assert.Len(t, seen, 4, "kind=%v orientation=%v must cover 4 distinct cells", kind, o)
		}
	}
}

func TestORotationIsNoOp(t *testing.T) {
	base := board.Spawn(board.O)
	for _, r := range []board.Rotation{board.Clockwise, board.AntiClockwise, board.Half} {
		rotated := base.WithOrientation(base.Orientation.Rotated(r))
		assert.ElementsMatch(t, base.Points(), rotated.Points())
	}
}

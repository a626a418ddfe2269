package board_test

import (
	"testing"

	"github.com/herohde/morlock/pkg/board"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	g := board.NewGame()
	g.Board = g.Board.Fill(board.NewPoint(0, 0))
	g.Piece = lang.Some(board.Piece{Kind: board.T, Position: board.NewPoint(3, 4), Orientation: board.East})
	g.HoldKind = lang.Some(board.L)
	g.IsHoldUsed = true
	g.Queue[0] = lang.Some(board.I)
	g.Queue[1] = lang.Some(board.Z)

	s := board.Encode(g)
	decoded, err := board.Decode(s)
	require.NoError(t, err)

	assert.Equal(t, g.Board, decoded.Board)
	assert.Equal(t, g.Piece, decoded.Piece)
	assert.Equal(t, g.HoldKind, decoded.HoldKind)
	assert.Equal(t, g.IsHoldUsed, decoded.IsHoldUsed)
	assert.Equal(t, g.Queue, decoded.Queue)
}

func TestSnapshotEmptyGame(t *testing.T) {
	g := board.NewGame()
	decoded, err := board.Decode(board.Encode(g))
	require.NoError(t, err)
	assert.Equal(t, g, decoded)
}

func TestSnapshotMalformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
		err  error
	}{
		{"too few fields", "0 - - 0", board.ErrSnapshotFields},
		{"bad board", "zz - - 0 -", board.ErrSnapshotBoard},
		{"bad piece", "0 T,x,0,N - 0 -", board.ErrSnapshotPiece},
		{"bad hold used", "0 - - 2 -", board.ErrSnapshotHoldUsed},
		{"bad queue letter", "0 - - 0 Q", board.ErrSnapshotQueue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := board.Decode(tt.in)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

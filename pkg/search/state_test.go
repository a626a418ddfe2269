package search_test

import (
	"testing"

	"github.com/herohde/morlock/pkg/board"
	"github.com/herohde/morlock/pkg/search"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cfg = board.Config{RotationSystem: board.SRS}

func TestInitial(t *testing.T) {
	s := search.Initial()
	assert.Equal(t, search.MaxMovesRemaining, s.MovesRemaining)
	assert.Equal(t, board.Empty(), s.Game.Board)
}

func TestSeenInBag(t *testing.T) {
	var s search.SeenInBag
	assert.False(t, s.Seen(board.T))

	s = s.WithSeen(board.T)
	assert.True(t, s.Seen(board.T))
	assert.False(t, s.Seen(board.J))
}

func TestPlayPlaceConsumesBudget(t *testing.T) {
	s := search.Initial()
	s.Game.Piece = lang.Some(board.Piece{Kind: board.O, Position: board.NewPoint(3, -1), Orientation: board.North})

	next, err := s.PlayPlace(cfg)
	require.NoError(t, err)
	assert.Equal(t, s.MovesRemaining-1, next.MovesRemaining)
}

func TestPlayPlaceBudgetDoesNotUnderflow(t *testing.T) {
	s := search.Initial()
	s.MovesRemaining = 0
	s.Game.Piece = lang.Some(board.Piece{Kind: board.O, Position: board.NewPoint(3, -1), Orientation: board.North})

	next, err := s.PlayPlace(cfg)
	require.NoError(t, err)
	assert.Equal(t, uint(0), next.MovesRemaining)
}

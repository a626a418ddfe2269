package search_test

import (
	"context"
	"testing"

	"github.com/herohde/morlock/pkg/board"
	"github.com/herohde/morlock/pkg/search"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveEmptyBoardEmptyQueueHasNoSolutions(t *testing.T) {
	result, err := search.Solve(context.Background(), board.NewGame(), cfg)
	require.NoError(t, err)
	assert.Empty(t, result.Solutions)
}

func TestSolveAlreadyPCBoardHasOneTrivialSolution(t *testing.T) {
	g := board.NewGame()
	for x := 0; x < board.Width; x++ {
		g.Board = g.Board.Fill(board.NewPoint(x, 0))
	}

	result, err := search.Solve(context.Background(), g, cfg)
	require.NoError(t, err)
	require.Len(t, result.Solutions, 1)
	assert.Empty(t, result.Solutions[0].Steps)
	assert.Equal(t, 1.0, result.Solutions[0].Probability)
}

func TestSolveRespectsCancellation(t *testing.T) {
	g := board.NewGame()
	g.Queue[0] = lang.Some(board.T)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := search.Solve(ctx, g, cfg)
	require.NoError(t, err, "a cancelled context prunes the search, it doesn't fail it")
	assert.NotNil(t, result.Graph)
}

func TestSolveSolutionsAreWellFormed(t *testing.T) {
	g := board.NewGame()
	g.Queue = [board.QueueSize]lang.Optional[board.PieceKind]{
		lang.Some(board.O), lang.Some(board.I), lang.Some(board.T),
		lang.Some(board.S), lang.Some(board.Z), lang.Some(board.J), lang.Some(board.L),
	}

	result, err := search.Solve(context.Background(), g, cfg, search.WithMovesRemaining(10))
	require.NoError(t, err)
	require.NotEmpty(t, result.Solutions, "a full 7-piece bag on an empty board must yield at least one PC solution")

	for i, sol := range result.Solutions {
		assert.LessOrEqual(t, len(sol.Steps), 10, "solution %v exceeds the placement budget", i)
		assert.NotEmpty(t, sol.Steps, "a non-trivial starting board can't be cleared with zero placements")
		assert.Greater(t, sol.Probability, 0.0)
		assert.LessOrEqual(t, sol.Probability, 1.0)

		for j, step := range sol.Steps {
			if j == 0 {
				assert.Equal(t, g.Board, step.BoardBefore)
			} else {
				assert.NotEqual(t, sol.Steps[j-1].BoardBefore, step.BoardBefore, "consecutive steps must make progress")
			}
		}

		last := sol.Steps[len(sol.Steps)-1]
		lastGame := board.NewGame()
		lastGame.Board = last.BoardBefore
		lastGame.Piece = lang.Some(board.Spawn(last.Piece))

		placements, err := search.PlacablePieces(lastGame, cfg)
		require.NoError(t, err, "solution %v", i)

		var reachesPC bool
		for _, p := range placements {
			if last.BoardBefore.FillPiecePoints(p.Points()).CanPerfectClear() {
				reachesPC = true
				break
			}
		}
		assert.True(t, reachesPC, "solution %v's final step must have some placement of %v that reaches a Perfect Clear", i, last.Piece)
	}
}

func TestSolveSingleIPieceHasNoSolutions(t *testing.T) {
	g := board.NewGame()
	g.Queue[0] = lang.Some(board.I)

	result, err := search.Solve(context.Background(), g, cfg)
	require.NoError(t, err)
	assert.Empty(t, result.Solutions)
}

func TestSolveFiveIPiecesHaveNoSolutions(t *testing.T) {
	g := board.NewGame()
	for i := 0; i < 5; i++ {
		g.Queue[i] = lang.Some(board.I)
	}

	result, err := search.Solve(context.Background(), g, cfg)
	require.NoError(t, err)
	assert.Empty(t, result.Solutions)
}

func TestSolveCellAboveWindowMakesBoardUnclearable(t *testing.T) {
	g := board.NewGame()
	g.Board = g.Board.Fill(board.NewPoint(5, 5))
	g.Queue = [board.QueueSize]lang.Optional[board.PieceKind]{
		lang.Some(board.O), lang.Some(board.I), lang.Some(board.T),
		lang.Some(board.S), lang.Some(board.Z), lang.Some(board.J), lang.Some(board.L),
	}

	result, err := search.Solve(context.Background(), g, cfg)
	require.NoError(t, err)
	assert.Empty(t, result.Solutions, "a filled cell at row 5 is above the PC window and can never be cleared")
}

func TestSolveWithTightBudgetPrunesDeepSolutions(t *testing.T) {
	g := board.NewGame()
	g.Queue[0] = lang.Some(board.T)

	result, err := search.Solve(context.Background(), g, cfg, search.WithMovesRemaining(1))
	require.NoError(t, err)

	for _, sol := range result.Solutions {
		assert.LessOrEqual(t, len(sol.Steps), 1)
	}
}

func TestSolveIsIdempotent(t *testing.T) {
	g := board.NewGame()
	g.Queue = [board.QueueSize]lang.Optional[board.PieceKind]{
		lang.Some(board.O), lang.Some(board.I), lang.Some(board.T),
		lang.Some(board.S), lang.Some(board.Z), lang.Some(board.J), lang.Some(board.L),
	}

	first, err := search.Solve(context.Background(), g, cfg, search.WithMovesRemaining(10))
	require.NoError(t, err)
	second, err := search.Solve(context.Background(), g, cfg, search.WithMovesRemaining(10))
	require.NoError(t, err)

	assert.Equal(t, first.Graph.NodeCount(), second.Graph.NodeCount())
	assert.Equal(t, first.Graph.EdgeCount(), second.Graph.EdgeCount())
	assert.Equal(t, first.Solutions, second.Solutions)
}

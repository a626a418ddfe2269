package searchctl_test

import (
	"context"
	"testing"

	"github.com/herohde/morlock/pkg/board"
	"github.com/herohde/morlock/pkg/search/searchctl"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaunchAndWait(t *testing.T) {
	l := searchctl.NewLauncher()
	g := board.NewGame()

	h := l.Launch(context.Background(), g, board.Config{RotationSystem: board.SRS}, searchctl.Options{})
	result, err := h.Wait(context.Background())
	require.NoError(t, err)
	assert.Empty(t, result.Solutions, "empty board and empty queue has nothing to place")
}

func TestHaltStopsAnInFlightSolve(t *testing.T) {
	l := searchctl.NewLauncher()
	g := board.NewGame()
	g.Queue[0] = lang.Some(board.T)

	h := l.Launch(context.Background(), g, board.Config{RotationSystem: board.SRS}, searchctl.Options{})
	h.Halt()

	result, err := h.Wait(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, result.Graph)
}

// Package searchctl runs a search.Solve invocation asynchronously, so a host
// (the engine facade, the console, a UI) can keep driving while the search
// works and halt it early.
package searchctl

import (
	"context"
	"sync"

	"github.com/herohde/morlock/pkg/board"
	"github.com/herohde/morlock/pkg/search"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

// Options controls one launched solve.
type Options struct {
	// MovesRemaining overrides search.MaxMovesRemaining when set, mainly for
	// tests that want a tighter budget.
	MovesRemaining lang.Optional[uint]
}

// Launcher starts solves on their own goroutine. The engine facade is
// expected to spin off one Launch per solve request and Halt it when the
// request is abandoned; this keeps stopping conditions trivial.
type Launcher interface {
	// Launch starts a solve for game under cfg and returns immediately with
	// a Handle to observe it.
	Launch(ctx context.Context, game board.Game, cfg board.Config, opt Options) Handle
}

// Handle represents one in-flight or completed solve.
type Handle interface {
	// Wait blocks until the solve completes, ctx is done, or Halt was
	// called, and returns the result computed so far.
	Wait(ctx context.Context) (search.Result, error)
	// Halt requests early cancellation. Idempotent.
	Halt()
}

// NewLauncher returns a ready-to-use Launcher.
func NewLauncher() Launcher {
	return &launcher{}
}

type launcher struct{}

func (l *launcher) Launch(ctx context.Context, game board.Game, cfg board.Config, opt Options) Handle {
	runCtx, cancel := context.WithCancel(ctx)

	h := &handle{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(h.done)

		logw.Infof(runCtx, "search launched: board=%v", game.Board)
		var solveOpts []search.SolveOption
		if n, ok := opt.MovesRemaining.V(); ok {
			solveOpts = append(solveOpts, search.WithMovesRemaining(n))
		}
		result, err := search.Solve(runCtx, game, cfg, solveOpts...)
		h.mu.Lock()
		h.result, h.err = result, err
		h.mu.Unlock()
	}()

	return h
}

type handle struct {
	cancel context.CancelFunc
	done   chan struct{}

	mu     sync.Mutex
	result search.Result
	err    error
}

func (h *handle) Wait(ctx context.Context) (search.Result, error) {
	select {
	case <-h.done:
	case <-ctx.Done():
		h.cancel()
		<-h.done
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	return h.result, h.err
}

func (h *handle) Halt() {
	h.cancel()
}

package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/herohde/morlock/pkg/board"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// Result is the outcome of one Solve invocation: the full board-transition
// graph that was built and every Perfect-Clear solution path extracted from
// it.
type Result struct {
	Graph     *Graph
	Solutions []Solution
}

// SolveOption customizes a single Solve invocation.
type SolveOption func(*solveOptions)

type solveOptions struct {
	movesRemaining uint
}

// WithMovesRemaining overrides MaxMovesRemaining for this invocation, mainly
// for tests that want a tighter placement budget.
func WithMovesRemaining(n uint) SolveOption {
	return func(o *solveOptions) { o.movesRemaining = n }
}

// Solve builds the board-transition graph rooted at game's board and
// extracts every simple path to a Perfect-Clear sink, within cfg's rules and
// the MaxMovesRemaining placement budget (or the one given by
// WithMovesRemaining). It never panics for
// ordinary invalid actions -- those prune the branch that produced them --
// and checks ctx for cancellation at every recursive expansion, returning
// whatever graph was built so far with no further solutions on cancel.
func Solve(ctx context.Context, game board.Game, cfg board.Config, opts ...SolveOption) (Result, error) {
	o := solveOptions{movesRemaining: MaxMovesRemaining}
	for _, opt := range opts {
		opt(&o)
	}

	initial := State{Game: game, MovesRemaining: o.movesRemaining}
	source := NodeKey{Board: game.Board, MovesRemaining: o.movesRemaining}

	g := NewGraph(source)
	node, _ := g.EnsureNode(source)

	logw.Debugf(ctx, "Solve: source=%v", source)

	if !node.CanPC && isNothingToPlace(game) {
		// The host submitted neither an active piece nor any queued pieces,
		// and the board isn't already a Perfect Clear. There is nothing to
		// speculate from: a solver asked to find Perfect Clears for a game
		// that never started returns no solutions, rather than inventing an
		// entire bag out of thin air.
		return Result{Graph: g, Solutions: ExtractSolutions(g)}, nil
	}

	if !node.TooHigh && !node.OutOfMoves && !node.CanPC {
		if err := generateNextStates(ctx, g, cfg, initial, source); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				logw.Infof(ctx, "Solve cancelled: %v", err)
				return Result{Graph: g, Solutions: ExtractSolutions(g)}, nil
			}
			return Result{}, err
		}
	}

	solutions := ExtractSolutions(g)
	logw.Infof(ctx, "Solve done: nodes=%v edges=%v solutions=%v", g.NodeCount(), g.EdgeCount(), len(solutions))
	return Result{Graph: g, Solutions: solutions}, nil
}

func isNothingToPlace(g board.Game) bool {
	if _, ok := g.Piece.V(); ok {
		return false
	}
	for _, slot := range g.Queue {
		if _, ok := slot.V(); ok {
			return false
		}
	}
	return true
}

// pieceCandidate is one way the active piece could become available: either
// the real queue supplied it (probability 1) or it was guessed speculatively
// (probability 1/NumPieceKinds), once the queue is known to be exhausted.
type pieceCandidate struct {
	state       State
	probability float64
}

// generateNextStates is the search step: piece fan-out, hold fan-out,
// placement fan-out, then node insertion, per component C8.
func generateNextStates(ctx context.Context, g *Graph, cfg board.Config, state State, prevKey NodeKey) error {
	if contextx.IsCancelled(ctx) {
		return ctx.Err()
	}

	candidates, err := pieceFanOut(cfg, state)
	if err != nil {
		return err
	}

	for _, pc := range candidates {
		for _, switchHold := range [2]bool{true, false} {
			held, err := pc.state.PlayHold(cfg, switchHold)
			if err != nil {
				continue
			}

			placements, err := PlacablePieces(held.Game, cfg)
			if err != nil {
				continue
			}

			for _, placement := range placements {
				withPlacement := held
				withPlacement.Game.Piece = lang.Some(placement)

				placed, err := withPlacement.PlayPlace(cfg)
				if err != nil {
					// Unreachable in principle: the enumerator only returns
					// poses where CanPlace already held, so a failure here is
					// a logic error and aborts the search.
					return fmt.Errorf("place failed after enumerator marked lockable: %w", err)
				}

				nextKey := NodeKey{Board: placed.Game.Board, MovesRemaining: placed.MovesRemaining}
				node, isNew := g.EnsureNode(nextKey)
				g.AddEdge(prevKey, Edge{To: nextKey, Piece: placement.Kind, Probability: pc.probability})

				if !isNew {
					continue // cycle-safe: subproblem already expanded
				}
				if node.TooHigh || node.OutOfMoves || node.CanPC {
					continue // terminal: do not recurse further
				}
				if err := generateNextStates(ctx, g, cfg, placed, nextKey); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func pieceFanOut(cfg board.Config, state State) ([]pieceCandidate, error) {
	if _, ok := state.Game.Piece.V(); ok {
		return []pieceCandidate{{state: state, probability: 1}}, nil
	}

	if consumed, err := state.ConsumeQueue(cfg); err == nil {
		return []pieceCandidate{{state: consumed, probability: 1}}, nil
	} else if !errors.Is(err, board.ErrQueueEmpty) {
		return nil, nil // collision on spawn: dead branch (game over), not an error
	}

	var out []pieceCandidate
	for kind := board.PieceKind(0); kind < board.NumPieceKinds; kind++ {
		guessed, err := state.WithNextPiece(cfg, kind)
		if err != nil {
			continue
		}
		out = append(out, pieceCandidate{state: guessed, probability: 1.0 / float64(board.NumPieceKinds)})
	}
	return out, nil
}

// Package search implements the placement enumerator and the Perfect-Clear
// search engine built on top of the board package's Game reducer.
package search

import (
	"github.com/herohde/morlock/pkg/board"
)

// MaxMovesRemaining is the search's default placement budget. Ten placements
// fill all four PC rows (40 cells) of an empty board; from an empty board
// every Perfect Clear takes five or ten placements, since the 4-cell pieces
// must add up to whole 10-cell rows.
const MaxMovesRemaining = 10

// SeenInBag records which kinds of the current 7-bag have already been
// drawn. It is carried for a future probability model and is not consulted
// by the search in this revision.
type SeenInBag [board.NumPieceKinds]bool

// Seen reports whether kind has been marked seen.
func (s SeenInBag) Seen(kind board.PieceKind) bool {
	return s[kind]
}

// WithSeen returns a copy of s with kind marked seen.
func (s SeenInBag) WithSeen(kind board.PieceKind) SeenInBag {
	s[kind] = true
	return s
}

// State extends a Game with the search's own bookkeeping: the remaining
// placement budget and the seen-in-bag set.
type State struct {
	Game           board.Game
	MovesRemaining uint
	SeenInBag      SeenInBag
}

// Initial returns the starting State: an empty board, full move budget, and
// no pieces marked seen.
func Initial() State {
	return State{Game: board.NewGame(), MovesRemaining: MaxMovesRemaining}
}

// ConsumeQueue pops the front of the game's queue into the active piece.
func (s State) ConsumeQueue(cfg board.Config) (State, error) {
	g, err := s.Game.ConsumeQueue(cfg)
	if err != nil {
		return State{}, err
	}
	out := s
	out.Game = g
	return out, nil
}

// WithNextPiece spawns kind as the active piece without consuming the queue,
// for speculative branches once the real queue is exhausted.
func (s State) WithNextPiece(cfg board.Config, kind board.PieceKind) (State, error) {
	g, err := s.Game.WithNextPiece(cfg, kind)
	if err != nil {
		return State{}, err
	}
	out := s
	out.Game = g
	return out, nil
}

// PlayMove delegates to the game reducer's Move. Does not consume budget.
func (s State) PlayMove(cfg board.Config, m board.Move) (State, error) {
	g, err := s.Game.Move(cfg, m)
	if err != nil {
		return State{}, err
	}
	out := s
	out.Game = g
	return out, nil
}

// PlayHold delegates to the game reducer's Hold. Does not consume budget.
func (s State) PlayHold(cfg board.Config, switchHold bool) (State, error) {
	g, err := s.Game.Hold(cfg, switchHold)
	if err != nil {
		return State{}, err
	}
	out := s
	out.Game = g
	return out, nil
}

// PlayPlace delegates to the game reducer's Place and decrements
// MovesRemaining; this is the only action that consumes budget.
func (s State) PlayPlace(cfg board.Config) (State, error) {
	g, err := s.Game.Place(cfg)
	if err != nil {
		return State{}, err
	}
	out := s
	out.Game = g
	if out.MovesRemaining > 0 {
		out.MovesRemaining--
	}
	return out, nil
}

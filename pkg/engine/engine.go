// Package engine hosts Solver, the long-lived facade around the board
// reducer and the Perfect-Clear search, as used by the console front end
// and any other host that wants reset/solve/halt without touching the
// search package directly.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/herohde/morlock/pkg/board"
	"github.com/herohde/morlock/pkg/search/searchctl"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

var version = build.NewVersion(0, 1, 0)

// Options are the solve options used by every Solve call.
type Options struct {
	// MovesRemaining overrides search.MaxMovesRemaining when set.
	MovesRemaining lang.Optional[uint]
}

func (o Options) String() string {
	if v, ok := o.MovesRemaining.V(); ok {
		return fmt.Sprintf("{moves=%v}", v)
	}
	return "{moves=default}"
}

// Solver encapsulates a Perfect-Clear game and the search launched against
// it: reset to a new snapshot, solve, and halt an in-flight solve.
type Solver struct {
	name, author string

	launcher searchctl.Launcher
	cfg      board.Config
	opts     Options

	g      board.Game
	active searchctl.Handle
	mu     sync.Mutex
}

// Option is a solver creation option.
type Option func(*Solver)

// WithConfig sets the rules (rotation system, soft drop) used for every solve.
func WithConfig(cfg board.Config) Option {
	return func(s *Solver) {
		s.cfg = cfg
	}
}

// WithOptions sets default runtime options.
func WithOptions(opts Options) Option {
	return func(s *Solver) {
		s.opts = opts
	}
}

// New returns a Solver reset to an empty game.
func New(ctx context.Context, name, author string, opts ...Option) *Solver {
	s := &Solver{
		name:     name,
		author:   author,
		launcher: searchctl.NewLauncher(),
		cfg:      board.Config{RotationSystem: board.SRS},
	}
	for _, fn := range opts {
		fn(s)
	}

	s.Reset(ctx, board.NewGame())

	logw.Infof(ctx, "Initialized solver: %v, options=%v", s.Name(), s.opts)
	return s
}

// Name returns the solver name and version.
func (s *Solver) Name() string {
	return fmt.Sprintf("%v %v", s.name, version)
}

// Author returns the author.
func (s *Solver) Author() string {
	return s.author
}

func (s *Solver) Options() Options {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.opts
}

func (s *Solver) SetMovesRemaining(n uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.opts.MovesRemaining = lang.Some(n)
}

// Game returns the current game.
func (s *Solver) Game() board.Game {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.g
}

// Snapshot returns the current game's snapshot encoding. Convenience function.
func (s *Solver) Snapshot() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return board.Encode(s.g)
}

// Reset replaces the current game.
func (s *Solver) Reset(ctx context.Context, g board.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()

	logw.Infof(ctx, "Reset, options=%v", s.opts)

	s.haltSearchIfActive(ctx)
	s.g = g

	logw.Infof(ctx, "New game: %v", board.Encode(s.g))
}

// ResetFromSnapshot decodes and resets from a snapshot string.
func (s *Solver) ResetFromSnapshot(ctx context.Context, snapshot string) error {
	g, err := board.Decode(snapshot)
	if err != nil {
		return err
	}
	s.Reset(ctx, g)
	return nil
}

// Solve launches a search from the current game and returns a handle to it.
func (s *Solver) Solve(ctx context.Context) (searchctl.Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	logw.Infof(ctx, "Solve %v, opt=%v", board.Encode(s.g), s.opts)

	if s.active != nil {
		return nil, fmt.Errorf("solve already active")
	}

	handle := s.launcher.Launch(ctx, s.g, s.cfg, searchctl.Options{MovesRemaining: s.opts.MovesRemaining})
	s.active = handle
	return handle, nil
}

// Halt halts the active solve, if any.
func (s *Solver) Halt(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	logw.Infof(ctx, "Halt")

	if !s.haltSearchIfActive(ctx) {
		return fmt.Errorf("no active solve")
	}
	return nil
}

func (s *Solver) haltSearchIfActive(ctx context.Context) bool {
	if s.active != nil {
		s.active.Halt()
		logw.Infof(ctx, "Solve halted")

		s.active = nil
		return true
	}
	return false
}

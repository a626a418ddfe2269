// Package console implements a line-protocol driver for the Solver, mainly
// for manual debugging and for piping snapshots in from a host.
package console

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/herohde/morlock/pkg/board"
	"github.com/herohde/morlock/pkg/engine"
	"github.com/herohde/morlock/pkg/search"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/iox"
)

const ProtocolName = "console"

// Driver implements a console driver for debugging a Solver.
type Driver struct {
	iox.AsyncCloser

	s *engine.Solver

	out chan<- string

	active atomic.Bool // a solve is in flight
}

func NewDriver(ctx context.Context, s *engine.Solver, in <-chan string) (*Driver, <-chan string) {
	out := make(chan string, 100)
	d := &Driver{
		AsyncCloser: iox.NewAsyncCloser(),
		s:           s,
		out:         out,
	}
	go d.process(ctx, in)

	return d, out
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer d.Close()
	defer close(d.out)

	logw.Infof(ctx, "Console protocol initialized")

	d.out <- fmt.Sprintf("solver %v (%v)", d.s.Name(), d.s.Author())
	d.printGame(ctx)

	for {
		select {
		case line, ok := <-in:
			if !ok {
				logw.Infof(ctx, "Input stream broken. Exiting")
				return
			}

			parts := strings.Fields(line)
			if len(parts) == 0 {
				break
			}

			cmd := parts[0]
			args := parts[1:]

			switch strings.ToLower(cmd) {
			case "reset", "r":
				// reset [<snapshot>]

				d.ensureInactive(ctx)

				if len(args) == 0 {
					d.s.Reset(ctx, board.NewGame())
				} else if err := d.s.ResetFromSnapshot(ctx, strings.Join(args, " ")); err != nil {
					d.out <- fmt.Sprintf("invalid snapshot: %v", err)
					break
				}
				d.printGame(ctx)

			case "print", "p":
				d.printGame(ctx)

			case "moves", "m": // moves [<movesRemaining>]
				if len(args) > 0 {
					if n, err := strconv.Atoi(args[0]); err == nil && n > 0 {
						d.s.SetMovesRemaining(uint(n))
					}
				}

			case "solve", "s":
				d.ensureInactive(ctx)

				handle, err := d.s.Solve(ctx)
				if err != nil {
					d.out <- fmt.Sprintf("solve failed: %v", err)
					break
				}
				d.active.Store(true)

				go func() {
					result, err := handle.Wait(ctx)
					d.solveCompleted(ctx, result, err)
				}()

			case "halt", "stop":
				if err := d.s.Halt(ctx); err != nil {
					d.active.Store(false)
				}

			case "quit", "exit", "q":
				d.ensureInactive(ctx)
				return

			case "":
				// ignore empty command

			default:
				d.out <- fmt.Sprintf("unrecognized command: '%v'", cmd)
			}

		case <-d.Closed():
			d.ensureInactive(ctx)

			logw.Infof(ctx, "Driver closed")
			return
		}
	}
}

func (d *Driver) ensureInactive(ctx context.Context) {
	d.active.Store(false)
	_ = d.s.Halt(ctx)
}

func (d *Driver) solveCompleted(ctx context.Context, result search.Result, err error) {
	if !d.active.CompareAndSwap(true, false) {
		return // stale or duplicate result
	}
	if err != nil {
		d.out <- fmt.Sprintf("solve error: %v", err)
		return
	}

	d.out <- fmt.Sprintf("nodes=%v edges=%v solutions=%v", result.Graph.NodeCount(), result.Graph.EdgeCount(), len(result.Solutions))
	for i, sol := range result.Solutions {
		var kinds []string
		for _, step := range sol.Steps {
			kinds = append(kinds, step.Piece.String())
		}
		d.out <- fmt.Sprintf(" %2d. %v\t(p=%.6f)", i+1, strings.Join(kinds, " "), sol.Probability)
	}
}

func (d *Driver) printGame(ctx context.Context) {
	g := d.s.Game()

	d.out <- ""
	d.out <- g.Board.String()
	d.out <- ""
	d.out <- fmt.Sprintf("snapshot: %v", d.s.Snapshot())
	d.out <- ""
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/herohde/morlock/pkg/board"
	"github.com/herohde/morlock/pkg/engine"
	"github.com/herohde/morlock/pkg/engine/console"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

var (
	movesRemaining = flag.Int("moves", 0, "Placement budget override (zero uses the default)")
	softDrop       = flag.Bool("softdrop", false, "Allow soft drop as a distinct move")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: pcsolver [options]

PCSOLVER finds Perfect Clear solutions for a Tetris-like playfield.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	var opts engine.Options
	if *movesRemaining > 0 {
		opts.MovesRemaining = lang.Some(uint(*movesRemaining))
	}

	cfg := board.Config{RotationSystem: board.SRS, SoftDropAllowed: *softDrop}
	s := engine.New(ctx, "pcsolver", "pcsolver", engine.WithConfig(cfg), engine.WithOptions(opts))

	in := engine.ReadStdinLines(ctx)
	driver, out := console.NewDriver(ctx, s, in)
	go engine.WriteStdoutLines(ctx, out)

	<-driver.Closed()
	logw.Infof(ctx, "Exiting")
}

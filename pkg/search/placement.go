package search

import (
	"sort"

	"github.com/herohde/morlock/pkg/board"
	"github.com/seekerror/stdlib/pkg/lang"
)

// PlacementKey identifies a reachable pose of the active piece: its position
// and orientation. The key space is finite (x in [-2,11], y in [-2,H+1], 4
// orientations), which bounds the enumerator's memo and guarantees
// termination.
type PlacementKey struct {
	Position    board.Point
	Orientation board.Orientation
}

// PlacablePieces returns every (position, orientation) pose of g's active
// piece that is both reachable via cfg's move set from the current pose and
// immediately lockable (CanPlace holds). The result is order-insensitive; it
// is returned sorted for deterministic callers and tests.
func PlacablePieces(g board.Game, cfg board.Config) ([]board.Piece, error) {
	piece, ok := g.Piece.V()
	if !ok {
		return nil, board.ErrNoPiece
	}
	kind := piece.Kind

	memo := map[PlacementKey]bool{}

	start := PlacementKey{Position: piece.Position, Orientation: piece.Orientation}
	explore(g, cfg, kind, start, memo)

	var out []board.Piece
	for key, lockable := range memo {
		if lockable {
			out = append(out, board.Piece{Kind: kind, Position: key.Position, Orientation: key.Orientation})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch {
		case a.Position.Y != b.Position.Y:
			return a.Position.Y < b.Position.Y
		case a.Position.X != b.Position.X:
			return a.Position.X < b.Position.X
		default:
			return a.Orientation < b.Orientation
		}
	})
	return out, nil
}

// explore performs the memoized depth-first traversal described above,
// rooted at key. g must already have an active piece; its position and
// orientation are overwritten per visited key.
func explore(g board.Game, cfg board.Config, kind board.PieceKind, key PlacementKey, memo map[PlacementKey]bool) {
	if _, visited := memo[key]; visited {
		return
	}

	cur := board.Piece{Kind: kind, Position: key.Position, Orientation: key.Orientation}
	memo[key] = g.Board.CanPlace(cur.Points())

	base := g
	base.Piece = lang.Some(cur)

	for _, m := range cfg.PossibleMoves() {
		next, err := base.Move(cfg, m)
		if err != nil {
			continue
		}
		np, _ := next.Piece.V()
		explore(g, cfg, kind, PlacementKey{Position: np.Position, Orientation: np.Orientation}, memo)
	}
}

package board

import (
	"errors"

	"github.com/seekerror/stdlib/pkg/lang"
)

// Sentinel errors for the Game reducer. Every error from Move/Hold/Queue
// prunes the branch that produced it; only Place after an enumerator-marked
// lockable placement is expected never to fail.
var (
	// ErrQueueEmpty is returned by ConsumeQueue when the queue has no pieces left.
	ErrQueueEmpty = errors.New("board: queue empty")
	// ErrPieceCollision is returned when a freshly spawned piece overlaps the board.
	ErrPieceCollision = errors.New("board: piece collision")
	// ErrNoPiece is returned by Move, Hold or Place when there is no active piece.
	ErrNoPiece = errors.New("board: no active piece")
	// ErrInvalidMove is returned when a rotation (with all kicks), translation or
	// drop would leave the piece overlapping the board.
	ErrInvalidMove = errors.New("board: invalid move")
	// ErrHoldNotAvailable is returned by Hold when the hold button was already used
	// for the active piece.
	ErrHoldNotAvailable = errors.New("board: hold not available")
	// ErrNoHoldPiece is returned by Hold{switch: true} when the hold buffer is empty.
	ErrNoHoldPiece = errors.New("board: no hold piece")
	// ErrPieceInAir is returned by Place when the active piece has no support below it.
	ErrPieceInAir = errors.New("board: piece in air")
)

// QueueSize is the fixed capacity of Game's upcoming-piece queue. The
// fixed-capacity, sentinel-filled representation keeps Game copyable without
// heap allocation in the search hot path; it must not be widened.
const QueueSize = 7

// Queue is a fixed-capacity, front-to-back sequence of upcoming piece kinds.
// Unused trailing slots hold lang.None[PieceKind]().
type Queue [QueueSize]lang.Optional[PieceKind]

// PopFront returns the first piece kind in the queue, the remaining queue
// shifted down with a trailing None, and whether a piece was present.
func (q Queue) PopFront() (PieceKind, Queue, bool) {
	kind, ok := q[0].V()
	if !ok {
		return 0, q, false
	}

	var next Queue
	copy(next[:QueueSize-1], q[1:])
	return kind, next, true
}

// Game is the immutable per-step playfield state: the board, the active
// piece (if any), the hold buffer, and the upcoming-piece queue.
type Game struct {
	Board      Board
	Piece      lang.Optional[Piece]
	HoldKind   lang.Optional[PieceKind]
	IsHoldUsed bool
	Queue      Queue
}

// NewGame returns the initial Game: an empty board, no active piece, empty
// hold, empty queue.
func NewGame() Game {
	return Game{Board: Empty()}
}

// ConsumeQueue pops the front of the queue, spawns it as the active piece,
// and resets IsHoldUsed. Fails with ErrQueueEmpty if the queue is empty, or
// ErrPieceCollision if the spawned piece already overlaps the board.
func (g Game) ConsumeQueue(cfg Config) (Game, error) {
	kind, rest, ok := g.Queue.PopFront()
	if !ok {
		return Game{}, ErrQueueEmpty
	}

	next := Spawn(kind)
	if !g.Board.CanFit(next.Points()) {
		return Game{}, ErrPieceCollision
	}

	out := g
	out.Queue = rest
	out.Piece = lang.Some(next)
	out.IsHoldUsed = false
	return out, nil
}

// WithNextPiece spawns the given kind as the active piece without touching
// the queue, for speculative exploration once the real queue is exhausted.
// It resets IsHoldUsed, since a new piece is becoming active just as it would
// via ConsumeQueue. Fails with ErrPieceCollision if the spawn overlaps.
func (g Game) WithNextPiece(cfg Config, kind PieceKind) (Game, error) {
	next := Spawn(kind)
	if !g.Board.CanFit(next.Points()) {
		return Game{}, ErrPieceCollision
	}

	out := g
	out.Piece = lang.Some(next)
	out.IsHoldUsed = false
	return out, nil
}

// Hold applies the hold action. When switch is false, it merely consumes the
// hold button for the active piece, leaving it unchanged. When switch is
// true, it swaps the active piece with the held kind (respawning the held
// kind at North / spawn point) and stores the previously active kind in hold.
func (g Game) Hold(cfg Config, switchHold bool) (Game, error) {
	if g.IsHoldUsed {
		return Game{}, ErrHoldNotAvailable
	}

	if !switchHold {
		out := g
		out.IsHoldUsed = true
		return out, nil
	}

	holdKind, ok := g.HoldKind.V()
	if !ok {
		return Game{}, ErrNoHoldPiece
	}

	next := Spawn(holdKind)
	if !g.Board.CanFit(next.Points()) {
		return Game{}, ErrPieceCollision
	}

	piece, ok := g.Piece.V()
	if !ok {
		return Game{}, ErrNoPiece
	}

	out := g
	out.IsHoldUsed = true
	out.Piece = lang.Some(next)
	out.HoldKind = lang.Some(piece.Kind)
	return out, nil
}

// Move applies a Rotate, Translate or Drop to the active piece.
func (g Game) Move(cfg Config, m Move) (Game, error) {
	piece, ok := g.Piece.V()
	if !ok {
		return Game{}, ErrNoPiece
	}

	switch m.kind {
	case moveRotate:
		return g.moveRotate(piece, m.rotation)
	case moveTranslate:
		return g.moveTranslate(piece, m.direction)
	case moveDrop:
		return g.moveDrop(piece)
	default:
		panic("invalid move kind")
	}
}

func (g Game) moveRotate(piece Piece, r Rotation) (Game, error) {
	from := piece.Orientation
	to := from.Rotated(r)

	rotated := piece.WithOrientation(to)
	if g.Board.CanFit(rotated.Points()) {
		out := g
		out.Piece = lang.Some(rotated)
		return out, nil
	}

	kicks, ok := KickTable(piece.Kind, from, to)
	if !ok {
		return Game{}, ErrInvalidMove
	}

	points := rotated.Points()
	for _, k := range kicks {
		kicked := addKick(points, k)
		if g.Board.CanFit(kicked) {
			out := g
			out.Piece = lang.Some(rotated.WithPosition(rotated.Position.Add(k)))
			return out, nil
		}
	}
	return Game{}, ErrInvalidMove
}

func addKick(points [4]Point, k Point) [4]Point {
	var out [4]Point
	for i, p := range points {
		out[i] = p.Add(k)
	}
	return out
}

func (g Game) moveTranslate(piece Piece, d Direction) (Game, error) {
	next := piece.WithPosition(piece.Position.Add(d.Offset()))
	if !g.Board.CanFit(next.Points()) {
		return Game{}, ErrInvalidMove
	}

	out := g
	out.Piece = lang.Some(next)
	return out, nil
}

func (g Game) moveDrop(piece Piece) (Game, error) {
	cur := piece
	moved := false
	for {
		next := cur.WithPosition(cur.Position.Add(Down.Offset()))
		if !g.Board.CanFit(next.Points()) {
			break
		}
		cur = next
		moved = true
	}
	if !moved {
		return Game{}, ErrInvalidMove
	}

	out := g
	out.Piece = lang.Some(cur)
	return out, nil
}

// Place locks the active piece into the board. If the resulting board is
// already a canonical Perfect-Clear shape, filled lines are preserved so the
// search can detect the sink; otherwise filled lines are cleared as in
// ordinary play. The active piece becomes None and IsHoldUsed resets.
func (g Game) Place(cfg Config) (Game, error) {
	piece, ok := g.Piece.V()
	if !ok {
		return Game{}, ErrNoPiece
	}

	points := piece.Points()
	if !g.Board.CanPlace(points) {
		return Game{}, ErrPieceInAir
	}

	filled := g.Board.FillPiecePoints(points)

	out := g
	out.Board = filled
	if !filled.CanPerfectClear() {
		out.Board = filled.ClearFilledLines()
	}
	out.Piece = lang.None[Piece]()
	out.IsHoldUsed = false
	return out, nil
}

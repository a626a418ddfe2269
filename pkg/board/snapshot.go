package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/seekerror/stdlib/pkg/lang"
)

// Snapshot errors. Decode never panics; a malformed string always yields one
// of these.
var (
	ErrSnapshotFields   = errors.New("board: snapshot must have 5 space-separated fields")
	ErrSnapshotBoard    = errors.New("board: snapshot board field is not a valid hex mask")
	ErrSnapshotPiece    = errors.New("board: snapshot piece field is malformed")
	ErrSnapshotHold     = errors.New("board: snapshot hold field is malformed")
	ErrSnapshotHoldUsed = errors.New("board: snapshot hold-used field must be 0 or 1")
	ErrSnapshotQueue    = errors.New("board: snapshot queue field contains an invalid piece kind")
)

var kindLetters = [NumPieceKinds]byte{'I', 'J', 'L', 'O', 'S', 'T', 'Z'}

func kindToLetter(k PieceKind) byte {
	return kindLetters[k]
}

func letterToKind(c byte) (PieceKind, bool) {
	for i, l := range kindLetters {
		if l == c {
			return PieceKind(i), true
		}
	}
	return 0, false
}

func orientationToLetter(o Orientation) byte {
	switch o {
	case North:
		return 'N'
	case South:
		return 'S'
	case East:
		return 'E'
	case West:
		return 'W'
	default:
		panic(fmt.Sprintf("invalid orientation: %v", o))
	}
}

func letterToOrientation(c byte) (Orientation, bool) {
	switch c {
	case 'N':
		return North, true
	case 'S':
		return South, true
	case 'E':
		return East, true
	case 'W':
		return West, true
	default:
		return 0, false
	}
}

// Encode renders g as a single-line snapshot: "<board> <piece> <hold>
// <holdUsed> <queue>", each field "-" when absent. It is the inverse of
// Decode and is meant for logs, fixtures and the console front end, not for
// wire efficiency.
func Encode(g Game) string {
	var piece string
	if p, ok := g.Piece.V(); ok {
		piece = fmt.Sprintf("%c,%d,%d,%c", kindToLetter(p.Kind), p.Position.X, p.Position.Y, orientationToLetter(p.Orientation))
	} else {
		piece = "-"
	}

	hold := "-"
	if k, ok := g.HoldKind.V(); ok {
		hold = string(kindToLetter(k))
	}

	holdUsed := "0"
	if g.IsHoldUsed {
		holdUsed = "1"
	}

	var queue strings.Builder
	for _, slot := range g.Queue {
		k, ok := slot.V()
		if !ok {
			break
		}
		queue.WriteByte(kindToLetter(k))
	}
	queueField := queue.String()
	if queueField == "" {
		queueField = "-"
	}

	return fmt.Sprintf("%x %s %s %s %s", uint64(g.Board), piece, hold, holdUsed, queueField)
}

// Decode parses a snapshot produced by Encode (or written by hand in the
// same format) into a Game.
func Decode(s string) (Game, error) {
	fields := strings.Fields(s)
	if len(fields) != 5 {
		return Game{}, ErrSnapshotFields
	}

	mask, err := strconv.ParseUint(fields[0], 16, 64)
	if err != nil {
		return Game{}, ErrSnapshotBoard
	}
	g := Game{Board: Board(mask)}

	if fields[1] != "-" {
		parts := strings.Split(fields[1], ",")
		if len(parts) != 4 || len(parts[0]) != 1 {
			return Game{}, ErrSnapshotPiece
		}
		kind, ok := letterToKind(parts[0][0])
		if !ok {
			return Game{}, ErrSnapshotPiece
		}
		x, err1 := strconv.Atoi(parts[1])
		y, err2 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil || len(parts[3]) != 1 {
			return Game{}, ErrSnapshotPiece
		}
		orientation, ok := letterToOrientation(parts[3][0])
		if !ok {
			return Game{}, ErrSnapshotPiece
		}
		g.Piece = lang.Some(Piece{Kind: kind, Position: NewPoint(x, y), Orientation: orientation})
	}

	if fields[2] != "-" {
		if len(fields[2]) != 1 {
			return Game{}, ErrSnapshotHold
		}
		kind, ok := letterToKind(fields[2][0])
		if !ok {
			return Game{}, ErrSnapshotHold
		}
		g.HoldKind = lang.Some(kind)
	}

	switch fields[3] {
	case "0":
		g.IsHoldUsed = false
	case "1":
		g.IsHoldUsed = true
	default:
		return Game{}, ErrSnapshotHoldUsed
	}

	if fields[4] != "-" {
		if len(fields[4]) > QueueSize {
			return Game{}, ErrSnapshotQueue
		}
		for i := 0; i < len(fields[4]); i++ {
			kind, ok := letterToKind(fields[4][i])
			if !ok {
				return Game{}, ErrSnapshotQueue
			}
			g.Queue[i] = lang.Some(kind)
		}
	}

	return g, nil
}

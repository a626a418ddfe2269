package board

// PieceKind identifies one of the seven tetrominoes.
type PieceKind uint8

const (
	I PieceKind = iota
	J
	L
	O
	S
	T
	Z
)

// NumPieceKinds is the number of distinct piece kinds.
const NumPieceKinds = 7

func (k PieceKind) String() string {
	switch k {
	case I:
		return "I"
	case J:
		return "J"
	case L:
		return "L"
	case O:
		return "O"
	case S:
		return "S"
	case T:
		return "T"
	case Z:
		return "Z"
	default:
		return "?"
	}
}

// BoxSize returns the side length of the bounding box the piece's offsets are
// defined in: 4 for I and O, 3 otherwise.
func (k PieceKind) BoxSize() int {
	switch k {
	case I, O:
		return 4
	default:
		return 3
	}
}

// offsets holds the four occupied-cell offsets at North orientation, within
// the piece's bounding box, bottom-left-corner convention.
var offsets = map[PieceKind][4]Point{
	I: {{0, 2}, {1, 2}, {2, 2}, {3, 2}},
	J: {{0, 2}, {0, 1}, {1, 1}, {2, 1}},
	L: {{2, 2}, {0, 1}, {1, 1}, {2, 1}},
	O: {{1, 2}, {2, 2}, {1, 1}, {2, 1}},
	S: {{1, 2}, {2, 2}, {0, 1}, {1, 1}},
	T: {{1, 2}, {0, 1}, {1, 1}, {2, 1}},
	Z: {{0, 2}, {1, 2}, {1, 1}, {2, 1}},
}

// Offsets returns the four occupied-cell offsets of the kind at North
// orientation, within its bounding box.
func (k PieceKind) Offsets() [4]Point {
	return offsets[k]
}

// SpawnTop is the configuration constant controlling where pieces spawn: the
// row just above the playfield's two-row spawn buffer. Fixed at H (the
// solver's window height), so a spawned piece's cells sit at or above the top
// buffer row: rows H and H+1 for 3x3 kinds, row H for I, rows H-1 and H for
// O. The board reads every cell above the window as empty.
const SpawnTop = WindowHeight

// SpawnPoint returns the bottom-left corner of the spawn bounding box for the
// kind: x = 3 always; y = SpawnTop-1 for 3x3 pieces, SpawnTop-2 for 4x4 (I).
func (k PieceKind) SpawnPoint() Point {
	if k.BoxSize() == 4 {
		return Point{X: 3, Y: SpawnTop - 2}
	}
	return Point{X: 3, Y: SpawnTop - 1}
}

// Piece is an active tetromino: its kind, the bottom-left corner of its
// bounding box, and its current orientation.
type Piece struct {
	Kind        PieceKind
	Position    Point
	Orientation Orientation
}

// Spawn returns a new Piece of the given kind at its spawn point, North
// orientation.
func Spawn(kind PieceKind) Piece {
	return Piece{Kind: kind, Position: kind.SpawnPoint(), Orientation: North}
}

// WithOrientation returns a copy of p with the orientation replaced.
func (p Piece) WithOrientation(o Orientation) Piece {
	p.Orientation = o
	return p
}

// WithPosition returns a copy of p with the position replaced.
func (p Piece) WithPosition(pos Point) Piece {
	p.Position = pos
	return p
}

// Points returns the four world-space cells the piece currently occupies.
func (p Piece) Points() [4]Point {
	s := p.Kind.BoxSize()
	raw := p.Kind.Offsets()

	var out [4]Point
	for i, o := range raw {
		out[i] = orientBox(o, s, p.Orientation).Add(p.Position)
	}
	return out
}

// orientBox transforms a North-orientation offset within an s x s bounding box
// into the equivalent offset at the given orientation.
func orientBox(o Point, s int, orientation Orientation) Point {
	switch orientation {
	case North:
		return o
	case South:
		return Point{X: s - 1 - o.X, Y: s - 1 - o.Y}
	case East:
		return Point{X: o.Y, Y: s - 1 - o.X}
	case West:
		return Point{X: s - 1 - o.Y, Y: o.X}
	default:
		panic("invalid orientation")
	}
}

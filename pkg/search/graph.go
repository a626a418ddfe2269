package search

import (
	"fmt"

	"github.com/herohde/morlock/pkg/board"
)

// NodeKey is the memoization key for a graph node: a board value together
// with the placements remaining to reach it. Two nodes with the same key are
// the same node; this is the single largest performance lever in the search,
// collapsing otherwise-duplicated subproblems raised by different piece
// orders into one expansion.
type NodeKey struct {
	Board          board.Board
	MovesRemaining uint
}

func (k NodeKey) String() string {
	return fmt.Sprintf("{%#v, moves=%v}", k.Board, k.MovesRemaining)
}

// Node is a vertex of the search graph: the board/budget pair, plus the
// derived flags that classify it.
type Node struct {
	Key NodeKey

	// TooHigh is true when a filled cell sits at or above the PC window; such
	// a board can never become a Perfect Clear.
	TooHigh bool
	// CanPC is true when the board is one of the four canonical Perfect-Clear
	// masks.
	CanPC bool
	// OutOfMoves is true when no placements remain and the board is not a PC.
	OutOfMoves bool
	// IsValid is true iff this node can still participate in a solution:
	// !TooHigh && !OutOfMoves.
	IsValid bool
}

func newNode(key NodeKey) Node {
	n := Node{Key: key}
	n.TooHigh = key.Board.TooHigh()
	n.CanPC = key.Board.CanPerfectClear()
	n.OutOfMoves = key.MovesRemaining == 0 && !n.CanPC
	n.IsValid = !n.TooHigh && !n.OutOfMoves
	return n
}

// Edge is a directed transition between two nodes: the piece kind placed to
// make it, and the probability of this branch being taken (uniform 1/7 for
// speculative branches in this revision; see DESIGN.md).
type Edge struct {
	To          NodeKey
	Piece       board.PieceKind
	Probability float64
}

// Graph is the directed, memoized board-transition graph built by one search
// invocation. Nodes are keyed by (board, moves_remaining); edges fan out from
// a node to its successors. The graph, like the rest of a single search, is
// not safe for concurrent use by multiple goroutines -- each invocation owns
// its own Graph (see DESIGN.md for why no locking is used here, unlike the
// lock-free transposition table this type is modeled on).
type Graph struct {
	nodes map[NodeKey]Node
	edges map[NodeKey][]Edge
	sinks map[NodeKey]bool

	Source NodeKey
}

// NewGraph returns an empty graph rooted at source.
func NewGraph(source NodeKey) *Graph {
	return &Graph{
		nodes:  map[NodeKey]Node{},
		edges:  map[NodeKey][]Edge{},
		sinks:  map[NodeKey]bool{},
		Source: source,
	}
}

// Lookup returns the node for key, if already inserted.
func (g *Graph) Lookup(key NodeKey) (Node, bool) {
	n, ok := g.nodes[key]
	return n, ok
}

// EnsureNode inserts a node for key if absent and returns it together with
// whether it was newly created.
func (g *Graph) EnsureNode(key NodeKey) (Node, bool) {
	if n, ok := g.nodes[key]; ok {
		return n, false
	}
	n := newNode(key)
	g.nodes[key] = n
	if n.CanPC {
		g.sinks[key] = true
	}
	return n, true
}

// AddEdge records a directed transition from -> edge.To.
func (g *Graph) AddEdge(from NodeKey, edge Edge) {
	g.edges[from] = append(g.edges[from], edge)
}

// Edges returns the outgoing edges of key, in insertion order.
func (g *Graph) Edges(key NodeKey) []Edge {
	return g.edges[key]
}

// Sinks returns every PC-reaching node key discovered so far.
func (g *Graph) Sinks() []NodeKey {
	out := make([]NodeKey, 0, len(g.sinks))
	for k := range g.sinks {
		out = append(out, k)
	}
	return out
}

// NodeCount returns the number of distinct nodes inserted.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges inserted; an edge added more than
// once is counted each time.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, es := range g.edges {
		n += len(es)
	}
	return n
}

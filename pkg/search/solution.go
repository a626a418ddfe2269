package search

import "github.com/herohde/morlock/pkg/board"

// Step is one placement along a solution path: the board immediately before
// the placement, and the kind of piece placed.
type Step struct {
	BoardBefore board.Board
	Piece       board.PieceKind
}

// Solution is one simple path from a graph's source to a Perfect-Clear sink:
// the ordered placements that reach it and the cumulative probability of
// every speculative branch along the way (1 if the path used only queued,
// non-speculative pieces). Probability is informational only; see
// DESIGN.md for why it is not used to prune or rank.
type Solution struct {
	Steps       []Step
	Probability float64
}

// ExtractSolutions enumerates every simple path from g.Source to a
// Perfect-Clear sink. The graph is a DAG: MovesRemaining strictly decreases
// across every edge out of a non-terminal node, so no path can revisit a
// node and the recursion below always terminates.
func ExtractSolutions(g *Graph) []Solution {
	var solutions []Solution
	var path []Step

	var walk func(key NodeKey, probability float64)
	walk = func(key NodeKey, probability float64) {
		node, ok := g.Lookup(key)
		if !ok {
			return
		}
		if node.CanPC {
			solutions = append(solutions, Solution{
				Steps:       append([]Step(nil), path...),
				Probability: probability,
			})
			return // sink: generateNextStates never recurses past it either
		}

		for _, e := range g.Edges(key) {
			path = append(path, Step{BoardBefore: key.Board, Piece: e.Piece})
			walk(e.To, probability*e.Probability)
			path = path[:len(path)-1]
		}
	}

	walk(g.Source, 1)
	return solutions
}

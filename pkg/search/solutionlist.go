package search

import (
	"container/heap"
	"fmt"
)

// SolutionList is a priority queue of solutions, ordered highest-probability
// first, for callers that want the most-likely Perfect Clears without
// sorting the full result set themselves.
type SolutionList struct {
	h solutionHeap
}

// NewSolutionList returns a new list over solutions, ordered by Probability.
func NewSolutionList(solutions []Solution) *SolutionList {
	h := make(solutionHeap, len(solutions))
	copy(h, solutions)
	heap.Init(&h)
	return &SolutionList{h: h}
}

// Next pops the highest-probability remaining solution.
func (l *SolutionList) Next() (Solution, bool) {
	if l.Size() == 0 {
		return Solution{}, false
	}
	return heap.Pop(&l.h).(Solution), true
}

func (l *SolutionList) Size() int {
	return l.h.Len()
}

func (l *SolutionList) String() string {
	if l.Size() == 0 {
		return "[size=0]"
	}
	return fmt.Sprintf("[top=%v, size=%v]", l.h[0].Probability, l.Size())
}

type solutionHeap []Solution

func (h solutionHeap) Len() int            { return len(h) }
func (h solutionHeap) Less(i, j int) bool  { return h[i].Probability > h[j].Probability }
func (h solutionHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }

func (h *solutionHeap) Push(x interface{}) {
	*h = append(*h, x.(Solution))
}

func (h *solutionHeap) Pop() interface{} {
	old := *h
	n := len(old)
	ret := old[n-1]
	*h = old[0 : n-1]
	return ret
}

package search_test

import (
	"testing"

	"github.com/herohde/morlock/pkg/search"
	"github.com/stretchr/testify/assert"
)

func TestSolutionListOrdersByProbability(t *testing.T) {
	l := search.NewSolutionList([]search.Solution{
		{Probability: 0.1},
		{Probability: 0.9},
		{Probability: 0.5},
	})

	var order []float64
	for {
		sol, ok := l.Next()
		if !ok {
			break
		}
		order = append(order, sol.Probability)
	}
	assert.Equal(t, []float64{0.9, 0.5, 0.1}, order)
}

func TestSolutionListEmpty(t *testing.T) {
	l := search.NewSolutionList(nil)
	assert.Equal(t, 0, l.Size())
	_, ok := l.Next()
	assert.False(t, ok)
}

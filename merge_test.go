package grann

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/grann/internal/searcher"
)

func TestMergeInstances_DedupeKeepMin(t *testing.T) {
	a := []searcher.Candidate{
		{Distance: 0.1, ID: 2},
		{Distance: 0.9, ID: 3},
	}
	b := []searcher.Candidate{
		{Distance: 0.1, ID: 2}, // duplicate of a's best
		{Distance: 0.5, ID: 7},
	}

	out := mergeInstances([][]searcher.Candidate{a, b}, 3, 10)

	assert.Equal(t, []Neighbor{
		{ID: 2, Distance: 0.1},
		{ID: 7, Distance: 0.5},
		{ID: 3, Distance: 0.9},
	}, out)
}

func TestMergeInstances_DropsSentinels(t *testing.T) {
	a := []searcher.Candidate{
		{Distance: 0.3, ID: 1},
		{Distance: searcher.MaxDistance, ID: searcher.InvalidID},
	}

	out := mergeInstances([][]searcher.Candidate{a}, 5, 10)

	assert.Equal(t, []Neighbor{{ID: 1, Distance: 0.3}}, out)
}

func TestMergeInstances_Truncates(t *testing.T) {
	a := []searcher.Candidate{
		{Distance: 0.1, ID: 1},
		{Distance: 0.2, ID: 2},
		{Distance: 0.3, ID: 3},
	}

	out := mergeInstances([][]searcher.Candidate{a}, 2, 10)

	assert.Len(t, out, 2)
	assert.Equal(t, uint32(1), out[0].ID)
}

func TestMergeInstances_TieBreakByID(t *testing.T) {
	a := []searcher.Candidate{{Distance: 0.5, ID: 9}}
	b := []searcher.Candidate{{Distance: 0.5, ID: 2}}

	out := mergeInstances([][]searcher.Candidate{a, b}, 2, 10)

	assert.Equal(t, uint32(2), out[0].ID)
	assert.Equal(t, uint32(9), out[1].ID)
}

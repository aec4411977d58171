package grann

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchParams_WithDefaults(t *testing.T) {
	p := SearchParams{}.withDefaults(10, 16, 10000)

	assert.Equal(t, 64, p.ITopK)
	assert.Equal(t, 4, p.SearchWidth)
	assert.Equal(t, 64, p.MaxIterations)
	assert.Equal(t, 1, p.Instances)
	assert.Equal(t, 64, p.RandomSamples)
	assert.Positive(t, p.HashBits)

	require.NoError(t, p.Validate(10, 16))
}

func TestSearchParams_WithDefaults_LargeK(t *testing.T) {
	p := SearchParams{}.withDefaults(100, 16, 10000)

	// ITopK covers k, rounded to the lane width.
	assert.Equal(t, 128, p.ITopK)
	require.NoError(t, p.Validate(100, 16))
}

func TestSearchParams_WithDefaults_WideDegree(t *testing.T) {
	// With degree 64 the default width must shrink so the buffer still fits
	// its largest tier.
	p := SearchParams{}.withDefaults(10, 64, 10000)

	assert.Less(t, p.SearchWidth, 4)
	require.NoError(t, p.Validate(10, 64))
}

func TestSearchParams_WithDefaults_ExplicitValuesKept(t *testing.T) {
	p := SearchParams{
		ITopK:         96,
		SearchWidth:   2,
		MaxIterations: 7,
		HashBits:      12,
		RandomSamples: 3,
		Instances:     2,
	}.withDefaults(10, 16, 10000)

	assert.Equal(t, 96, p.ITopK)
	assert.Equal(t, 2, p.SearchWidth)
	assert.Equal(t, 7, p.MaxIterations)
	assert.Equal(t, 12, p.HashBits)
	assert.Equal(t, 3, p.RandomSamples)
	assert.Equal(t, 2, p.Instances)
}

func TestSearchParams_Validate(t *testing.T) {
	base := SearchParams{}.withDefaults(10, 16, 10000)

	require.ErrorIs(t, base.Validate(0, 16), ErrInvalidK)

	p := base
	p.ITopK = 5
	require.ErrorIs(t, p.Validate(10, 16), ErrInvalidParams)

	p = base
	p.MinIterations = p.MaxIterations + 1
	require.ErrorIs(t, p.Validate(10, 16), ErrInvalidParams)

	p = base
	p.HashBits = 40
	require.ErrorIs(t, p.Validate(10, 16), ErrInvalidParams)

	p = base
	p.ITopK = 256
	p.SearchWidth = 8

	var ce *ErrCapacityExceeded
	require.ErrorAs(t, p.Validate(10, 16), &ce)
}

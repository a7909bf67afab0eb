package dtw_test

import (
	"testing"

	"github.com/katalvlaran/posematch/dtw"
	"github.com/stretchr/testify/assert"
)

// repeat builds a constant sequence of length n.
func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// TestAlign_IdenticalIsZero checks align(s, s) == 0 for non-empty s.
func TestAlign_IdenticalIsZero(t *testing.T) {
	for _, s := range [][]float64{
		{42},
		{1, 2, 3, 4, 5},
		{0.31, 0.29, 0.35, 0.5, 0.48, 0.47},
		{-3, 7, -1, 0, 12},
	} {
		assert.Equal(t, 0.0, dtw.Align(s, s), "sequence %v", s)
	}
}

// TestAlign_Symmetric checks align(a, b) == align(b, a).
func TestAlign_Symmetric(t *testing.T) {
	pairs := [][2][]float64{
		{{1, 3, 4, 9, 8}, {1, 4, 5, 9, 7}},
		{{0, 0, 1, 2, 1, 0}, {0, 1, 1, 1, 0}},
		{{5}, {1, 2, 3, 4}},
	}
	for _, p := range pairs {
		assert.InDelta(t, dtw.Align(p[0], p[1]), dtw.Align(p[1], p[0]), 1e-12, "pair %v", p)
	}
}

// TestAlign_ConstantSequences checks constants of equal value align to zero.
func TestAlign_ConstantSequences(t *testing.T) {
	for _, c := range []float64{0, 0.5, -7, 1e6} {
		for _, n := range []int{1, 2, 5, 30} {
			assert.Equal(t, 0.0, dtw.Align(repeat(c, n), repeat(c, n)), "c=%v n=%d", c, n)
		}
	}
}

// TestAlign_KnownOffset: cost 10 on each of 5 diagonal cells, divided by 5+5.
func TestAlign_KnownOffset(t *testing.T) {
	assert.Equal(t, 5.0, dtw.Align(repeat(0, 5), repeat(10, 5)))
	assert.Equal(t, 5.0, dtw.Align(repeat(10, 5), repeat(0, 5)))
}

// TestAlign_NormalizesBySumOfLengths pins the (n+m) divisor.
func TestAlign_NormalizesBySumOfLengths(t *testing.T) {
	// Every cell costs 1, best path has max(n,m) = 4 steps: 4 / (2+4).
	assert.InDelta(t, 4.0/6.0, dtw.Align(repeat(0, 2), repeat(1, 4)), 1e-12)
}

// TestAlign_EmptyIsUnmeasurable checks the sentinel on either empty side.
func TestAlign_EmptyIsUnmeasurable(t *testing.T) {
	x := []float64{1, 2, 3}

	assert.True(t, dtw.IsUnmeasurable(dtw.Align(nil, x)))
	assert.True(t, dtw.IsUnmeasurable(dtw.Align(x, nil)))
	assert.True(t, dtw.IsUnmeasurable(dtw.Align([]float64{}, []float64{})))
	assert.Equal(t, dtw.Unmeasurable, dtw.Align([]float64{}, x))
	assert.False(t, dtw.IsUnmeasurable(dtw.Align(x, x)))
}

// TestAlign_DoesNotMutateInput guards the purity contract.
func TestAlign_DoesNotMutateInput(t *testing.T) {
	a := []float64{3, 1, 2}
	b := []float64{2, 2, 3, 1}
	dtw.Align(a, b)
	assert.Equal(t, []float64{3, 1, 2}, a)
	assert.Equal(t, []float64{2, 2, 3, 1}, b)
}

// TestValidate runs the built-in self-check.
func TestValidate(t *testing.T) {
	assert.NoError(t, dtw.Validate())
}

package nim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// =============================================================================
// Sum Unit Tests
// =============================================================================

func TestSum_KnownValues(t *testing.T) {
	tests := []struct {
		name  string
		piles Piles
		want  Pile
	}{
		{"empty", Piles{}, 0},
		{"nil", nil, 0},
		{"single_zero", Piles{0}, 0},
		{"single", Piles{9}, 9},
		{"classic_345", Piles{3, 4, 5}, 2},
		{"balanced_123", Piles{1, 2, 3}, 0},
		{"pair_equal", Piles{7, 7}, 0},
		{"pair_unequal", Piles{5, 2}, 7},
		{"all_zeros", Piles{0, 0, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sum(tt.piles))
		})
	}
}

func TestSum_PrependConsistency(t *testing.T) {
	rest := Piles{4, 5, 9}
	for x := Pile(0); x < 16; x++ {
		full := append(Piles{x}, rest...)
		assert.Equal(t, Xor(x, Sum(rest)), Sum(full), "prepending %d", x)
	}
}

func TestSum_ConcatenationLaw(t *testing.T) {
	tests := []struct {
		name string
		xs   Piles
		ys   Piles
	}{
		{"both_empty", Piles{}, Piles{}},
		{"left_empty", Piles{}, Piles{3, 4, 5}},
		{"right_empty", Piles{1, 2}, Piles{}},
		{"disjoint", Piles{1, 2, 3}, Piles{10, 20}},
		{"overlapping_values", Piles{7, 7, 9}, Piles{9, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			joined := append(tt.xs.Clone(), tt.ys...)
			assert.Equal(t, Xor(Sum(tt.xs), Sum(tt.ys)), Sum(joined))
		})
	}
}

func TestSum_DoublingCancels(t *testing.T) {
	xs := Piles{3, 1, 4, 1, 5, 9, 2, 6}
	doubled := append(xs.Clone(), xs...)
	assert.Equal(t, Pile(0), Sum(doubled))
}

func TestSum_PermutationInvariance(t *testing.T) {
	base := Piles{11, 3, 0, 7, 3, 42}
	permutations := []Piles{
		{3, 11, 0, 7, 3, 42},
		{42, 3, 7, 0, 3, 11},
		{0, 3, 3, 7, 11, 42},
	}

	want := Sum(base)
	for _, perm := range permutations {
		assert.Equal(t, want, Sum(perm), "reordering must not change the nim-sum")
	}
}

// =============================================================================
// SumParallel Tests
// =============================================================================

func TestSumParallel_MatchesSum_Small(t *testing.T) {
	tests := []Piles{
		nil,
		{},
		{7},
		{3, 4, 5},
		{1, 2, 3},
	}
	for _, piles := range tests {
		assert.Equal(t, Sum(piles), SumParallel(piles))
	}
}

func TestSumParallel_MatchesSum_Large(t *testing.T) {
	// Large enough to span several chunks, including a ragged tail.
	piles := make(Piles, 3*parallelChunk+17)
	for i := range piles {
		piles[i] = Pile(i) * 2654435761 // spread the bit patterns
	}
	assert.Equal(t, Sum(piles), SumParallel(piles))
}

func TestSumParallel_LargeBalancedInput(t *testing.T) {
	// Every value appears twice, so the total must cancel to zero.
	piles := make(Piles, 0, 2*parallelChunk)
	for i := 0; i < parallelChunk; i++ {
		v := Pile(i) * 31
		piles = append(piles, v, v)
	}
	assert.Equal(t, Pile(0), SumParallel(piles))
}

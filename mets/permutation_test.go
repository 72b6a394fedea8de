package mets

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPermutationIsIdentity(t *testing.T) {
	p := NewPermutation(5)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, p.Pi)
	assert.Equal(t, 5, p.Size())
}

func TestSwapPreservesPermutation(t *testing.T) {
	p := NewPermutation(6)
	p.Swap(1, 4)
	assert.True(t, isPermutation(p.Pi))
	assert.Equal(t, p.Pi[1], 4)
	assert.Equal(t, p.Pi[4], 1)
}

func TestRandomShuffleProducesPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	p := NewPermutation(20)
	RandomShuffle(p, rng)
	require.True(t, isPermutation(p.Pi))
}

func TestPerturbateProducesPermutationWithBoundedChange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	sol := newTestSolution(10)
	before := append([]int(nil), sol.Pi...)

	Perturbate(sol, 3, rng)

	require.True(t, isPermutation(sol.Pi))

	diffs := 0
	for i := range before {
		if before[i] != sol.Pi[i] {
			diffs++
		}
	}
	assert.LessOrEqual(t, diffs, 2*3)
}

func TestPerturbateGoesThroughOverriddenSwap(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	sol := &countingSwapSolution{testSolution: newTestSolution(8)}

	Perturbate(sol, 4, rng)

	assert.Equal(t, 4, sol.swaps)
}

// countingSwapSolution overrides Swap to prove Perturbate dispatches
// through the polymorphic method rather than touching Pi directly.
type countingSwapSolution struct {
	*testSolution
	swaps int
}

func (s *countingSwapSolution) Swap(i, j int) {
	s.swaps++
	s.testSolution.Swap(i, j)
}

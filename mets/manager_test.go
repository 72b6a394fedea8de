package mets

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwapNeighborhoodSizeIsZeroBeforeRefresh(t *testing.T) {
	n := NewSwapNeighborhood(rand.New(rand.NewSource(1)), 5)
	assert.Equal(t, 0, n.Size())
}

func TestSwapNeighborhoodRefreshProducesMMoves(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	n := NewSwapNeighborhood(rng, 5)
	sol := newTestSolution(10)

	for round := 0; round < 3; round++ {
		require.NoError(t, n.Refresh(sol))
		assert.Equal(t, 5, n.Size())
		for _, mv := range n.Moves() {
			sm := mv.(*SwapMove)
			evaluated, err := sm.Evaluate(sol)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, evaluated, GolType(0))
		}
	}
}

func TestSwapNeighborhoodEndpointsInRangeAndDistinct(t *testing.T) {
	rng := rand.New(rand.NewSource(123))
	n := NewSwapNeighborhood(rng, 20)
	sol := newTestSolution(10)
	require.NoError(t, n.Refresh(sol))

	for _, mv := range n.Moves() {
		sm := mv.(*SwapMove)
		assert.NotEqual(t, sm.p1, sm.p2)
		assert.True(t, sm.p1 >= 0 && sm.p1 < 10)
		assert.True(t, sm.p2 >= 0 && sm.p2 < 10)
	}
}

func TestConstantMoveManagerRefreshIsNoop(t *testing.T) {
	moves := []Move{NewSwapMove(0, 1), NewSwapMove(1, 2)}
	cm := NewConstantMoveManager(moves)
	sol := newTestSolution(5)

	require.NoError(t, cm.Refresh(sol))
	assert.Equal(t, 2, cm.Size())
	assert.Equal(t, moves, cm.Moves())
}

func TestInvertNeighborhoodRefreshProducesMMoves(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	n := NewInvertNeighborhood(rng, 4)
	sol := newTestSolution(8)

	require.NoError(t, n.Refresh(sol))
	assert.Equal(t, 4, n.Size())
	for _, mv := range n.Moves() {
		im := mv.(*InvertMove)
		assert.NotEqual(t, im.p1, im.p2)
	}
}

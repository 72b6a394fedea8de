package mets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwapMoveCanonicalizesArgumentOrder(t *testing.T) {
	a := NewSwapMove(2, 5)
	b := NewSwapMove(5, 2)

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestSwapMoveApplyEvaluateInvariant(t *testing.T) {
	sol := newTestSolution(6)
	m := NewSwapMove(1, 4)

	evaluated, err := m.Evaluate(sol)
	require.NoError(t, err)

	require.NoError(t, m.Apply(sol))
	assert.Equal(t, evaluated, sol.Cost())
}

func TestSwapMoveEndToEndScenario(t *testing.T) {
	sol := newTestSolution(4) // [0,1,2,3]

	require.NoError(t, NewSwapMove(1, 3).Apply(sol))
	assert.Equal(t, []int{0, 3, 2, 1}, sol.Pi)

	require.NoError(t, NewSwapMove(3, 1).Apply(sol)) // same move, reversed args
	assert.Equal(t, []int{0, 1, 2, 3}, sol.Pi)
}

func TestSwapMoveRejectsNonPermutationSolution(t *testing.T) {
	m := NewSwapMove(0, 1)
	err := m.Apply(notAPermutation{})
	assert.ErrorIs(t, err, ErrWrongSolutionKind)
}

func TestSwapMoveOppositeIsClone(t *testing.T) {
	m := NewSwapMove(2, 3)
	opp := m.OppositeOf()
	assert.True(t, m.Equal(opp))
	assert.NotSame(t, m, opp)
}

// notAPermutation satisfies FeasibleSolution but not PermutationProblem.
type notAPermutation struct{}

func (notAPermutation) Cost() GolType                  { return 0 }
func (notAPermutation) CopyFrom(FeasibleSolution) error { return nil }

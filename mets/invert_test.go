package mets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvertMoveApplyEvaluateInvariant(t *testing.T) {
	sol := newTestSolution(7)
	m := NewInvertMove(2, 5)

	evaluated, err := m.Evaluate(sol)
	require.NoError(t, err)

	require.NoError(t, m.Apply(sol))
	assert.Equal(t, evaluated, sol.Cost())
	assert.True(t, isPermutation(sol.Pi))
}

func TestInvertMoveNonWrapping(t *testing.T) {
	sol := newTestSolution(5) // [0,1,2,3,4]
	require.NoError(t, NewInvertMove(1, 3).Apply(sol))
	assert.Equal(t, []int{0, 3, 2, 1, 4}, sol.Pi)
}

func TestInvertMoveWrapsWhenFromAfterTo(t *testing.T) {
	sol := newTestSolution(5) // [0,1,2,3,4]
	// from=3, to=1: circular run is positions {3,4,0,1}, values [3,4,0,1].
	require.NoError(t, NewInvertMove(3, 1).Apply(sol))
	assert.True(t, isPermutation(sol.Pi))
	// reversed run [1,0,4,3] written back into positions 3,4,0,1.
	assert.Equal(t, 1, sol.Pi[3])
	assert.Equal(t, 0, sol.Pi[4])
	assert.Equal(t, 4, sol.Pi[0])
	assert.Equal(t, 3, sol.Pi[1])
	assert.Equal(t, 2, sol.Pi[2]) // untouched
}

func TestInvertMoveIsInvolution(t *testing.T) {
	sol := newTestSolution(9)
	before := append([]int(nil), sol.Pi...)
	m := NewInvertMove(6, 2)

	require.NoError(t, m.Apply(sol))
	require.NoError(t, m.Apply(sol))
	assert.Equal(t, before, sol.Pi)
}

func TestInvertMoveDirectionMatters(t *testing.T) {
	a := NewInvertMove(2, 5)
	b := NewInvertMove(5, 2)
	assert.False(t, a.Equal(b))
}

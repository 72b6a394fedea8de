package flowshop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gomets/mets"
)

func TestSolutionCostMatchesEvaluator(t *testing.T) {
	inst, err := NewInstance(3, 2, []int{
		3, 2,
		1, 4,
		2, 2,
	})
	require.NoError(t, err)
	eval, err := NewEvaluator(inst)
	require.NoError(t, err)

	sol := NewSolution(eval)
	want, err := eval.Makespan(sol.Pi)
	require.NoError(t, err)
	assert.Equal(t, mets.GolType(want), sol.Cost())
}

func TestSolutionCopyFromRejectsIncompatibleKind(t *testing.T) {
	inst, _ := NewInstance(2, 1, []int{1, 1})
	eval, _ := NewEvaluator(inst)
	sol := NewSolution(eval)

	err := sol.CopyFrom(fakeSolution{})
	assert.ErrorIs(t, err, mets.ErrWrongSolutionKind)
}

func TestSolutionCopyFromIndependentAfterCopy(t *testing.T) {
	inst, _ := NewInstance(4, 2, []int{1, 2, 3, 4, 5, 6, 7, 8})
	eval, _ := NewEvaluator(inst)

	src := NewSolution(eval)
	src.Swap(0, 3)

	dst := NewSolution(eval)
	require.NoError(t, dst.CopyFrom(src))
	assert.Equal(t, src.Pi, dst.Pi)

	src.Swap(1, 2)
	assert.NotEqual(t, src.Pi, dst.Pi, "copy must be independent of further mutation of the source")
}

type fakeSolution struct{}

func (fakeSolution) Cost() mets.GolType                   { return 0 }
func (fakeSolution) CopyFrom(mets.FeasibleSolution) error { return nil }

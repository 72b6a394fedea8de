package flowshop

import (
	"fmt"

	"gomets/mets"
)

// Solution is the flow-shop permutation_problem: a job sequence evaluated
// against an Instance's makespan. It implements mets.FeasibleSolution and
// mets.PermutationProblem, so mets moves, move managers and recorders can
// operate on it directly.
//
// Cost recomputes the full makespan on every call rather than maintaining a
// delta — the evaluator has no cheap incremental form for an arbitrary
// swap/inversion, so Swap is not overridden and mets.SwapMove/InvertMove's
// apply-then-revert Evaluate is exact, if not maximally fast.
type Solution struct {
	*mets.Permutation
	eval *Evaluator
}

// NewSolution returns a Solution initialized to the identity permutation
// over eval's instance.
func NewSolution(eval *Evaluator) *Solution {
	return &Solution{
		Permutation: mets.NewPermutation(eval.inst.Jobs),
		eval:        eval,
	}
}

// Cost returns the makespan of the current job sequence.
func (s *Solution) Cost() mets.GolType {
	return mets.GolType(s.eval.MustMakespan(s.Pi))
}

// CopyFrom overwrites s's permutation from other, which must also be a
// *Solution over a compatibly-sized instance.
func (s *Solution) CopyFrom(other mets.FeasibleSolution) error {
	o, ok := other.(*Solution)
	if !ok {
		return fmt.Errorf("%w: flowshop.Solution.CopyFrom", mets.ErrWrongSolutionKind)
	}
	s.CopyPermFrom(o.Permutation)
	return nil
}

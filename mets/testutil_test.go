package mets

import "fmt"

// testSolution is a minimal PermutationProblem fixture for package tests:
// its cost is the sum of absolute displacement from the identity
// permutation, a cheap pure function of state with no hidden coupling to
// any particular problem domain.
type testSolution struct {
	*Permutation
}

func newTestSolution(n int) *testSolution {
	return &testSolution{Permutation: NewPermutation(n)}
}

func (s *testSolution) Cost() GolType {
	var total int
	for i, v := range s.Pi {
		d := v - i
		if d < 0 {
			d = -d
		}
		total += d
	}
	return GolType(total)
}

func (s *testSolution) CopyFrom(other FeasibleSolution) error {
	o, ok := other.(*testSolution)
	if !ok {
		return fmt.Errorf("%w: testSolution.CopyFrom", ErrWrongSolutionKind)
	}
	s.CopyPermFrom(o.Permutation)
	return nil
}

func isPermutation(perm []int) bool {
	n := len(perm)
	seen := make([]bool, n)
	for _, v := range perm {
		if v < 0 || v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

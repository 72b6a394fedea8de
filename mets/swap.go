package mets

import (
	"fmt"
	"io"
)

// SwapMove is a ManaMove that swaps two elements of a PermutationProblem.
// It is canonicalized at construction (p1 = min(from, to), p2 = max(from,
// to)) so that "swap i and j" is identified the same way regardless of
// argument order.
type SwapMove struct {
	p1, p2 int
}

// NewSwapMove returns a move that swaps from and to.
func NewSwapMove(from, to int) *SwapMove {
	m := &SwapMove{}
	m.Change(from, to)
	return m
}

// Change re-targets an existing SwapMove, re-canonicalizing p1/p2. Move
// managers that reuse slots across Refresh calls use this to avoid
// allocation churn.
func (m *SwapMove) Change(from, to int) {
	if from < to {
		m.p1, m.p2 = from, to
	} else {
		m.p1, m.p2 = to, from
	}
}

// Apply swaps p1 and p2 on sol, which must be a PermutationProblem.
func (m *SwapMove) Apply(sol FeasibleSolution) error {
	pp, ok := sol.(PermutationProblem)
	if !ok {
		return fmt.Errorf("%w: swap_elements requires a PermutationProblem", ErrWrongSolutionKind)
	}
	pp.Swap(m.p1, m.p2)
	return nil
}

// Evaluate computes the cost sol would have after Apply by applying,
// reading the cost, then applying again to undo — swap is its own
// inverse, so this is exact, not approximate.
func (m *SwapMove) Evaluate(sol FeasibleSolution) (GolType, error) {
	pp, ok := sol.(PermutationProblem)
	if !ok {
		return 0, fmt.Errorf("%w: swap_elements requires a PermutationProblem", ErrWrongSolutionKind)
	}
	pp.Swap(m.p1, m.p2)
	cost := pp.Cost()
	pp.Swap(m.p1, m.p2)
	return cost, nil
}

// Print writes a trace line describing the move.
func (m *SwapMove) Print(w io.Writer) { fmt.Fprintf(w, "swap_elements(%d, %d)\n", m.p1, m.p2) }

// Clone returns an independent copy of the move.
func (m *SwapMove) Clone() ManaMove {
	return &SwapMove{p1: m.p1, p2: m.p2}
}

// OppositeOf returns a clone: swapping the same pair again undoes the move,
// so the opposite of a swap is itself.
func (m *SwapMove) OppositeOf() ManaMove { return m.Clone() }

// Equal reports whether other is a SwapMove with the same canonical pair.
func (m *SwapMove) Equal(other ManaMove) bool {
	o, ok := other.(*SwapMove)
	if !ok {
		return false
	}
	return m.p1 == o.p1 && m.p2 == o.p2
}

// Hash combines the canonical pair into a single value. Equal moves always
// hash equal.
func (m *SwapMove) Hash() uint64 {
	return (uint64(uint32(m.p1)) << 16) ^ uint64(uint32(m.p2))
}

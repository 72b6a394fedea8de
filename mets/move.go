package mets

import "io"

// Move is a prospective, applicable transformation of a FeasibleSolution.
type Move interface {
	// Apply mutates sol in place.
	Apply(sol FeasibleSolution) error
	// Evaluate returns the cost sol would have after Apply, without
	// mutating sol. Concrete search strategies rely on Evaluate being
	// significantly cheaper than apply-then-cost-then-revert for
	// non-trivial problems; this is a performance contract, not a
	// correctness one.
	Evaluate(sol FeasibleSolution) (GolType, error)
	// Print writes a human-readable trace of the move to w.
	Print(w io.Writer)
}

// ManaMove is a Move that can additionally be remembered by a tabu list: it
// supports deep cloning, an opposite-move factory, structural equality and
// a stable hash.
type ManaMove interface {
	Move
	// Clone returns an independent copy of the move.
	Clone() ManaMove
	// OppositeOf returns a move that reverses this one. The default is to
	// return a clone; strategies that want to forbid undoing the last move
	// rely on an override producing a true inverse.
	OppositeOf() ManaMove
	// Equal reports whether other is the same move for tabu purposes.
	Equal(other ManaMove) bool
	// Hash is a stable hash consistent with Equal: a == b implies
	// hash(a) == hash(b).
	Hash() uint64
}

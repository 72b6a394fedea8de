// Package mets provides the reusable substrate for local-search
// metaheuristics over combinatorial problems: feasible/copyable solutions,
// moves, move managers (neighborhood generators), solution recorders and an
// observer-based abstract search driver.
//
// The package is a Go rendition of the classic metslib model: a concrete
// search strategy (tabu search, simulated annealing, ...) wires a working
// solution, a move manager and a solution recorder together and drives the
// loop itself; mets only supplies the shared contracts and a few concrete,
// reusable building blocks (swap/invert moves, a stochastic swap
// neighborhood, a best-ever recorder, a tabu list).
package mets

import "errors"

// GolType is the scalar cost type minimized by a search. It defaults to
// float64; problems whose cost is naturally integral (e.g. flow-shop
// makespan) may still implement Cost in terms of an int and convert at the
// boundary. Swapping the whole package to an integer cost is a one-line
// change to this alias.
type GolType = float64

// ErrNoMoves is raised by a concrete search strategy, not by mets itself,
// when a move manager publishes an empty neighborhood and no step is
// possible.
var ErrNoMoves = errors.New("mets: no more available moves")

// ErrWrongSolutionKind is returned by a move when it is offered a solution
// that does not implement the interface the move requires (e.g. a
// SwapMove offered a solution that is not a PermutationProblem). This is a
// contract violation: callers should treat it as a programmer error, not a
// recoverable search outcome.
var ErrWrongSolutionKind = errors.New("mets: move offered an incompatible solution kind")

// FeasibleSolution is any point in the search space, whether or not it
// satisfies problem-level constraints (penalties belong in Cost).
type FeasibleSolution interface {
	// Cost is the scalar objective to minimize. It must be a pure function
	// of the solution's state.
	Cost() GolType
	// CopyFrom overwrites the receiver's state from other. It must fail
	// only when other's dynamic kind is incompatible with the receiver's;
	// that is a contract violation, not a recoverable error.
	CopyFrom(other FeasibleSolution) error
}

// CopyableSolution is a FeasibleSolution whose CopyFrom is additionally
// guaranteed to be a cheap, independent snapshot: after CopyFrom returns,
// mutating the source must not affect the copy. BestEverRecorder requires
// this stronger guarantee for the buffer it tracks.
type CopyableSolution interface {
	FeasibleSolution
}

// NewSequence returns a generator function that, each time it is called,
// returns start, start+1, start+2, and so on. It mirrors metslib's sequence
// functor, useful for initializing an identity permutation.
func NewSequence(start int) func() int {
	value := start
	return func() int {
		v := value
		value++
		return v
	}
}

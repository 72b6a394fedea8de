package mets

import (
	"fmt"
	"math/rand"
)

// MoveManager generates and owns the current neighborhood: the set of moves
// applicable to the working solution at an iteration. Refresh is called by
// the search before scanning the neighborhood; a constant neighborhood
// implements Refresh as a no-op.
type MoveManager interface {
	// Refresh (re)populates the neighborhood against sol.
	Refresh(sol FeasibleSolution) error
	// Moves returns the current neighborhood, in iteration order. The
	// returned slice is owned by the manager and only valid until the next
	// Refresh.
	Moves() []Move
	// Size is len(Moves()); meaningful only after at least one Refresh.
	Size() int
}

// ConstantMoveManager is a MoveManager whose neighborhood is fixed at
// construction; Refresh is a no-op.
type ConstantMoveManager struct {
	moves []Move
}

// NewConstantMoveManager returns a MoveManager that always publishes moves,
// unchanged by Refresh.
func NewConstantMoveManager(moves []Move) *ConstantMoveManager {
	return &ConstantMoveManager{moves: moves}
}

// Refresh is a no-op: the neighborhood never changes.
func (c *ConstantMoveManager) Refresh(FeasibleSolution) error { return nil }

// Moves returns the fixed neighborhood.
func (c *ConstantMoveManager) Moves() []Move { return c.moves }

// Size returns the fixed neighborhood's length.
func (c *ConstantMoveManager) Size() int { return len(c.moves) }

// SwapNeighborhood is a stochastic MoveManager over SwapMove. Each Refresh
// resizes its move list to exactly m swaps, re-randomizing every slot's
// endpoints against the current solution's size; a solution with fewer than
// two elements gets an empty neighborhood instead. Slots are allocated once
// and mutated in place to avoid churn; the manager may produce duplicate
// moves across slots, which is accepted (callers needing distinct moves
// must dedupe).
type SwapNeighborhood struct {
	rng   *rand.Rand
	m     int
	moves []*SwapMove
	iface []Move
}

// NewSwapNeighborhood returns a stochastic swap neighborhood that publishes
// m moves per Refresh, drawn using rng.
func NewSwapNeighborhood(rng *rand.Rand, m int) *SwapNeighborhood {
	return &SwapNeighborhood{rng: rng, m: m}
}

// Refresh draws m fresh (p1, p2) pairs, p1 != p2, uniformly over
// [0, sol.Size()).
func (n *SwapNeighborhood) Refresh(sol FeasibleSolution) error {
	pp, ok := sol.(PermutationProblem)
	if !ok {
		return fmt.Errorf("%w: swap_neighborhood requires a PermutationProblem", ErrWrongSolutionKind)
	}
	size := pp.Size()
	if size < 2 {
		n.moves = nil
		n.iface = nil
		return nil
	}

	if len(n.moves) != n.m {
		n.moves = make([]*SwapMove, n.m)
		n.iface = make([]Move, n.m)
		for i := range n.moves {
			n.moves[i] = NewSwapMove(0, 1)
			n.iface[i] = n.moves[i]
		}
	}

	for _, mv := range n.moves {
		i := n.rng.Intn(size)
		j := n.rng.Intn(size - 1)
		if j >= i {
			j++
		}
		mv.Change(i, j)
	}
	return nil
}

// Moves returns the current neighborhood.
func (n *SwapNeighborhood) Moves() []Move { return n.iface }

// Size returns the current neighborhood's length (zero before the first
// Refresh).
func (n *SwapNeighborhood) Size() int { return len(n.iface) }

// InvertNeighborhood is a stochastic MoveManager over InvertMove, with the
// same refresh policy as SwapNeighborhood: m slots, reused across
// refreshes, each re-randomized to a pair of distinct positions.
type InvertNeighborhood struct {
	rng   *rand.Rand
	m     int
	moves []*InvertMove
	iface []Move
}

// NewInvertNeighborhood returns a stochastic inversion neighborhood that
// publishes m moves per Refresh, drawn using rng.
func NewInvertNeighborhood(rng *rand.Rand, m int) *InvertNeighborhood {
	return &InvertNeighborhood{rng: rng, m: m}
}

// Refresh draws m fresh (p1, p2) pairs, p1 != p2, uniformly over
// [0, sol.Size()).
func (n *InvertNeighborhood) Refresh(sol FeasibleSolution) error {
	pp, ok := sol.(PermutationProblem)
	if !ok {
		return fmt.Errorf("%w: invert_neighborhood requires a PermutationProblem", ErrWrongSolutionKind)
	}
	size := pp.Size()
	if size < 2 {
		n.moves = nil
		n.iface = nil
		return nil
	}

	if len(n.moves) != n.m {
		n.moves = make([]*InvertMove, n.m)
		n.iface = make([]Move, n.m)
		for i := range n.moves {
			n.moves[i] = NewInvertMove(0, 1)
			n.iface[i] = n.moves[i]
		}
	}

	for _, mv := range n.moves {
		i := n.rng.Intn(size)
		j := n.rng.Intn(size - 1)
		if j >= i {
			j++
		}
		mv.Change(i, j)
	}
	return nil
}

// Moves returns the current neighborhood.
func (n *InvertNeighborhood) Moves() []Move { return n.iface }

// Size returns the current neighborhood's length (zero before the first
// Refresh).
func (n *InvertNeighborhood) Size() int { return len(n.iface) }

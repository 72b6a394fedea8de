package mets

import "math/rand"

// PermutationProblem is a FeasibleSolution holding a permutation of
// [0, size()) that concrete moves (SwapMove, InvertMove) dispatch against.
// Problems that need delta cost book-keeping implement their own Swap
// (shadowing an embedded *Permutation's) rather than recomputing the whole
// cost function after every move.
type PermutationProblem interface {
	FeasibleSolution
	// Size returns n, the number of elements in the permutation.
	Size() int
	// Swap exchanges the elements at positions i and j. The default
	// (Permutation.Swap) just swaps; overriding it is the extension point
	// for delta-cost book-keeping.
	Swap(i, j int)
}

// Permutation is an embeddable skeleton for permutation problems. It holds
// Pi, a permutation of [0, len(Pi)), and implements the non-cost parts of
// PermutationProblem. Concrete problems embed *Permutation and implement
// Cost themselves.
type Permutation struct {
	Pi []int
}

// NewPermutation returns a Permutation initialized to the identity
// [0, 1, ..., n-1].
func NewPermutation(n int) *Permutation {
	p := &Permutation{Pi: make([]int, n)}
	next := NewSequence(0)
	for i := range p.Pi {
		p.Pi[i] = next()
	}
	return p
}

// Size returns the length of the permutation.
func (p *Permutation) Size() int { return len(p.Pi) }

// Swap exchanges the elements at positions i and j.
func (p *Permutation) Swap(i, j int) { p.Pi[i], p.Pi[j] = p.Pi[j], p.Pi[i] }

// Perm exposes the permutation for read-only use by cost functions.
func (p *Permutation) Perm() []int { return p.Pi }

// CopyPermFrom overwrites p's permutation from other's. Embedding problems
// should call this from their own CopyFrom after asserting the dynamic
// kind.
func (p *Permutation) CopyPermFrom(other *Permutation) {
	copy(p.Pi, other.Pi)
}

// RandomShuffle shuffles p's permutation in place using a Fisher-Yates pass
// over the raw Pi slice. Unlike Perturbate, this bypasses any Swap override
// an embedding problem may provide — it mirrors metslib's free-function
// random_shuffle, which manipulates the underlying vector directly rather
// than going through the virtual swap.
func RandomShuffle(p *Permutation, rng *rand.Rand) {
	n := len(p.Pi)
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		p.Pi[i], p.Pi[j] = p.Pi[j], p.Pi[i]
	}
}

// Perturbate performs n independent swaps on p, each drawn uniformly from
// [0, p.Size()) with the second index re-drawn until distinct from the
// first. Unlike RandomShuffle, every swap goes through p.Swap, so a problem
// overriding Swap for delta book-keeping observes each perturbation.
func Perturbate(p PermutationProblem, n int, rng *rand.Rand) {
	size := p.Size()
	if size < 2 {
		return
	}
	for k := 0; k < n; k++ {
		i := rng.Intn(size)
		j := rng.Intn(size)
		for j == i {
			j = rng.Intn(size)
		}
		p.Swap(i, j)
	}
}

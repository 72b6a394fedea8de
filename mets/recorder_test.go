package mets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type costOnlySolution struct {
	cost GolType
}

func (s *costOnlySolution) Cost() GolType { return s.cost }
func (s *costOnlySolution) CopyFrom(other FeasibleSolution) error {
	o, ok := other.(*costOnlySolution)
	if !ok {
		return ErrWrongSolutionKind
	}
	s.cost = o.cost
	return nil
}

func TestBestEverRecorderSequence(t *testing.T) {
	best := &costOnlySolution{}
	rec := NewBestEverRecorder(best)

	costs := []GolType{10.0, 12.0, 7.5, 7.5, 6.0}
	want := []bool{true, false, true, false, true}

	for i, c := range costs {
		got := rec.Accept(&costOnlySolution{cost: c})
		require.Equal(t, want[i], got, "accept #%d", i)
	}

	assert.Equal(t, GolType(6.0), rec.BestEver().Cost())
}

func TestBestEverRecorderFirstAcceptAlwaysWins(t *testing.T) {
	best := &costOnlySolution{}
	rec := NewBestEverRecorder(best)
	assert.True(t, rec.Accept(&costOnlySolution{cost: 1e9}))
}

type otherCostSolution struct{ cost GolType }

func (s *otherCostSolution) Cost() GolType                   { return s.cost }
func (s *otherCostSolution) CopyFrom(FeasibleSolution) error { return nil }

func TestBestEverRecorderReportsFalseWhenCopyFromFails(t *testing.T) {
	best := &costOnlySolution{}
	rec := NewBestEverRecorder(best)

	// A solution of an incompatible dynamic kind: CopyFrom rejects it, so
	// the recorder must not claim success or flip to initialized.
	got := rec.Accept(&otherCostSolution{cost: -100})
	assert.False(t, got)
	assert.False(t, rec.initialized)

	// A later, compatible solution must still be accepted as the first
	// real best.
	assert.True(t, rec.Accept(&costOnlySolution{cost: 5}))
	assert.Equal(t, GolType(5), rec.BestEver().Cost())
}

type alwaysTrueRecorder struct{ calls int }

func (r *alwaysTrueRecorder) Accept(FeasibleSolution) bool { r.calls++; return true }

type alwaysFalseRecorder struct{ calls int }

func (r *alwaysFalseRecorder) Accept(FeasibleSolution) bool { r.calls++; return false }

func TestRecorderChainAnyTrueWins(t *testing.T) {
	a := &alwaysFalseRecorder{}
	b := &alwaysTrueRecorder{}
	chain := RecorderChain{a, b}

	assert.True(t, chain.Accept(&costOnlySolution{cost: 1}))
	assert.Equal(t, 1, a.calls)
	assert.Equal(t, 1, b.calls)
}

func TestRecorderChainAllFalse(t *testing.T) {
	chain := RecorderChain{&alwaysFalseRecorder{}, &alwaysFalseRecorder{}}
	assert.False(t, chain.Accept(&costOnlySolution{cost: 1}))
}

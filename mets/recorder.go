package mets

// SolutionRecorder is a sink receiving Accept calls after each search
// iteration. Accept returns whether the offered solution was taken as a new
// best by the recorder.
type SolutionRecorder interface {
	Accept(sol FeasibleSolution) bool
}

// BestEverRecorder is a SolutionRecorder that keeps the best (lowest-cost)
// solution seen across its lifetime in a caller-owned CopyableSolution
// buffer. The very first Accept call always snapshots, equivalent to
// initializing the tracked cost to +Inf.
type BestEverRecorder struct {
	best        CopyableSolution
	initialized bool
}

// NewBestEverRecorder returns a recorder that snapshots into best.
func NewBestEverRecorder(best CopyableSolution) *BestEverRecorder {
	return &BestEverRecorder{best: best}
}

// Accept compares sol's cost to the current best; if strictly lower (or if
// this is the first call), it copies sol's state into the tracked buffer
// and returns true. If the copy itself fails (sol's dynamic kind doesn't
// match the tracked buffer's), the recorder has not actually taken sol as
// best, so it reports false and leaves initialized untouched rather than
// claiming success over a stale buffer.
func (r *BestEverRecorder) Accept(sol FeasibleSolution) bool {
	if !r.initialized || sol.Cost() < r.best.Cost() {
		if err := r.best.CopyFrom(sol); err != nil {
			return false
		}
		r.initialized = true
		return true
	}
	return false
}

// BestEver returns the best solution found since the recorder was created.
func (r *BestEverRecorder) BestEver() CopyableSolution { return r.best }

// RecorderChain composes SolutionRecorders as a chain of responsibility:
// every recorder in the chain is offered the solution, in order, and the
// chain as a whole reports an improvement if any member does.
type RecorderChain []SolutionRecorder

// Accept offers sol to every recorder in the chain and returns true if any
// of them accepted it.
func (c RecorderChain) Accept(sol FeasibleSolution) bool {
	improved := false
	for _, r := range c {
		if r.Accept(sol) {
			improved = true
		}
	}
	return improved
}

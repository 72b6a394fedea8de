package mets

// StepCode tags what happened in a search iteration, published for the
// benefit of attached listeners.
type StepCode int

const (
	// StepNone is the zero value, before any iteration has run.
	StepNone StepCode = iota
	// StepMoveMade means a move was applied this iteration.
	StepMoveMade
	// StepImprovementMade means the recorder reported an improvement this
	// iteration.
	StepImprovementMade
)

// String renders the step code for tracing/logging.
func (c StepCode) String() string {
	switch c {
	case StepMoveMade:
		return "move-made"
	case StepImprovementMade:
		return "improvement-made"
	default:
		return "none"
	}
}

// Search is the shared state of a concrete search strategy: a working
// solution, a recorder, a move manager, the currently selected move and the
// last published step code. It embeds Subject so concrete strategies expose
// observer attach/detach/notify for free.
//
// Search itself does not implement a loop: concrete strategies (tabu
// search, simulated annealing, ...) own selection policy, acceptance
// policy and termination, updating Step and calling Notify after each
// iteration.
type Search struct {
	Subject[*Search]

	Working     FeasibleSolution
	Recorder    SolutionRecorder
	Manager     MoveManager
	CurrentMove Move
	Step        StepCode
}

// NewSearch wires together the non-owning references a concrete strategy
// needs.
func NewSearch(working FeasibleSolution, recorder SolutionRecorder, manager MoveManager) *Search {
	return &Search{
		Working:  working,
		Recorder: recorder,
		Manager:  manager,
	}
}

// SearchListener is an Observer of a Search.
type SearchListener = Observer[*Search]

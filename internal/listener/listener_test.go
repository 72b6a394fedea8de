package listener

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	"gomets/mets"
)

type constCostSolution struct{ cost mets.GolType }

func (c constCostSolution) Cost() mets.GolType                   { return c.cost }
func (c constCostSolution) CopyFrom(mets.FeasibleSolution) error { return nil }

func TestCounterSplitsByStepCode(t *testing.T) {
	c := &Counter{}
	sol := constCostSolution{cost: 10}
	manager := mets.NewConstantMoveManager(nil)

	s := mets.NewSearch(sol, mets.NewBestEverRecorder(sol), manager)

	s.Step = mets.StepMoveMade
	c.Update(s)
	s.Step = mets.StepImprovementMade
	c.Update(s)
	c.Update(s)

	assert.Equal(t, 3, c.Total)
	assert.Equal(t, 1, c.Moves)
	assert.Equal(t, 2, c.Improvements)
}

func TestZapLoggerDoesNotPanicOnUpdate(t *testing.T) {
	log := zaptest.NewLogger(t)
	zl := NewZapLogger(log)

	sol := constCostSolution{cost: 5}
	s := mets.NewSearch(sol, mets.NewBestEverRecorder(sol), mets.NewConstantMoveManager(nil))

	s.Step = mets.StepMoveMade
	assert.NotPanics(t, func() { zl.Update(s) })

	s.Step = mets.StepImprovementMade
	assert.NotPanics(t, func() { zl.Update(s) })
}

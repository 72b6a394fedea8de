// Package listener provides concrete mets.SearchListener implementations
// that concrete strategies (internal/ts, internal/sa) can attach to their
// mets.Search to observe step notifications without coupling the search
// loop itself to counting or logging.
package listener

import (
	"go.uber.org/zap"

	"gomets/mets"
)

// Counter is a mets.SearchListener that counts Update calls, split by step
// code. Useful in tests and in benchmark reporting.
type Counter struct {
	Total        int
	Moves        int
	Improvements int
}

// Update implements mets.SearchListener.
func (c *Counter) Update(s *mets.Search) {
	c.Total++
	switch s.Step {
	case mets.StepImprovementMade:
		c.Improvements++
	case mets.StepMoveMade:
		c.Moves++
	}
}

// ZapLogger is a mets.SearchListener that logs each step through a
// structured zap.Logger. Improvements are logged at Info, plain moves at
// Debug, keeping a long run's log tolerable at the default level.
type ZapLogger struct {
	log  *zap.Logger
	iter int
}

// NewZapLogger returns a ZapLogger writing through log.
func NewZapLogger(log *zap.Logger) *ZapLogger {
	return &ZapLogger{log: log}
}

// Update implements mets.SearchListener.
func (z *ZapLogger) Update(s *mets.Search) {
	z.iter++
	fields := []zap.Field{
		zap.Int("iter", z.iter),
		zap.String("step", s.Step.String()),
		zap.Float64("cost", float64(s.Working.Cost())),
	}
	if s.Step == mets.StepImprovementMade {
		z.log.Info("search step", fields...)
		return
	}
	z.log.Debug("search step", fields...)
}

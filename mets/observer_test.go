package mets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type countingObserver struct {
	count int
}

func (o *countingObserver) Update(*Search) { o.count++ }

func TestNotifyFiresEveryAttachedObserverOnce(t *testing.T) {
	s := &Search{}
	a := &countingObserver{}
	b := &countingObserver{}
	s.Attach(a)
	s.Attach(b)

	for i := 0; i < 100; i++ {
		s.Notify(s)
	}

	assert.Equal(t, 100, a.count)
	assert.Equal(t, 100, b.count)
}

type attachingObserver struct {
	subject *Search
	newOne  *countingObserver
}

func (o *attachingObserver) Update(s *Search) {
	o.subject.Attach(o.newOne)
}

func TestReentrantAttachDuringNotifyIsQueuedToNextCycle(t *testing.T) {
	s := &Search{}
	fresh := &countingObserver{}
	attacher := &attachingObserver{subject: s, newOne: fresh}
	s.Attach(attacher)

	s.Notify(s) // attacher fires, queues `fresh`
	assert.Equal(t, 0, fresh.count, "queued observer must not fire during the cycle that attached it")

	s.Notify(s)
	assert.Equal(t, 1, fresh.count, "queued observer fires starting the next cycle")
}

func TestDetachDuringNotifyIsSafe(t *testing.T) {
	s := &Search{}
	a := &countingObserver{}
	b := &countingObserver{}
	detacher := detachFunc(func() { s.Detach(b) })
	s.Attach(a)
	s.Attach(detacher)
	s.Attach(b)

	assert.NotPanics(t, func() { s.Notify(s) })
}

type detachFunc func()

func (f detachFunc) Update(*Search) { f() }

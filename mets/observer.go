package mets

// Observer is notified synchronously whenever the Subject it is attached to
// calls Notify.
type Observer[T any] interface {
	Update(subject T)
}

// Subject holds a collection of non-owning observer back-references and
// fans out Notify calls to them in attachment order. Detach-during-Notify
// is safe (removing the current or a later observer does not panic, though
// it may shorten the scan for the in-progress cycle). Re-entrant Attach
// during Notify is queued to the next Notify cycle rather than observed
// immediately.
type Subject[T any] struct {
	observers []Observer[T]
	pending   []Observer[T]
	notifying bool
}

// Attach adds o to the set of observers notified by future Notify calls. If
// called from within Notify, o is queued and only receives updates starting
// with the next Notify cycle.
func (s *Subject[T]) Attach(o Observer[T]) {
	if s.notifying {
		s.pending = append(s.pending, o)
		return
	}
	s.observers = append(s.observers, o)
}

// Detach removes o from the set of observers, if present. Safe to call
// during Notify.
func (s *Subject[T]) Detach(o Observer[T]) {
	for i, existing := range s.observers {
		if existing == o {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

// Notify calls Update(subject) on every currently attached observer, in
// attachment order.
func (s *Subject[T]) Notify(subject T) {
	s.notifying = true
	for i := 0; i < len(s.observers); i++ {
		s.observers[i].Update(subject)
	}
	s.notifying = false

	if len(s.pending) > 0 {
		s.observers = append(s.observers, s.pending...)
		s.pending = nil
	}
}

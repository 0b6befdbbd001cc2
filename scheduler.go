package pixedit

import "sync"

// repaintScheduler coalesces repaint requests into at most one deferred
// recomposition. The paint callback reads layer pixels, so it must never
// overlap an in-progress edit: with an injected schedule func the host
// decides where fire runs, and without one the repaint stays pending
// until the host calls Flush from its own loop. paintMu additionally
// serializes recompositions when a schedule func fires from another
// goroutine.
type repaintScheduler struct {
	paint    func()
	schedule func(func()) // defers fn to the next frame; nil means flush-driven

	mu      sync.Mutex
	pending bool
	paintMu sync.Mutex
}

func newRepaintScheduler(schedule func(func()), paint func()) *repaintScheduler {
	return &repaintScheduler{
		paint:    paint,
		schedule: schedule,
	}
}

// Request schedules a deferred repaint. Calls made while one is already
// pending are no-ops, so arbitrarily many change notifications collapse
// into a single recomposition. Without a schedule func the request only
// marks the repaint pending; it runs at the next Flush.
func (s *repaintScheduler) Request() {
	s.mu.Lock()
	if s.pending {
		s.mu.Unlock()
		return
	}
	s.pending = true
	s.mu.Unlock()

	if s.schedule != nil {
		s.schedule(s.fire)
	}
}

// fire runs the pending repaint. If Flush already ran it, this is a no-op.
func (s *repaintScheduler) fire() {
	s.mu.Lock()
	if !s.pending {
		s.mu.Unlock()
		return
	}
	s.pending = false
	s.mu.Unlock()

	s.paintMu.Lock()
	s.paint()
	s.paintMu.Unlock()
}

// Flush runs any pending repaint immediately. Hosts without a schedule
// func call this once per frame; tests use it for determinism.
func (s *repaintScheduler) Flush() {
	s.fire()
}

// Pending reports whether a repaint is requested but not yet run.
func (s *repaintScheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

package wol

import (
	"fmt"
	"sync"
)

// Subsystem models a process-wide networking environment with
// reference-counted acquisition. Concurrent Acquire/Release calls are
// safe; Start runs on the first acquisition and Stop only after the
// last handle is released. Go itself needs no explicit network stack
// init, so the default subsystem carries no hooks, but keeping the
// counter behind this type lets the send pipeline be exercised in tests
// without touching real sockets.
type Subsystem struct {
	// Start, if set, runs when the reference count goes 0 -> 1. An
	// error aborts the acquisition and leaves the count at zero.
	Start func() error
	// Stop, if set, runs when the reference count returns to zero.
	Stop func()

	mu   sync.Mutex
	refs int
}

// Handle represents one acquisition of the subsystem. Release is
// idempotent.
type Handle struct {
	sub  *Subsystem
	once sync.Once
}

var defaultSubsystem = &Subsystem{}

// DefaultSubsystem returns the shared hook-free subsystem used by
// transmitters that were not given one.
func DefaultSubsystem() *Subsystem {
	return defaultSubsystem
}

// Acquire increments the reference count, initializing the subsystem
// first if this is the only holder.
func (s *Subsystem) Acquire() (*Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.refs == 0 && s.Start != nil {
		if err := s.Start(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSubsystemInit, err)
		}
	}
	s.refs++
	return &Handle{sub: s}, nil
}

// Refs reports the current number of outstanding handles.
func (s *Subsystem) Refs() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refs
}

// Release returns the handle. The subsystem shuts down only when the
// last outstanding handle is released.
func (h *Handle) Release() {
	h.once.Do(func() {
		s := h.sub
		s.mu.Lock()
		defer s.mu.Unlock()
		s.refs--
		if s.refs == 0 && s.Stop != nil {
			s.Stop()
		}
	})
}

// Package selection holds the date selection shared between sibling picker
// views. Views read and write it through the Model interface and learn about
// out-of-band changes through subscriptions.
package selection

import (
	"sync"
	"time"
)

// Model is the capability a picker view needs from a shared selection.
type Model interface {
	// First returns the first selected date, if any.
	First() (time.Time, bool)

	// Add records a date as selected and notifies subscribers.
	Add(t time.Time)

	// Clear drops the selection and notifies subscribers.
	Clear()

	// Subscribe registers a change callback and returns its cancel func.
	// Cancel is idempotent; after it returns the callback will not fire
	// again.
	Subscribe(fn func()) (cancel func())
}

// Single is a Model holding at most one selected date.
type Single struct {
	mu    sync.Mutex
	date  *time.Time
	subs  map[int]func()
	nextk int
}

// NewSingle constructs an empty single-date selection.
func NewSingle() *Single {
	return &Single{subs: make(map[int]func())}
}

// First returns the selected date, if any.
func (s *Single) First() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.date == nil {
		return time.Time{}, false
	}
	return *s.date, true
}

// Add replaces the selection and notifies subscribers.
func (s *Single) Add(t time.Time) {
	s.mu.Lock()
	s.date = &t
	fns := s.snapshot()
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// Clear drops the selection and notifies subscribers.
func (s *Single) Clear() {
	s.mu.Lock()
	s.date = nil
	fns := s.snapshot()
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// Subscribe registers fn for change notifications.
func (s *Single) Subscribe(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := s.nextk
	s.nextk++
	s.subs[key] = fn
	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, key)
		})
	}
}

// snapshot copies subscriber callbacks; callers must hold mu. Notifications
// run outside the lock so callbacks may re-enter the model.
func (s *Single) snapshot() []func() {
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	return fns
}

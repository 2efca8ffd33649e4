package mocks

import (
	"sync"
	"time"

	"github.com/mcoot/blockhive/internal/dependencies/scheduler"
)

// ScheduledCall is a callback waiting in a MockScheduler
type ScheduledCall struct {
	Handle scheduler.Handle
	Delay  time.Duration
	Fn     func()
}

// MockScheduler queues callbacks until the test fires them
type MockScheduler struct {
	mu        sync.Mutex
	next      scheduler.Handle
	pending   []ScheduledCall
	cancelled []scheduler.Handle
}

// Ensure MockScheduler implements Scheduler
var _ scheduler.Scheduler = (*MockScheduler)(nil)

// NewMockScheduler creates an empty MockScheduler
func NewMockScheduler() *MockScheduler {
	return &MockScheduler{}
}

// Schedule queues fn
func (s *MockScheduler) Schedule(d time.Duration, fn func()) scheduler.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	s.pending = append(s.pending, ScheduledCall{Handle: s.next, Delay: d, Fn: fn})
	return s.next
}

// Cancel removes a queued callback
func (s *MockScheduler) Cancel(h scheduler.Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.pending {
		if c.Handle == h {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			s.cancelled = append(s.cancelled, h)
			return
		}
	}
}

// Pending returns the queued callbacks in scheduling order
func (s *MockScheduler) Pending() []ScheduledCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]ScheduledCall, len(s.pending))
	copy(result, s.pending)
	return result
}

// Cancelled returns the handles removed by Cancel
func (s *MockScheduler) Cancelled() []scheduler.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]scheduler.Handle, len(s.cancelled))
	copy(result, s.cancelled)
	return result
}

// FireNext runs the oldest queued callback. Returns false if nothing was queued.
func (s *MockScheduler) FireNext() bool {
	s.mu.Lock()
	if len(s.pending) == 0 {
		s.mu.Unlock()
		return false
	}
	c := s.pending[0]
	s.pending = s.pending[1:]
	s.mu.Unlock()

	c.Fn()
	return true
}

// FireAll runs callbacks until the queue is empty, including ones queued by
// the callbacks themselves. Returns the number fired.
func (s *MockScheduler) FireAll() int {
	n := 0
	for s.FireNext() {
		n++
	}
	return n
}

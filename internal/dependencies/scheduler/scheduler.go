package scheduler

import (
	"sync"
	"time"
)

// Handle identifies a scheduled callback
type Handle uint64

// Scheduler runs callbacks after a delay and can cancel them
type Scheduler interface {
	// Schedule arranges for fn to run once after d
	Schedule(d time.Duration, fn func()) Handle

	// Cancel stops a pending callback. Cancelling a fired or unknown handle is a no-op.
	Cancel(h Handle)
}

// TimerScheduler implements Scheduler with time.AfterFunc
type TimerScheduler struct {
	mu     sync.Mutex
	next   Handle
	timers map[Handle]*time.Timer
}

// New creates a new TimerScheduler
func New() *TimerScheduler {
	return &TimerScheduler{
		timers: make(map[Handle]*time.Timer),
	}
}

// Schedule runs fn on its own goroutine after d
func (s *TimerScheduler) Schedule(d time.Duration, fn func()) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	h := s.next
	s.timers[h] = time.AfterFunc(d, func() {
		s.mu.Lock()
		delete(s.timers, h)
		s.mu.Unlock()
		fn()
	})
	return h
}

// Cancel stops the timer if it has not fired yet
func (s *TimerScheduler) Cancel(h Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[h]; ok {
		t.Stop()
		delete(s.timers, h)
	}
}

// Pending returns the number of timers that have not fired
func (s *TimerScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

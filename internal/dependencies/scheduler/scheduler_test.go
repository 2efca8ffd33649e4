package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type SchedulerSuite struct {
	suite.Suite
	scheduler *TimerScheduler
}

func TestSchedulerSuite(t *testing.T) {
	suite.Run(t, new(SchedulerSuite))
}

func (s *SchedulerSuite) SetupTest() {
	s.scheduler = New()
}

func (s *SchedulerSuite) TestScheduleFires() {
	var fired atomic.Bool
	s.scheduler.Schedule(5*time.Millisecond, func() { fired.Store(true) })

	s.Eventually(fired.Load, time.Second, 5*time.Millisecond)
	s.Eventually(func() bool { return s.scheduler.Pending() == 0 }, time.Second, 5*time.Millisecond)
}

func (s *SchedulerSuite) TestCancelPreventsFiring() {
	var fired atomic.Bool
	h := s.scheduler.Schedule(50*time.Millisecond, func() { fired.Store(true) })
	s.scheduler.Cancel(h)

	s.Equal(0, s.scheduler.Pending())
	s.Never(fired.Load, 150*time.Millisecond, 10*time.Millisecond)
}

func (s *SchedulerSuite) TestHandlesAreDistinct() {
	a := s.scheduler.Schedule(time.Hour, func() {})
	b := s.scheduler.Schedule(time.Hour, func() {})
	s.NotEqual(a, b)
	s.Equal(2, s.scheduler.Pending())

	s.scheduler.Cancel(a)
	s.scheduler.Cancel(b)
	s.scheduler.Cancel(b)
	s.Equal(0, s.scheduler.Pending())
}

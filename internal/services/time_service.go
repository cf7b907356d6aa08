package services

import (
	"time"

	"github.com/kyawhtet1234/GoalFlow/internal/domain"
)

// timeService implements TimeService using the system clock
type timeService struct{}

// NewTimeService creates a new time service
func NewTimeService() TimeService {
	return &timeService{}
}

func (s *timeService) Now() time.Time {
	return time.Now()
}

func (s *timeService) Today() time.Time {
	return domain.StartOfDay(time.Now())
}

func (s *timeService) IsSameDay(a, b time.Time) bool {
	return domain.SameDay(a, b)
}

func (s *timeService) IsToday(t time.Time) bool {
	return domain.SameDay(t, s.Now())
}

func (s *timeService) DayKey(t time.Time) string {
	return t.Format(domain.DayKeyFormat)
}

func (s *timeService) TodayKey() string {
	return s.DayKey(s.Now())
}

// fixedTimeService implements TimeService with a settable instant.
// Tests use it to pin "today" and to step across midnight.
type fixedTimeService struct {
	now time.Time
}

// NewFixedTimeService creates a time service frozen at the given instant.
func NewFixedTimeService(now time.Time) *fixedTimeService {
	return &fixedTimeService{now: now}
}

// SetNow moves the frozen clock to the given instant.
func (s *fixedTimeService) SetNow(now time.Time) {
	s.now = now
}

// Advance moves the frozen clock forward by d.
func (s *fixedTimeService) Advance(d time.Duration) {
	s.now = s.now.Add(d)
}

func (s *fixedTimeService) Now() time.Time {
	return s.now
}

func (s *fixedTimeService) Today() time.Time {
	return domain.StartOfDay(s.now)
}

func (s *fixedTimeService) IsSameDay(a, b time.Time) bool {
	return domain.SameDay(a, b)
}

func (s *fixedTimeService) IsToday(t time.Time) bool {
	return domain.SameDay(t, s.now)
}

func (s *fixedTimeService) DayKey(t time.Time) string {
	return t.Format(domain.DayKeyFormat)
}

func (s *fixedTimeService) TodayKey() string {
	return s.DayKey(s.now)
}

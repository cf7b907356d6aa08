package services

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/kyawhtet1234/GoalFlow/internal/domain"
	"github.com/kyawhtet1234/GoalFlow/internal/repository/sqlite"
	"github.com/kyawhtet1234/GoalFlow/internal/validation"
)

// salesGoalService implements SalesGoalService over the key-value record
// store. The goal is a bare JSON number under its own key; today's total
// is a record tagged with its calendar day and counts as zero the first
// time it is observed on a later day.
type salesGoalService struct {
	repository  sqlite.Repository
	mapper      *domain.SalesMapper
	timeService TimeService
	validator   *validation.SalesValidator
	logger      *logrus.Entry
	defaultGoal float64

	goal   float64
	sales  domain.DailySales
	loaded bool
}

// NewSalesGoalService creates a new sales goal service
func NewSalesGoalService(repository sqlite.Repository, timeService TimeService, logger *logrus.Logger, defaultGoal float64) SalesGoalService {
	return &salesGoalService{
		repository:  repository,
		mapper:      domain.NewSalesMapper(),
		timeService: timeService,
		validator:   validation.NewSalesValidator(),
		logger:      logger.WithField("component", "sales_service"),
		defaultGoal: defaultGoal,
	}
}

// Load reads the persisted goal and total into memory. A missing key, a
// storage failure or a decode failure all fall back to the defaults; the
// stale-day check happens afterwards on every access.
func (s *salesGoalService) Load(ctx context.Context) error {
	s.goal = s.defaultGoal
	if value, found, err := s.repository.Get(ctx, SalesGoalKey); err != nil {
		s.logger.WithError(err).Warn("failed to load sales goal, using default")
	} else if found {
		goal, err := strconv.ParseFloat(value, 64)
		if err != nil {
			s.logger.WithError(err).Warn("failed to decode sales goal, using default")
		} else {
			s.goal = goal
		}
	}

	s.sales = domain.DailySales{Amount: 0, Date: s.timeService.TodayKey()}
	if value, found, err := s.repository.Get(ctx, TodaysSalesKey); err != nil {
		s.logger.WithError(err).Warn("failed to load sales total, starting at zero")
	} else if found {
		var record domain.SalesRecord
		if err := json.Unmarshal([]byte(value), &record); err != nil {
			s.logger.WithError(err).Warn("failed to decode sales total, starting at zero")
		} else {
			s.sales = s.mapper.FromRecord(record)
		}
	}

	s.loaded = true
	s.ensureCurrentDay(ctx)
	return nil
}

// IsLoaded reports whether the persisted documents have been read.
func (s *salesGoalService) IsLoaded() bool {
	return s.loaded
}

func (s *salesGoalService) ensureLoaded(ctx context.Context) {
	if !s.loaded {
		_ = s.Load(ctx)
	}
}

// ensureCurrentDay zeroes the running total when its day tag is not the
// current calendar day. Checked on every access so the reset happens the
// first time the store is touched after midnight.
func (s *salesGoalService) ensureCurrentDay(ctx context.Context) {
	today := s.timeService.TodayKey()
	if s.sales.IsFor(today) {
		return
	}

	s.logger.WithFields(logrus.Fields{
		"stale_day":   s.sales.Date,
		"current_day": today,
	}).Debug("resetting sales total for new day")

	s.sales = s.sales.Reset(today)
	s.saveSales(ctx)
}

func (s *salesGoalService) saveSales(ctx context.Context) {
	data, err := json.Marshal(s.mapper.ToRecord(s.sales))
	if err != nil {
		s.logger.WithError(err).Error("failed to encode sales total")
		return
	}

	if err := s.repository.Put(ctx, TodaysSalesKey, string(data)); err != nil {
		s.logger.WithError(err).Warn("failed to persist sales total, keeping in-memory state")
	}
}

func (s *salesGoalService) saveGoal(ctx context.Context) {
	value := strconv.FormatFloat(s.goal, 'f', -1, 64)
	if err := s.repository.Put(ctx, SalesGoalKey, value); err != nil {
		s.logger.WithError(err).Warn("failed to persist sales goal, keeping in-memory state")
	}
}

// SetGoal replaces the daily goal. The running total is untouched.
func (s *salesGoalService) SetGoal(ctx context.Context, value float64) error {
	if err := s.validator.ValidateGoal(value); err != nil {
		return err
	}

	s.ensureLoaded(ctx)
	s.ensureCurrentDay(ctx)

	s.goal = value
	s.saveGoal(ctx)
	return nil
}

// AddSales accumulates an amount onto today's total and returns the
// updated record.
func (s *salesGoalService) AddSales(ctx context.Context, amount float64) (domain.DailySales, error) {
	if err := s.validator.ValidateAmount(amount); err != nil {
		return domain.DailySales{}, err
	}

	s.ensureLoaded(ctx)
	s.ensureCurrentDay(ctx)

	s.sales = s.sales.Add(amount, s.timeService.TodayKey())
	s.saveSales(ctx)

	s.logger.WithFields(logrus.Fields{
		"amount": amount,
		"total":  s.sales.Amount,
	}).Debug("sales recorded")

	return s.sales, nil
}

// Progress reports the goal, today's total and the percentage reached.
// The percentage is capped at 100.
func (s *salesGoalService) Progress(ctx context.Context) (*SalesProgress, error) {
	s.ensureLoaded(ctx)
	s.ensureCurrentDay(ctx)

	percent := 0.0
	if s.goal > 0 {
		percent = s.sales.Amount / s.goal * 100
		if percent > 100 {
			percent = 100
		}
	}

	return &SalesProgress{
		Goal:    s.goal,
		Total:   s.sales.Amount,
		Percent: percent,
	}, nil
}

package services

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kyawhtet1234/GoalFlow/internal/domain"
	apperrors "github.com/kyawhtet1234/GoalFlow/internal/errors"
	"github.com/kyawhtet1234/GoalFlow/internal/repository/sqlite"
	"github.com/kyawhtet1234/GoalFlow/internal/validation"
)

// taskService implements TaskService over the key-value record store.
// The in-memory slice is the source of truth for the session; every
// mutation rewrites the whole document and storage failures are logged
// without surfacing to the caller.
type taskService struct {
	repository  sqlite.Repository
	mapper      *domain.TaskMapper
	timeService TimeService
	idGenerator IDGenerator
	validator   *validation.TaskValidator
	logger      *logrus.Entry
	windowDays  int

	tasks  []domain.Task
	loaded bool
}

// NewTaskService creates a new task service
func NewTaskService(repository sqlite.Repository, timeService TimeService, idGenerator IDGenerator, logger *logrus.Logger, windowDays int) TaskService {
	return &taskService{
		repository:  repository,
		mapper:      domain.NewTaskMapper(),
		timeService: timeService,
		idGenerator: idGenerator,
		validator:   validation.NewTaskValidator(),
		logger:      logger.WithField("component", "task_service"),
		windowDays:  windowDays,
	}
}

// Load reads the persisted task document into memory. A missing key or a
// storage failure both leave the service with an empty collection; the
// failure is logged, never returned.
func (s *taskService) Load(ctx context.Context) error {
	value, found, err := s.repository.Get(ctx, TasksKey)
	if err != nil {
		s.logger.WithError(err).Warn("failed to load tasks, starting empty")
		s.tasks = nil
		s.loaded = true
		return nil
	}

	if !found {
		s.tasks = nil
		s.loaded = true
		return nil
	}

	var records []domain.TaskRecord
	if err := json.Unmarshal([]byte(value), &records); err != nil {
		s.logger.WithError(err).Warn("failed to decode tasks, starting empty")
		s.tasks = nil
		s.loaded = true
		return nil
	}

	s.tasks = s.mapper.FromRecordSlice(records)
	s.loaded = true
	return nil
}

// IsLoaded reports whether the persisted document has been read.
func (s *taskService) IsLoaded() bool {
	return s.loaded
}

func (s *taskService) ensureLoaded(ctx context.Context) {
	if !s.loaded {
		_ = s.Load(ctx)
	}
}

// save writes the whole collection back to storage. Best effort: a
// failure is logged and the in-memory state stays authoritative.
func (s *taskService) save(ctx context.Context) {
	records := s.mapper.ToRecordSlice(s.tasks)
	data, err := json.Marshal(records)
	if err != nil {
		s.logger.WithError(err).Error("failed to encode tasks")
		return
	}

	if err := s.repository.Put(ctx, TasksKey, string(data)); err != nil {
		s.logger.WithError(err).Warn("failed to persist tasks, keeping in-memory state")
	}
}

// CreateTask validates the input and appends either a single task or, for
// a recurring descriptor, one task per occurrence inside the expansion
// window. All instances of a batch share a fresh recurrence identifier and
// each carries its own day as its deadline.
func (s *taskService) CreateTask(ctx context.Context, description string, deadline *time.Time, categoryID string, recurrence domain.Recurrence) ([]domain.Task, error) {
	cleaned, err := s.validator.GetValidDescription(description)
	if err != nil {
		return nil, err
	}

	if err := s.validator.ValidateRecurrence(recurrence); err != nil {
		return nil, err
	}

	s.ensureLoaded(ctx)

	if !recurrence.IsRecurring() {
		task := domain.NewTask(s.idGenerator.NewID(), cleaned)
		task.Deadline = deadline
		task.CategoryID = categoryID

		s.tasks = append(s.tasks, task)
		s.save(ctx)

		s.logger.WithField("task_id", task.ID).Debug("task created")
		return []domain.Task{task}, nil
	}

	occurrences := domain.ExpandWindow(s.timeService.Today(), deadline, recurrence, s.windowDays)
	if len(occurrences) == 0 {
		return []domain.Task{}, nil
	}

	recurrenceID := s.idGenerator.NewID()
	created := make([]domain.Task, 0, len(occurrences))
	for _, day := range occurrences {
		day := day // each instance keeps its own deadline pointer
		task := domain.NewTask(s.idGenerator.NewID(), cleaned)
		task.Deadline = &day
		task.CategoryID = categoryID
		task.Recurrence = recurrence
		task.RecurrenceID = recurrenceID
		created = append(created, task)
	}

	s.tasks = append(s.tasks, created...)
	s.save(ctx)

	s.logger.WithFields(logrus.Fields{
		"recurrence_id": recurrenceID,
		"count":         len(created),
	}).Debug("recurring tasks created")

	return created, nil
}

// ToggleCompletion flips a task's completion state. Completing stamps the
// current instant; un-completing clears the stamp.
func (s *taskService) ToggleCompletion(ctx context.Context, id string) (*domain.Task, error) {
	if err := s.validator.ValidateTaskID(id); err != nil {
		return nil, err
	}

	s.ensureLoaded(ctx)

	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}

		if s.tasks[i].Completed {
			s.tasks[i].Completed = false
			s.tasks[i].CompletedAt = nil
		} else {
			now := s.timeService.Now()
			s.tasks[i].Completed = true
			s.tasks[i].CompletedAt = &now
		}

		s.save(ctx)

		task := s.tasks[i]
		return &task, nil
	}

	return nil, apperrors.NewNotFoundError("task", id)
}

// DeleteTask removes a single task by identifier.
func (s *taskService) DeleteTask(ctx context.Context, id string) error {
	if err := s.validator.ValidateTaskID(id); err != nil {
		return err
	}

	s.ensureLoaded(ctx)

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			s.save(ctx)
			return nil
		}
	}

	return apperrors.NewNotFoundError("task", id)
}

// DeleteBatch removes every task carrying the given recurrence identifier
// and returns how many were removed. An unknown identifier removes nothing
// and is not an error.
func (s *taskService) DeleteBatch(ctx context.Context, recurrenceID string) (int, error) {
	s.ensureLoaded(ctx)

	if recurrenceID == "" {
		return 0, nil
	}

	kept := s.tasks[:0:0]
	removed := 0
	for _, task := range s.tasks {
		if task.RecurrenceID == recurrenceID {
			removed++
			continue
		}
		kept = append(kept, task)
	}

	if removed == 0 {
		return 0, nil
	}

	s.tasks = kept
	s.save(ctx)

	s.logger.WithFields(logrus.Fields{
		"recurrence_id": recurrenceID,
		"count":         removed,
	}).Debug("recurring batch deleted")

	return removed, nil
}

// ClearCategory detaches every task from the given category and returns
// how many were touched. Tasks themselves are preserved.
func (s *taskService) ClearCategory(ctx context.Context, categoryID string) (int, error) {
	s.ensureLoaded(ctx)

	if categoryID == "" {
		return 0, nil
	}

	cleared := 0
	for i := range s.tasks {
		if s.tasks[i].CategoryID == categoryID {
			s.tasks[i].CategoryID = ""
			cleared++
		}
	}

	if cleared > 0 {
		s.save(ctx)
	}

	return cleared, nil
}

// GetTask returns a copy of the task with the given identifier.
func (s *taskService) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	if err := s.validator.ValidateTaskID(id); err != nil {
		return nil, err
	}

	s.ensureLoaded(ctx)

	for _, task := range s.tasks {
		if task.ID == id {
			task := task
			return &task, nil
		}
	}

	return nil, apperrors.NewNotFoundError("task", id)
}

// AllTasks returns a copy of every task in insertion order.
func (s *taskService) AllTasks(ctx context.Context) ([]domain.Task, error) {
	s.ensureLoaded(ctx)

	tasks := make([]domain.Task, len(s.tasks))
	copy(tasks, s.tasks)
	return tasks, nil
}

// PendingTasks returns incomplete tasks ordered by deadline ascending,
// with undated tasks after all dated ones. Ties keep insertion order.
func (s *taskService) PendingTasks(ctx context.Context) ([]domain.Task, error) {
	s.ensureLoaded(ctx)

	var pending []domain.Task
	for _, task := range s.tasks {
		if !task.Completed {
			pending = append(pending, task)
		}
	}

	sort.SliceStable(pending, func(i, j int) bool {
		a, b := pending[i].Deadline, pending[j].Deadline
		switch {
		case a == nil && b == nil:
			return false
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.Before(*b)
		}
	})

	return pending, nil
}

// CompletedToday returns tasks completed on the current calendar day.
func (s *taskService) CompletedToday(ctx context.Context) ([]domain.Task, error) {
	s.ensureLoaded(ctx)

	var completed []domain.Task
	for _, task := range s.tasks {
		if task.Completed && task.CompletedAt != nil && s.timeService.IsToday(*task.CompletedAt) {
			completed = append(completed, task)
		}
	}

	return completed, nil
}

// History groups completed tasks by completion day, newest day first,
// with the most recently completed task first inside each group. Today's
// completions are excluded: they belong to the completed-today view.
// Tasks completed without a timestamp are left out.
func (s *taskService) History(ctx context.Context) ([]HistoryGroup, error) {
	s.ensureLoaded(ctx)

	groups := make(map[string][]domain.Task)
	for _, task := range s.tasks {
		if !task.Completed || task.CompletedAt == nil {
			continue
		}
		if s.timeService.IsToday(*task.CompletedAt) {
			continue
		}
		key := s.timeService.DayKey(*task.CompletedAt)
		groups[key] = append(groups[key], task)
	}

	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	history := make([]HistoryGroup, 0, len(keys))
	for _, key := range keys {
		tasks := groups[key]
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].CompletedAt.After(*tasks[j].CompletedAt)
		})
		history = append(history, HistoryGroup{Date: key, Tasks: tasks})
	}

	return history, nil
}

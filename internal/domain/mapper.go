package domain

import (
	"time"
)

// TaskMapper handles conversion between domain Tasks and persisted records.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToRecord converts a domain Task to its persisted record.
func (m *TaskMapper) ToRecord(task Task) TaskRecord {
	return TaskRecord{
		ID:          task.ID,
		Description: task.Description,
		Deadline:    formatTimePtr(task.Deadline),
		Completed:   task.Completed,
		CategoryID:  emptyToNull(task.CategoryID),
		CompletedAt: formatTimePtr(task.CompletedAt),
		Recurrence: RecurrenceRecord{
			Type: string(task.Recurrence.Type),
			Days: weekdaysToInts(task.Recurrence.Days),
		},
		RecurrenceID: task.RecurrenceID,
	}
}

// FromRecord converts a persisted record to a domain Task. Malformed
// optional fields degrade to their absent value rather than failing the
// load of the whole collection.
func (m *TaskMapper) FromRecord(record TaskRecord) Task {
	return Task{
		ID:           record.ID,
		Description:  record.Description,
		Deadline:     parseTimePtr(record.Deadline),
		Completed:    record.Completed,
		CompletedAt:  parseTimePtr(record.CompletedAt),
		CategoryID:   nullToEmpty(record.CategoryID),
		Recurrence:   recurrenceFromRecord(record.Recurrence),
		RecurrenceID: record.RecurrenceID,
	}
}

// ToRecordSlice converts a slice of domain Tasks to persisted records.
func (m *TaskMapper) ToRecordSlice(tasks []Task) []TaskRecord {
	records := make([]TaskRecord, len(tasks))
	for i, task := range tasks {
		records[i] = m.ToRecord(task)
	}
	return records
}

// FromRecordSlice converts a slice of persisted records to domain Tasks.
func (m *TaskMapper) FromRecordSlice(records []TaskRecord) []Task {
	tasks := make([]Task, len(records))
	for i, record := range records {
		tasks[i] = m.FromRecord(record)
	}
	return tasks
}

// CategoryMapper handles conversion between domain Categories and persisted
// records.
type CategoryMapper struct{}

// NewCategoryMapper creates a new CategoryMapper instance.
func NewCategoryMapper() *CategoryMapper {
	return &CategoryMapper{}
}

// ToRecord converts a domain Category to its persisted record.
func (m *CategoryMapper) ToRecord(category Category) CategoryRecord {
	return CategoryRecord{
		ID:   category.ID,
		Name: category.Name,
	}
}

// FromRecord converts a persisted record to a domain Category.
func (m *CategoryMapper) FromRecord(record CategoryRecord) Category {
	return Category{
		ID:   record.ID,
		Name: record.Name,
	}
}

// ToRecordSlice converts a slice of domain Categories to persisted records.
func (m *CategoryMapper) ToRecordSlice(categories []Category) []CategoryRecord {
	records := make([]CategoryRecord, len(categories))
	for i, category := range categories {
		records[i] = m.ToRecord(category)
	}
	return records
}

// FromRecordSlice converts a slice of persisted records to domain Categories.
func (m *CategoryMapper) FromRecordSlice(records []CategoryRecord) []Category {
	categories := make([]Category, len(records))
	for i, record := range records {
		categories[i] = m.FromRecord(record)
	}
	return categories
}

// SalesMapper handles conversion between the domain sales total and its
// persisted record.
type SalesMapper struct{}

// NewSalesMapper creates a new SalesMapper instance.
func NewSalesMapper() *SalesMapper {
	return &SalesMapper{}
}

// ToRecord converts the domain sales total to its persisted record.
func (m *SalesMapper) ToRecord(sales DailySales) SalesRecord {
	return SalesRecord{
		Amount: sales.Amount,
		Date:   sales.Date,
	}
}

// FromRecord converts a persisted record to the domain sales total.
func (m *SalesMapper) FromRecord(record SalesRecord) DailySales {
	return DailySales{
		Amount: record.Amount,
		Date:   record.Date,
	}
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Task     *TaskMapper
	Category *CategoryMapper
	Sales    *SalesMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Task:     NewTaskMapper(),
		Category: NewCategoryMapper(),
		Sales:    NewSalesMapper(),
	}
}

func recurrenceFromRecord(record RecurrenceRecord) Recurrence {
	switch RecurrenceType(record.Type) {
	case RecurrenceDaily:
		return Recurrence{Type: RecurrenceDaily}
	case RecurrenceWeekly:
		return Recurrence{Type: RecurrenceWeekly, Days: intsToWeekdays(record.Days)}
	default:
		return Recurrence{Type: RecurrenceNone}
	}
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}

func parseTimePtr(s *string) *time.Time {
	if s == nil {
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil
	}
	return &parsed
}

func emptyToNull(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nullToEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func weekdaysToInts(days []time.Weekday) []int {
	if len(days) == 0 {
		return nil
	}
	ints := make([]int, len(days))
	for i, day := range days {
		ints[i] = int(day)
	}
	return ints
}

func intsToWeekdays(ints []int) []time.Weekday {
	if len(ints) == 0 {
		return nil
	}
	days := make([]time.Weekday, len(ints))
	for i, value := range ints {
		days[i] = time.Weekday(value)
	}
	return days
}

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTask(t *testing.T) {
	task := NewTask("task-1", "Buy milk")

	assert.Equal(t, "task-1", task.ID)
	assert.Equal(t, "Buy milk", task.Description)
	assert.False(t, task.Completed)
	assert.Nil(t, task.CompletedAt)
	assert.Nil(t, task.Deadline)
	assert.Equal(t, RecurrenceNone, task.Recurrence.Type)
	assert.False(t, task.IsRecurring())
}

func TestTask_IsRecurring(t *testing.T) {
	tests := []struct {
		name     string
		task     Task
		expected bool
	}{
		{
			name:     "task without recurrence id is not recurring",
			task:     NewTask("task-1", "One off"),
			expected: false,
		},
		{
			name:     "task with recurrence id is recurring",
			task:     Task{ID: "task-2", Description: "Standup", RecurrenceID: "batch-1"},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.task.IsRecurring())
		})
	}
}

func TestTask_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		task     Task
		expected bool
	}{
		{
			name:     "valid task",
			task:     Task{ID: "task-1", Description: "Valid"},
			expected: true,
		},
		{
			name:     "missing id",
			task:     Task{Description: "No id"},
			expected: false,
		},
		{
			name:     "missing description",
			task:     Task{ID: "task-1"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.task.IsValid())
		})
	}
}

func TestStartOfDay(t *testing.T) {
	input := time.Date(2024, 6, 2, 17, 45, 30, 123, time.UTC)

	result := StartOfDay(input)

	assert.Equal(t, time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), result)
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2024, 6, 2, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 6, 2, 23, 59, 0, 0, time.UTC)
	nextDay := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(morning, evening))
	assert.False(t, SameDay(evening, nextDay))
}

func TestCategory_IsValid(t *testing.T) {
	assert.True(t, NewCategory("gym", "Gym").IsValid())
	assert.False(t, Category{ID: "gym"}.IsValid())
	assert.False(t, Category{Name: "Gym"}.IsValid())
}

func TestDefaultCategories(t *testing.T) {
	categories := DefaultCategories()

	assert.Len(t, categories, 3)
	assert.Equal(t, "work", categories[0].ID)
	assert.Equal(t, "Personal", categories[1].Name)
}

func TestDailySales(t *testing.T) {
	sales := DailySales{Amount: 50, Date: "2024-06-02"}

	assert.True(t, sales.IsFor("2024-06-02"))
	assert.False(t, sales.IsFor("2024-06-03"))

	reset := sales.Reset("2024-06-03")
	assert.Equal(t, DailySales{Amount: 0, Date: "2024-06-03"}, reset)

	added := reset.Add(25, "2024-06-03")
	assert.Equal(t, DailySales{Amount: 25, Date: "2024-06-03"}, added)
}

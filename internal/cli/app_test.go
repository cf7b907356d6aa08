package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyawhtet1234/GoalFlow/internal/api"
	"github.com/kyawhtet1234/GoalFlow/internal/config"
	"github.com/kyawhtet1234/GoalFlow/internal/domain"
	"github.com/kyawhtet1234/GoalFlow/internal/logging"
	"github.com/kyawhtet1234/GoalFlow/internal/repository/sqlite"
	"github.com/kyawhtet1234/GoalFlow/internal/services"
)

// 2024-06-02 is a Sunday
var sunday = time.Date(2024, 6, 2, 10, 30, 0, 0, time.UTC)

// setupTestApp wires a full application over an in-memory store with a
// frozen clock and deterministic identifiers.
func setupTestApp(t *testing.T) *App {
	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	clock := services.NewFixedTimeService(sunday)
	ids := services.NewSequentialIDGenerator()
	logger := logging.NewTestLogger()

	container := &services.ServiceContainer{
		TimeService:      clock,
		TaskService:      services.NewTaskService(repo, clock, ids, logger, 7),
		CategoryService:  services.NewCategoryService(repo, ids, logger),
		SalesGoalService: services.NewSalesGoalService(repo, clock, logger, 1000),
	}

	businessAPI := api.NewBusinessAPIWithPicker(container, func(n int) int { return 0 })
	return NewApp(businessAPI, repo, config.NewConfig())
}

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name               string
		args               []string
		expectedPositional []string
		expectedOptions    map[string]string
	}{
		{
			name:               "positional only",
			args:               []string{"Buy", "groceries"},
			expectedPositional: []string{"Buy", "groceries"},
			expectedOptions:    map[string]string{},
		},
		{
			name:               "mixed positional and options",
			args:               []string{"Buy", "groceries", "due=2024-06-05", "category=work"},
			expectedPositional: []string{"Buy", "groceries"},
			expectedOptions:    map[string]string{"due": "2024-06-05", "category": "work"},
		},
		{
			name:               "option value containing equals",
			args:               []string{"repeat=weekly:mon,wed"},
			expectedPositional: nil,
			expectedOptions:    map[string]string{"repeat": "weekly:mon,wed"},
		},
		{
			name:               "bare equals stays positional",
			args:               []string{"=value"},
			expectedPositional: []string{"=value"},
			expectedOptions:    map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			positional, options := parseOptions(tt.args)
			assert.Equal(t, tt.expectedPositional, positional)
			assert.Equal(t, tt.expectedOptions, options)
		})
	}
}

func TestParseDayArg(t *testing.T) {
	original := timeNow
	timeNow = func() time.Time { return sunday }
	defer func() { timeNow = original }()

	tests := []struct {
		name        string
		value       string
		expected    time.Time
		expectError bool
	}{
		{
			name:     "explicit date",
			value:    "2024-06-05",
			expected: time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "today",
			value:    "today",
			expected: time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "tomorrow",
			value:    "tomorrow",
			expected: time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name:        "garbage",
			value:       "next tuesday",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, err := parseDayArg(tt.value)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.True(t, day.Equal(tt.expected))
			}
		})
	}
}

func TestParseWeekdays(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		expected    []time.Weekday
		expectError bool
	}{
		{
			name:     "short names",
			value:    "mon,wed",
			expected: []time.Weekday{time.Monday, time.Wednesday},
		},
		{
			name:     "long names with spacing",
			value:    "monday, Friday",
			expected: []time.Weekday{time.Monday, time.Friday},
		},
		{
			name:        "unknown day",
			value:       "mon,funday",
			expectError: true,
		},
		{
			name:        "empty list",
			value:       "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, err := parseWeekdays(tt.value)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, days)
			}
		})
	}
}

func TestParseRecurrenceOption(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		expected    domain.Recurrence
		expectError bool
	}{
		{
			name:     "daily",
			value:    "daily",
			expected: domain.Daily(),
		},
		{
			name:     "weekly with days",
			value:    "weekly:mon,wed",
			expected: domain.Weekly(time.Monday, time.Wednesday),
		},
		{
			name:        "weekly without days",
			value:       "weekly",
			expectError: true,
		},
		{
			name:        "unknown kind",
			value:       "fortnightly",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recurrence, err := parseRecurrenceOption(tt.value)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, recurrence)
			}
		})
	}
}

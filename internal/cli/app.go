package cli

import (
	"strings"
	"time"

	"github.com/kyawhtet1234/GoalFlow/internal/api"
	"github.com/kyawhtet1234/GoalFlow/internal/config"
	"github.com/kyawhtet1234/GoalFlow/internal/domain"
	"github.com/kyawhtet1234/GoalFlow/internal/errors"
	"github.com/kyawhtet1234/GoalFlow/internal/repository/sqlite"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App represents the main CLI application
type App struct {
	businessAPI api.BusinessAPI
	repository  sqlite.Repository
	config      *config.Config
	registry    *CommandRegistry
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(businessAPI api.BusinessAPI, repository sqlite.Repository, cfg *config.Config) *App {
	app := &App{
		businessAPI: businessAPI,
		repository:  repository,
		config:      cfg,
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// parseOptions splits key=value arguments from positional ones. Commands
// take free text first and options like "due=2024-06-05" after it.
func parseOptions(args []string) (positional []string, options map[string]string) {
	options = make(map[string]string)
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if found && key != "" {
			options[key] = value
			continue
		}
		positional = append(positional, arg)
	}
	return positional, options
}

// parseDayArg parses a calendar-day argument. Accepts "today", "tomorrow"
// and explicit "YYYY-MM-DD" dates.
func parseDayArg(value string) (time.Time, error) {
	switch strings.ToLower(value) {
	case "today":
		return domain.StartOfDay(timeNow()), nil
	case "tomorrow":
		return domain.StartOfDay(timeNow()).AddDate(0, 0, 1), nil
	}

	day, err := time.Parse(domain.DayKeyFormat, value)
	if err != nil {
		return time.Time{}, errors.NewInvalidInputError("due", value, "expected a date like 2024-06-05, today or tomorrow")
	}
	return day, nil
}

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday, "sunday": time.Sunday,
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
}

// parseWeekdays parses a comma-separated weekday list like "mon,wed,fri".
func parseWeekdays(value string) ([]time.Weekday, error) {
	parts := strings.Split(value, ",")
	days := make([]time.Weekday, 0, len(parts))
	for _, part := range parts {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		day, ok := weekdayNames[name]
		if !ok {
			return nil, errors.NewInvalidInputError("repeat", part, "unknown weekday, use names like mon or wednesday")
		}
		days = append(days, day)
	}
	if len(days) == 0 {
		return nil, errors.NewInvalidInputError("repeat", value, "weekly repeat needs at least one weekday")
	}
	return days, nil
}

// parseRecurrenceOption parses the repeat option: "daily" or
// "weekly:mon,wed".
func parseRecurrenceOption(value string) (domain.Recurrence, error) {
	kind, rest, _ := strings.Cut(value, ":")
	switch strings.ToLower(kind) {
	case "daily":
		return domain.Daily(), nil
	case "weekly":
		days, err := parseWeekdays(rest)
		if err != nil {
			return domain.Recurrence{}, err
		}
		return domain.Weekly(days...), nil
	default:
		return domain.Recurrence{}, errors.NewInvalidInputError("repeat", value, "expected daily or weekly:mon,wed")
	}
}

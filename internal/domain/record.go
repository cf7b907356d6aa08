package domain

// Persisted record shapes. These are the JSON documents written to the
// key-value store, kept field-compatible with the documents earlier
// releases stored, so an existing data file loads unchanged.

// TaskRecord is the persisted form of a Task. Optional fields serialize as
// JSON null; timestamps are RFC 3339 strings.
type TaskRecord struct {
	ID           string           `json:"id"`
	Description  string           `json:"description"`
	Deadline     *string          `json:"deadline"`
	Completed    bool             `json:"completed"`
	CategoryID   *string          `json:"categoryId"`
	CompletedAt  *string          `json:"completedAt"`
	Recurrence   RecurrenceRecord `json:"recurrence"`
	RecurrenceID string           `json:"recurrenceId,omitempty"`
}

// RecurrenceRecord is the persisted form of a Recurrence descriptor.
// Days holds weekday indexes, 0=Sunday through 6=Saturday.
type RecurrenceRecord struct {
	Type string `json:"type"`
	Days []int  `json:"days,omitempty"`
}

// CategoryRecord is the persisted form of a Category.
type CategoryRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SalesRecord is the persisted form of the day-scoped sales total.
type SalesRecord struct {
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
}

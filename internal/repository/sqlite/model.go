package sqlite

import "time"

// Record is one logical document in the key-value store. Value holds the
// JSON-encoded collection or scalar stored under Key.
type Record struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

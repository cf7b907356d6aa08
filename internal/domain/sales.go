package domain

// DayKeyFormat is the layout for calendar-day keys ("YYYY-MM-DD"). It tags
// the daily sales record and keys completion-history groups.
const DayKeyFormat = "2006-01-02"

// DailySales is the day-scoped running sales total. A record whose Date is
// not the current calendar day is stale and counts as zero.
type DailySales struct {
	Amount float64
	Date   string
}

// IsFor reports whether the record accumulated on the given day key.
func (s DailySales) IsFor(dayKey string) bool {
	return s.Date == dayKey
}

// Reset returns a zeroed record tagged with the given day key.
func (s DailySales) Reset(dayKey string) DailySales {
	return DailySales{Amount: 0, Date: dayKey}
}

// Add returns the record with amount accumulated onto it, retagged with the
// given day key.
func (s DailySales) Add(amount float64, dayKey string) DailySales {
	return DailySales{Amount: s.Amount + amount, Date: dayKey}
}

package core

import "time"

const (
	All   FilterMode = "all"
	Week  FilterMode = "week"
	Month FilterMode = "month"
)

// FilterMode selects the time window for derived views. It is pure view
// state and never persisted.
type FilterMode string

func (m FilterMode) IsValid() bool {
	switch m {
	case All, Week, Month:
		return true
	}
	return false
}

// WindowStart returns the inclusive lower date bound for the mode, or ""
// when the mode imposes no bound. Weeks start on Sunday; when today is a
// Sunday the window starts today.
func WindowStart(mode FilterMode, today time.Time) string {
	switch mode {
	case Week:
		return today.AddDate(0, 0, -int(today.Weekday())).Format(DateLayout)
	case Month:
		return time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location()).Format(DateLayout)
	default:
		return ""
	}
}

// Apply derives the subset of records inside the mode's window for the
// given reference day. The comparison is lexical on the YYYY-MM-DD form,
// which is only valid because the format is fixed-width and zero-padded.
// Input order is preserved.
func Apply(records []Expense, mode FilterMode, today time.Time) []Expense {
	start := WindowStart(mode, today)
	if start == "" {
		return records
	}
	out := make([]Expense, 0, len(records))
	for _, e := range records {
		if e.Date >= start {
			out = append(out, e)
		}
	}
	return out
}

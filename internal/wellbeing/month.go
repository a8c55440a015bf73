package wellbeing

import (
	"fmt"
	"time"
)

// Month identifies a calendar month being displayed.
type Month struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// MonthOf returns the month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// ParseMonth parses a YYYY-MM string.
func ParseMonth(value string) (Month, error) {
	parsed, err := time.Parse("2006-01", value)
	if err != nil {
		return Month{}, fmt.Errorf("parse month %q (expected YYYY-MM): %w", value, err)
	}
	return MonthOf(parsed), nil
}

// Prev returns the preceding month, wrapping January to December of the prior year.
func (m Month) Prev() Month {
	if m.Month <= time.January {
		return Month{Year: m.Year - 1, Month: time.December}
	}
	return Month{Year: m.Year, Month: m.Month - 1}
}

// Next returns the following month, wrapping December to January of the next year.
func (m Month) Next() Month {
	if m.Month >= time.December {
		return Month{Year: m.Year + 1, Month: time.January}
	}
	return Month{Year: m.Year, Month: m.Month + 1}
}

// Index is the zero-based month index (January = 0).
func (m Month) Index() int {
	return int(m.Month) - 1
}

// Days is the number of days in the month.
func (m Month) Days() int {
	return DaysIn(m.Year, m.Month)
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Title renders the month for headings, e.g. "November 2025".
func (m Month) Title() string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}

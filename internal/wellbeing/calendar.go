package wellbeing

import (
	"fmt"
	"math"
	"time"
)

// GridCells is the fixed size of a month grid: six Monday-first weeks.
const GridCells = 42

// Bucket is the color classification of a day's mood.
type Bucket int

const (
	BucketNone Bucket = iota
	BucketRed
	BucketYellow
	BucketGreen
)

func (b Bucket) String() string {
	switch b {
	case BucketRed:
		return "red"
	case BucketYellow:
		return "yellow"
	case BucketGreen:
		return "green"
	default:
		return "none"
	}
}

// MarshalText encodes the bucket by its String form.
func (b Bucket) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// BucketFor classifies a mood sample. Values outside 1..5 count as no sample.
func BucketFor(mood int) Bucket {
	switch {
	case mood == 1 || mood == 2:
		return BucketRed
	case mood == 3:
		return BucketYellow
	case mood == 4 || mood == 5:
		return BucketGreen
	default:
		return BucketNone
	}
}

// Cell is one slot of the month grid. Day is zero for padding cells and Mood
// is zero when the day has no sample.
type Cell struct {
	Day  int `json:"day,omitempty"`
	Mood int `json:"mood,omitempty"`
}

// Empty reports whether the cell is padding outside the month.
func (c Cell) Empty() bool {
	return c.Day == 0
}

// Bucket classifies the cell's mood.
func (c Cell) Bucket() Bucket {
	if c.Empty() {
		return BucketNone
	}
	return BucketFor(c.Mood)
}

// MonthGrid is the dense calendar for a single month.
type MonthGrid struct {
	Year        int             `json:"year"`
	Month       time.Month      `json:"month"`
	DaysInMonth int             `json:"days_in_month"`
	Offset      int             `json:"offset"`
	Cells       [GridCells]Cell `json:"cells"`
}

// Percentages is the share of the month's days in each color bucket. The four
// values always sum to 100.
type Percentages struct {
	Red    int `json:"red"`
	Yellow int `json:"yellow"`
	Green  int `json:"green"`
	None   int `json:"none"`
}

// DaysIn returns the number of days in month, computed as day zero of the
// following month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekdayOffset is the weekday of the first of the month with Monday = 0
// and Sunday = 6.
func FirstWeekdayOffset(year int, month time.Month) int {
	weekday := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()
	return (int(weekday) + 6) % 7
}

// DateKey builds the zero-padded YYYY-MM-DD key used to look up samples.
func DateKey(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// IndexMoods keys diary entries by date. Only the first ten characters of the
// date are used, so timestamps collapse onto their day. When the same day
// appears more than once the last entry wins.
func IndexMoods(entries []MoodEntry) map[string]int {
	index := make(map[string]int, len(entries))
	for _, entry := range entries {
		key := entry.Date
		if len(key) > 10 {
			key = key[:10]
		}
		index[key] = entry.Mood
	}
	return index
}

// BuildGrid lays the samples of a month onto a 42 cell Monday-first grid.
func BuildGrid(year int, month time.Month, samples map[string]int) MonthGrid {
	grid := MonthGrid{
		Year:        year,
		Month:       month,
		DaysInMonth: DaysIn(year, month),
		Offset:      FirstWeekdayOffset(year, month),
	}

	for i := range grid.Cells {
		day := i - grid.Offset + 1
		if day < 1 || day > grid.DaysInMonth {
			continue
		}
		grid.Cells[i] = Cell{
			Day:  day,
			Mood: samples[DateKey(year, month, day)],
		}
	}
	return grid
}

// BuildMonthGrid is BuildGrid for a Month and raw diary entries.
func BuildMonthGrid(m Month, entries []MoodEntry) MonthGrid {
	return BuildGrid(m.Year, m.Month, IndexMoods(entries))
}

// Weeks splits the grid into six rows of seven days.
func (g MonthGrid) Weeks() [6][7]Cell {
	var weeks [6][7]Cell
	for i, cell := range g.Cells {
		weeks[i/7][i%7] = cell
	}
	return weeks
}

// Counts returns how many days of the month fall into each bucket.
func (g MonthGrid) Counts() map[Bucket]int {
	counts := map[Bucket]int{}
	for _, cell := range g.Cells {
		if cell.Empty() {
			continue
		}
		counts[cell.Bucket()]++
	}
	return counts
}

// Percentages is BucketPercentages over the grid's own day count.
func (g MonthGrid) Percentages() Percentages {
	return BucketPercentages(g, g.DaysInMonth)
}

// BucketPercentages computes each color's share of daysInMonth. Padding cells
// are never counted. The rounding residual is absorbed by None, which is
// clamped at zero.
//
// A plain None clamp can leave the three rounded colors summing to 101 (for
// example 7/7/17 of 31 days rounds to 23/23/55). Here the excess is taken from
// the largest color instead, so that case yields 23/23/54 and the four values
// always sum to 100.
func BucketPercentages(grid MonthGrid, daysInMonth int) Percentages {
	if daysInMonth <= 0 {
		daysInMonth = 1
	}
	counts := grid.Counts()
	pct := func(count int) int {
		return int(math.Round(float64(count) / float64(daysInMonth) * 100))
	}

	result := Percentages{
		Red:    pct(counts[BucketRed]),
		Yellow: pct(counts[BucketYellow]),
		Green:  pct(counts[BucketGreen]),
	}
	result.None = max(0, 100-result.Red-result.Yellow-result.Green)
	if excess := result.Red + result.Yellow + result.Green - 100; excess > 0 {
		largest := &result.Red
		if result.Yellow > *largest {
			largest = &result.Yellow
		}
		if result.Green > *largest {
			largest = &result.Green
		}
		*largest -= excess
	}
	return result
}

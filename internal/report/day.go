package report

import (
	"errors"
	"time"

	"pos_sales/internal/sales"
)

// ErrInvalidReferenceDate is returned when a reference date is not a YYYY-MM-DD calendar day.
var ErrInvalidReferenceDate = errors.New("invalid reference date")

// Day is a timezone-naive calendar day. It is always held at UTC midnight so
// day arithmetic never crosses a daylight saving boundary.
type Day struct {
	t time.Time
}

// ParseDay parses a zero-padded YYYY-MM-DD string.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(sales.DateLayout, s)
	if err != nil {
		return Day{}, ErrInvalidReferenceDate
	}
	return Day{t: t}, nil
}

// String renders the day as YYYY-MM-DD.
func (d Day) String() string {
	return d.t.Format(sales.DateLayout)
}

// AddDays returns the day n calendar days later (earlier when n is negative).
func (d Day) AddDays(n int) Day {
	return Day{t: d.t.AddDate(0, 0, n)}
}

// Weekday returns the day of week, Sunday = 0.
func (d Day) Weekday() time.Weekday {
	return d.t.Weekday()
}

// YearMonth returns the YYYY-MM prefix of the day.
func (d Day) YearMonth() string {
	return d.String()[:7]
}

// WeekBounds returns the Monday and Sunday of the Monday-start week containing d.
func (d Day) WeekBounds() (monday, sunday Day) {
	offset := 1 - int(d.Weekday())
	if d.Weekday() == time.Sunday {
		offset = -6
	}
	monday = d.AddDays(offset)
	return monday, monday.AddDays(6)
}

// MonthBounds returns the first and last day of the month containing d.
func (d Day) MonthBounds() (first, last Day) {
	first = d.AddDays(1 - d.t.Day())
	return first, Day{t: first.t.AddDate(0, 1, -1)}
}

package report

import (
	"errors"
	"fmt"
	"strings"

	"pos_sales/internal/sales"
)

// ErrInvalidMode is returned for a period mode other than Daily, Weekly or Monthly.
var ErrInvalidMode = errors.New("invalid period mode")

// Mode selects the granularity of a period filter.
type Mode string

const (
	Daily   Mode = "Daily"
	Weekly  Mode = "Weekly"
	Monthly Mode = "Monthly"
)

// ParseMode accepts a mode name case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "daily":
		return Daily, nil
	case "weekly":
		return Weekly, nil
	case "monthly":
		return Monthly, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// Period is the inclusive date range a filter resolved to.
type Period struct {
	Mode      Mode   `json:"mode"`
	Reference string `json:"referenceDate"`
	Start     string `json:"start,omitempty"`
	End       string `json:"end,omitempty"`
}

// Resolve computes the inclusive [Start, End] range for mode around reference.
func Resolve(mode Mode, reference string) (Period, error) {
	p := Period{Mode: mode, Reference: reference}

	day, err := ParseDay(reference)
	if err != nil {
		return p, err
	}

	switch mode {
	case Daily:
		p.Start, p.End = day.String(), day.String()
	case Weekly:
		mon, sun := day.WeekBounds()
		p.Start, p.End = mon.String(), sun.String()
	case Monthly:
		first, last := day.MonthBounds()
		p.Start, p.End = first.String(), last.String()
	default:
		return p, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}
	return p, nil
}

// Contains reports whether date falls inside the period.
func (p Period) Contains(date string) bool {
	switch p.Mode {
	case Daily:
		return date == p.Start
	case Monthly:
		return len(date) >= 7 && date[:7] == p.Start[:7]
	default:
		return date >= p.Start && date <= p.End
	}
}

// Filter returns the transactions whose date falls in the period selected by
// mode and reference, in their original relative order. An unparseable
// reference or unknown mode yields an empty result together with the error.
func Filter(txs []sales.Transaction, mode Mode, reference string) ([]sales.Transaction, Period, error) {
	p, err := Resolve(mode, reference)
	if err != nil {
		return []sales.Transaction{}, p, err
	}

	out := make([]sales.Transaction, 0)
	for _, t := range txs {
		if p.Contains(t.Date) {
			out = append(out, t)
		}
	}
	return out, p, nil
}

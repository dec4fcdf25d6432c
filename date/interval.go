package date

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit is the time unit of a budget interval.
type Unit int

const (
	Days Unit = iota
	Monthly
	Quarterly
	Yearly
)

func (u Unit) String() string {
	switch u {
	case Days:
		return "days"
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case Yearly:
		return "yearly"
	default:
		panic(fmt.Sprintf("unknown unit %d", u))
	}
}

// suffix returns the compact one-letter form used on the command surface.
func (u Unit) suffix() string {
	switch u {
	case Days:
		return "d"
	case Monthly:
		return "m"
	case Quarterly:
		return "q"
	case Yearly:
		return "y"
	default:
		panic(fmt.Sprintf("unknown unit %d", u))
	}
}

// Interval is a budget period length: a span of units, e.g. "1m" or "14d".
type Interval struct {
	Unit Unit `json:"unit"`
	Span int  `json:"span"`
}

// OneMonth is the default interval when an allocation does not name one.
var OneMonth = Interval{Unit: Monthly, Span: 1}

// ParseInterval parses the compact suffix notation: digits followed by one of
// d, m, q or y. Any other trailing letter is a parse failure, not a silent
// default.
func ParseInterval(text string) (Interval, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	if len(text) < 2 {
		return Interval{}, fmt.Errorf("invalid interval %q: want digits followed by d, m, q or y", text)
	}

	var unit Unit
	switch text[len(text)-1] {
	case 'd':
		unit = Days
	case 'm':
		unit = Monthly
	case 'q':
		unit = Quarterly
	case 'y':
		unit = Yearly
	default:
		return Interval{}, fmt.Errorf("invalid interval %q: unknown unit %q", text, text[len(text)-1:])
	}

	span, err := strconv.Atoi(text[:len(text)-1])
	if err != nil {
		return Interval{}, fmt.Errorf("invalid interval %q: %w", text, err)
	}
	if span <= 0 {
		return Interval{}, fmt.Errorf("invalid interval %q: span must be positive", text)
	}
	return Interval{Unit: unit, Span: span}, nil
}

// String returns the compact notation, e.g. "1m".
func (i Interval) String() string { return strconv.Itoa(i.Span) + i.Unit.suffix() }

// Period is the recurring window over which a category's limit applies.
type Period struct {
	Start    Date     `json:"start"`
	Interval Interval `json:"interval"`
}

// End returns the first day after the period.
func (p Period) End() Date {
	switch p.Interval.Unit {
	case Days:
		return p.Start.Add(p.Interval.Span)
	case Monthly:
		return p.Start.AddMonths(p.Interval.Span)
	case Quarterly:
		return p.Start.AddMonths(3 * p.Interval.Span)
	case Yearly:
		return p.Start.AddYears(p.Interval.Span)
	default:
		panic(fmt.Sprintf("unknown unit %d", p.Interval.Unit))
	}
}

// TotalDays returns the length of the period in whole days. Never negative.
func (p Period) TotalDays() int { return p.End().Sub(p.Start) }

// RemainingDays returns the number of whole days between now and the end of
// the period. It goes negative once the period is overdue.
func (p Period) RemainingDays(now Date) int { return p.End().Sub(now) }

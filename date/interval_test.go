package date

import (
	"testing"
	"time"
)

func TestParseInterval(t *testing.T) {
	testCases := []struct {
		in      string
		want    Interval
		wantErr bool
	}{
		{in: "1m", want: Interval{Monthly, 1}},
		{in: "14d", want: Interval{Days, 14}},
		{in: "2q", want: Interval{Quarterly, 2}},
		{in: "1y", want: Interval{Yearly, 1}},
		{in: "3M", want: Interval{Monthly, 3}}, // surface is case-insensitive
		{in: "1w", wantErr: true},              // unknown unit is a failure, not Monthly
		{in: "m", wantErr: true},
		{in: "0m", wantErr: true},
		{in: "-1m", wantErr: true},
		{in: "xm", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range testCases {
		got, err := ParseInterval(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseInterval(%q) = %v, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseInterval(%q) returned error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseInterval(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestPeriod_End(t *testing.T) {
	start := New(2024, time.January, 15)

	testCases := []struct {
		name     string
		interval Interval
		want     Date
	}{
		{"days", Interval{Days, 10}, New(2024, time.January, 25)},
		{"monthly", Interval{Monthly, 1}, New(2024, time.February, 15)},
		{"two months", Interval{Monthly, 2}, New(2024, time.March, 15)},
		{"quarterly", Interval{Quarterly, 1}, New(2024, time.April, 15)},
		{"yearly", Interval{Yearly, 1}, New(2025, time.January, 15)},
	}

	for _, tc := range testCases {
		p := Period{Start: start, Interval: tc.interval}
		if got := p.End(); got != tc.want {
			t.Errorf("%s: End() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestPeriod_Days(t *testing.T) {
	p := Period{Start: New(2024, time.January, 1), Interval: Interval{Monthly, 1}}

	if got := p.TotalDays(); got != 31 {
		t.Errorf("TotalDays() = %d, want 31", got)
	}
	if got := p.RemainingDays(New(2024, time.January, 21)); got != 11 {
		t.Errorf("RemainingDays() = %d, want 11", got)
	}
	// overdue periods go negative
	if got := p.RemainingDays(New(2024, time.March, 1)); got != -29 {
		t.Errorf("RemainingDays() overdue = %d, want -29", got)
	}
}

package date

import (
	"slices"
	"testing"
	"time"
)

func TestPeriodRange(t *testing.T) {
	testCases := []struct {
		name   string
		period Period
		in     Date
		want   Range
	}{
		{"daily", Daily, New(2025, time.September, 8), Range{New(2025, time.September, 8), New(2025, time.September, 8)}},
		{"a wednesday", Weekly, New(2025, time.September, 10), Range{New(2025, time.September, 8), New(2025, time.September, 14)}},
		{"a sunday", Weekly, New(2025, time.September, 14), Range{New(2025, time.September, 8), New(2025, time.September, 14)}},
		{"leap february", Monthly, New(2024, time.February, 10), Range{New(2024, time.February, 1), New(2024, time.February, 29)}},
		{"third quarter", Quarterly, New(2025, time.August, 20), Range{New(2025, time.July, 1), New(2025, time.September, 30)}},
		{"year", Yearly, New(2025, time.August, 20), Range{New(2025, time.January, 1), New(2025, time.December, 31)}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.period.Range(tc.in); got != tc.want {
				t.Errorf("%v.Range(%v) = %v, want %v", tc.period, tc.in, got, tc.want)
			}
		})
	}
}

func TestRangeDays(t *testing.T) {
	r := NewRange(New(2024, 1, 30), New(2024, 2, 2))
	got := slices.Collect(r.Days())
	want := []Date{New(2024, 1, 30), New(2024, 1, 31), New(2024, 2, 1), New(2024, 2, 2)}
	if !slices.Equal(got, want) {
		t.Errorf("Days() = %v, want %v", got, want)
	}
	if r.Len() != 4 {
		t.Errorf("Len() = %d, want 4", r.Len())
	}
}

func TestRangeInverted(t *testing.T) {
	r := NewRange(New(2024, 1, 3), New(2024, 1, 1))
	if !r.IsEmpty() {
		t.Errorf("IsEmpty() = false, want true")
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}
	if n := len(slices.Collect(r.Days())); n != 0 {
		t.Errorf("Days() yielded %d days, want none", n)
	}
	if r.Contains(New(2024, 1, 2)) {
		t.Errorf("Contains(2024-01-02) = true on an empty range")
	}
}

func TestRangePeriods(t *testing.T) {
	r := NewRange(New(2024, 11, 15), New(2025, 1, 3))
	var got []string
	for m := range r.Periods(Monthly) {
		got = append(got, m.Identifier())
	}
	want := []string{"2024-11", "2024-12", "2025-01"}
	if !slices.Equal(got, want) {
		t.Errorf("Periods(Monthly) = %v, want %v", got, want)
	}
}

func TestIdentifier(t *testing.T) {
	tests := []struct {
		r    Range
		want string
	}{
		{Month(New(2025, 3, 14)), "2025-03"},
		{Quarterly.Range(New(2025, 5, 1)), "2025-Q2"},
		{Yearly.Range(New(2025, 5, 1)), "2025"},
		{NewRange(New(2025, 3, 2), New(2025, 3, 5)), "2025-03-02_2025-03-05"},
	}
	for _, tt := range tests {
		if got := tt.r.Identifier(); got != tt.want {
			t.Errorf("Identifier() = %q, want %q", got, tt.want)
		}
	}
}

func TestParsePeriod(t *testing.T) {
	for in, want := range map[string]Period{"month": Monthly, "Quarterly": Quarterly, "day": Daily} {
		got, err := ParsePeriod(in)
		if err != nil || got != want {
			t.Errorf("ParsePeriod(%q) = %v, %v want %v", in, got, err, want)
		}
	}
	if _, err := ParsePeriod("fortnight"); err == nil {
		t.Errorf("ParsePeriod(fortnight) succeeded, want an error")
	}
}

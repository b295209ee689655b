package dates

import (
	"testing"
	"time"
)

func TestInPeriod(t *testing.T) {
	cases := []struct {
		in    string
		month time.Month
		year  int
		want  bool
	}{
		{"2024-03-15", time.March, 2024, true},
		{"2024-03-15", time.April, 2024, false},
		{"2024-03-15", time.March, 2023, false},
		{"2024-03-31T23:10:00Z", time.March, 2024, true},
		{"2024-03-01 08:00", time.March, 2024, true},
		{"", time.March, 2024, false},
		{"not-a-date", time.March, 2024, false},
	}
	for _, tc := range cases {
		if got := InPeriod(tc.in, tc.month, tc.year); got != tc.want {
			t.Fatalf("InPeriod(%q, %v, %d) = %v, want %v", tc.in, tc.month, tc.year, got, tc.want)
		}
	}
}

func TestPeriodPrevious(t *testing.T) {
	p := Period{Month: time.January, Year: 2025}.Previous()
	if p.Month != time.December || p.Year != 2024 {
		t.Fatalf("expected December 2024, got %+v", p)
	}
	p = Period{Month: time.July, Year: 2025}.Previous()
	if p.Month != time.June || p.Year != 2025 {
		t.Fatalf("expected June 2025, got %+v", p)
	}
}

func TestFormat(t *testing.T) {
	d := time.Date(2025, time.February, 3, 22, 0, 0, 0, time.UTC)
	if got := Format(d); got != "2025-02-03" {
		t.Fatalf("unexpected format %q", got)
	}
}

package dates

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{name: "iso date", input: "2025-10-15", want: New(2025, time.October, 15)},
		{name: "iso date unpadded", input: "2025-1-5", want: New(2025, time.January, 5)},
		{name: "slash date is day first", input: "15/10/2025", want: New(2025, time.October, 15)},
		{name: "slash date unpadded", input: "5/1/2025", want: New(2025, time.January, 5)},
		{name: "datetime truncates to date", input: "2025-10-15T18:30:00", want: New(2025, time.October, 15)},
		{name: "datetime without seconds", input: "2025-10-15T18:30", want: New(2025, time.October, 15)},
		{name: "surrounding whitespace", input: "  2025-10-15  ", want: New(2025, time.October, 15)},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "next tuesday", wantErr: true},
		{name: "invalid month rejected", input: "10/32/2025", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := New(2025, time.March, 9)

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `"2025-03-09"` {
		t.Errorf("Marshal = %s, want \"2025-03-09\"", data)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}

func TestDateJSONAcceptsLegacyFormats(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"09/03/2025"`), &d); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if d != New(2025, time.March, 9) {
		t.Errorf("got %v, want 2025-03-09", d)
	}
}

func TestResolve(t *testing.T) {
	today := New(2025, time.October, 15) // a Wednesday

	tests := []struct {
		name      string
		period    Period
		wantStart Date
		wantEnd   Date
	}{
		{name: "daily", period: PeriodDaily, wantStart: today, wantEnd: today},
		{name: "weekly runs sunday to saturday", period: PeriodWeekly,
			wantStart: New(2025, time.October, 12), wantEnd: New(2025, time.October, 18)},
		{name: "monthly", period: PeriodMonthly,
			wantStart: New(2025, time.October, 1), wantEnd: New(2025, time.October, 31)},
		{name: "yearly", period: PeriodYearly,
			wantStart: New(2025, time.January, 1), wantEnd: New(2025, time.December, 31)},
		{name: "unknown defaults to monthly", period: Period("fortnightly"),
			wantStart: New(2025, time.October, 1), wantEnd: New(2025, time.October, 31)},
		{name: "empty defaults to monthly", period: Period(""),
			wantStart: New(2025, time.October, 1), wantEnd: New(2025, time.October, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.period, today, nil, nil)
			if got.Start != tt.wantStart || got.End != tt.wantEnd {
				t.Errorf("Resolve(%s) = [%v, %v], want [%v, %v]",
					tt.period, got.Start, got.End, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestResolveMonthlyHandlesShortMonths(t *testing.T) {
	got := Resolve(PeriodMonthly, New(2024, time.February, 10), nil, nil)
	if got.End != New(2024, time.February, 29) {
		t.Errorf("leap February end = %v, want 2024-02-29", got.End)
	}

	got = Resolve(PeriodMonthly, New(2025, time.February, 10), nil, nil)
	if got.End != New(2025, time.February, 28) {
		t.Errorf("February end = %v, want 2025-02-28", got.End)
	}
}

func TestResolveCustom(t *testing.T) {
	today := New(2025, time.October, 15)
	start := New(2025, time.September, 1)
	end := New(2025, time.September, 30)

	got := Resolve(PeriodCustom, today, &start, &end)
	if got.Start != start || got.End != end {
		t.Errorf("custom = [%v, %v], want [%v, %v]", got.Start, got.End, start, end)
	}

	// Missing bounds collapse to today.
	got = Resolve(PeriodCustom, today, &start, nil)
	if got.Start != start || got.End != today {
		t.Errorf("open-ended custom = [%v, %v], want [%v, %v]", got.Start, got.End, start, today)
	}
	got = Resolve(PeriodCustom, today, nil, nil)
	if got.Start != today || got.End != today {
		t.Errorf("unbounded custom = [%v, %v], want today only", got.Start, got.End)
	}
}

func TestRangeContains(t *testing.T) {
	r := Range{Start: New(2025, time.October, 1), End: New(2025, time.October, 31)}

	if !r.Contains(New(2025, time.October, 1)) {
		t.Error("start date should be inside the range")
	}
	if !r.Contains(New(2025, time.October, 31)) {
		t.Error("end date should be inside the range")
	}
	if r.Contains(New(2025, time.September, 30)) {
		t.Error("day before the range should be outside")
	}
	if r.Contains(New(2025, time.November, 1)) {
		t.Error("day after the range should be outside")
	}
}

func TestValidBudgetPeriod(t *testing.T) {
	for _, p := range []Period{PeriodWeekly, PeriodMonthly, PeriodYearly} {
		if !ValidBudgetPeriod(p) {
			t.Errorf("ValidBudgetPeriod(%s) = false, want true", p)
		}
	}
	for _, p := range []Period{PeriodDaily, PeriodCustom, Period("quarterly"), Period("")} {
		if ValidBudgetPeriod(p) {
			t.Errorf("ValidBudgetPeriod(%s) = true, want false", p)
		}
	}
}

func TestAddDaysNormalizes(t *testing.T) {
	if got := New(2025, time.October, 31).AddDays(1); got != New(2025, time.November, 1) {
		t.Errorf("AddDays over month boundary = %v, want 2025-11-01", got)
	}
	if got := New(2025, time.January, 1).AddDays(-1); got != New(2024, time.December, 31) {
		t.Errorf("AddDays over year boundary = %v, want 2024-12-31", got)
	}
}

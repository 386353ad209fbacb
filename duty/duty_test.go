package duty

import (
	"testing"
	"time"

	"github.com/orayew2002/rast-payroll/domain"
	"github.com/shopspring/decimal"
)

func ptr(s string) *string { return &s }

func TestParseClock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw    string
		want   string
		wantOK bool
	}{
		{raw: "09:15", want: "09:15", wantOK: true},
		{raw: "  18:00 ", want: "18:00", wantOK: true},
		{raw: "--:--"},
		{raw: " --:-- "},
		{raw: ""},
		{raw: "   "},
		{raw: "nan"},
	}

	for _, tt := range tests {
		got, ok := ParseClock(tt.raw)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParseClock(%q) = %q, %v; want %q, %v", tt.raw, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestHours(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in, out *string
		want    string
	}{
		{name: "whole hours", in: ptr("09:00"), out: ptr("18:00"), want: "09:00"},
		{name: "minutes truncated", in: ptr("09:10"), out: ptr("17:59"), want: "08:00"},
		{name: "under an hour", in: ptr("09:00"), out: ptr("09:45"), want: "00:00"},
		{name: "same time", in: ptr("10:00"), out: ptr("10:00"), want: "00:00"},
		{name: "overnight", in: ptr("22:00"), out: ptr("06:30"), want: "08:00"},
		{name: "overnight short", in: ptr("23:30"), out: ptr("00:15"), want: "00:00"},
		{name: "single digit hour", in: ptr("9:00"), out: ptr("13:30"), want: "04:00"},
		{name: "missing in", out: ptr("18:00"), want: "00:00"},
		{name: "missing out", in: ptr("09:00"), want: "00:00"},
		{name: "garbage", in: ptr("late"), out: ptr("18:00"), want: "00:00"},
		{name: "seconds not accepted", in: ptr("09:00:00"), out: ptr("18:00:00"), want: "00:00"},
	}

	for _, tt := range tests {
		if got := Hours(tt.in, tt.out); got != tt.want {
			t.Errorf("%s: Hours = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestHours_MinutesAlwaysZero(t *testing.T) {
	t.Parallel()

	base := time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC)
	for in := 0; in < 24*60; in += 37 {
		for out := in; out < 24*60; out += 53 {
			inS := base.Add(time.Duration(in) * time.Minute).Format("15:04")
			outS := base.Add(time.Duration(out) * time.Minute).Format("15:04")

			want := time.Duration((out-in)/60) * time.Hour
			got := Hours(&inS, &outS)
			if got != base.Add(want).Format("15:04") {
				t.Fatalf("Hours(%s, %s) = %s, want %02d:00", inS, outS, got, (out-in)/60)
			}
		}
	}
}

var (
	monday   = time.Date(2025, 7, 7, 0, 0, 0, 0, time.UTC)
	saturday = time.Date(2025, 7, 12, 0, 0, 0, 0, time.UTC)
	sunday   = time.Date(2025, 7, 13, 0, 0, 0, 0, time.UTC)
)

func TestStatusFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		hours string
		date  time.Time
		want  domain.Status
	}{
		{name: "sunday no hours", hours: "00:00", date: sunday, want: domain.StatusFullDay},
		{name: "sunday garbage", hours: "x", date: sunday, want: domain.StatusFullDay},
		{name: "saturday 300", hours: "05:00", date: saturday, want: domain.StatusFullDay},
		{name: "saturday 299", hours: "04:59", date: saturday, want: domain.StatusHalfDay},
		{name: "saturday 150", hours: "02:30", date: saturday, want: domain.StatusHalfDay},
		{name: "saturday 149", hours: "02:29", date: saturday, want: domain.StatusAbsent},
		{name: "saturday zero", hours: "00:00", date: saturday, want: domain.StatusAbsent},
		{name: "weekday 480", hours: "08:00", date: monday, want: domain.StatusFullDay},
		{name: "weekday 479", hours: "07:59", date: monday, want: domain.StatusHalfDay},
		{name: "weekday 241", hours: "04:01", date: monday, want: domain.StatusHalfDay},
		{name: "weekday 240", hours: "04:00", date: monday, want: domain.StatusAbsent},
		{name: "weekday zero", hours: "00:00", date: monday, want: domain.StatusAbsent},
		{name: "weekday unparsable", hours: "eight", date: monday, want: domain.StatusAbsent},
	}

	for _, tt := range tests {
		if got := StatusFor(tt.hours, tt.date); got != tt.want {
			t.Errorf("%s: StatusFor(%q) = %q, want %q", tt.name, tt.hours, got, tt.want)
		}
	}
}

func TestSalary(t *testing.T) {
	t.Parallel()

	daily := DailySalary(decimal.NewFromInt(31000), 31)
	if !daily.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("DailySalary = %s, want 1000", daily)
	}

	tests := []struct {
		status domain.Status
		want   decimal.Decimal
	}{
		{status: domain.StatusFullDay, want: decimal.NewFromInt(1000)},
		{status: domain.StatusWFH, want: decimal.NewFromInt(1000)},
		{status: domain.StatusHalfDay, want: decimal.NewFromInt(500)},
		{status: domain.StatusAbsent, want: decimal.Zero},
	}
	for _, tt := range tests {
		if got := Salary(tt.status, daily); !got.Equal(tt.want) {
			t.Errorf("Salary(%q) = %s, want %s", tt.status, got, tt.want)
		}
	}

	if got := DailySalary(decimal.NewFromInt(30000), 0); !got.IsZero() {
		t.Errorf("DailySalary with zero days = %s, want 0", got)
	}
}

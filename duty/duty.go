// Package duty turns clock-in/clock-out punches into duty hours, a daily
// attendance status and the pay earned for that day.
package duty

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/orayew2002/rast-payroll/domain"
	"github.com/shopspring/decimal"
)

// NoHours is the duty-hours value of a day without a usable punch pair.
const NoHours = "00:00"

const clockLayout = "15:04"

// placeholders are cell values the biometric exports use for a missing punch.
var placeholders = map[string]struct{}{
	"":      {},
	"--:--": {},
	"nan":   {},
}

// ParseClock returns the trimmed clock text of a punch cell, or false when the
// cell holds no punch.
func ParseClock(raw string) (string, bool) {
	v := strings.TrimSpace(raw)
	if _, missing := placeholders[v]; missing {
		return "", false
	}
	return v, true
}

// Hours returns the elapsed time between in and out as "HH:MM".
// An out time earlier than the in time is treated as a shift crossing
// midnight. Only whole hours are reported; the minutes field is always "00".
func Hours(in, out *string) string {
	if in == nil || out == nil {
		return NoHours
	}
	inAt, err := time.Parse(clockLayout, *in)
	if err != nil {
		return NoHours
	}
	outAt, err := time.Parse(clockLayout, *out)
	if err != nil {
		return NoHours
	}

	delta := outAt.Sub(inAt)
	if delta < 0 {
		delta += 24 * time.Hour
	}

	seconds := int(delta / time.Second)
	hours, rest := seconds/3600, seconds%3600
	minutes := rest / 3600
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

// Minimum minutes per status.
const (
	weekdayFull  = 8 * 60
	weekdayHalf  = 4 * 60 // exclusive
	saturdayFull = 5 * 60
	saturdayHalf = 150
)

// StatusFor classifies a day from its duty hours. Sundays are always paid
// in full; Saturdays use shorter thresholds than weekdays.
func StatusFor(hours string, date time.Time) domain.Status {
	if date.Weekday() == time.Sunday {
		return domain.StatusFullDay
	}
	if hours == NoHours {
		return domain.StatusAbsent
	}

	minutes, err := Minutes(hours)
	if err != nil {
		return domain.StatusAbsent
	}

	if date.Weekday() == time.Saturday {
		switch {
		case minutes >= saturdayFull:
			return domain.StatusFullDay
		case minutes >= saturdayHalf:
			return domain.StatusHalfDay
		default:
			return domain.StatusAbsent
		}
	}

	switch {
	case minutes >= weekdayFull:
		return domain.StatusFullDay
	case minutes > weekdayHalf:
		return domain.StatusHalfDay
	default:
		return domain.StatusAbsent
	}
}

// Minutes converts an "HH:MM" duration to total minutes.
func Minutes(hours string) (int, error) {
	h, m, ok := strings.Cut(hours, ":")
	if !ok {
		return 0, fmt.Errorf("duration %q: missing separator", hours)
	}
	hh, err := strconv.Atoi(h)
	if err != nil {
		return 0, fmt.Errorf("duration %q: hours: %w", hours, err)
	}
	mm, err := strconv.Atoi(m)
	if err != nil {
		return 0, fmt.Errorf("duration %q: minutes: %w", hours, err)
	}
	return hh*60 + mm, nil
}

// DailySalary prorates a monthly salary over the days of the calendar month.
func DailySalary(monthly decimal.Decimal, daysInMonth int) decimal.Decimal {
	if daysInMonth <= 0 {
		return decimal.Zero
	}
	return monthly.Div(decimal.NewFromInt(int64(daysInMonth)))
}

var two = decimal.NewFromInt(2)

// Salary is the pay for one day with the given status.
func Salary(status domain.Status, daily decimal.Decimal) decimal.Decimal {
	switch status {
	case domain.StatusFullDay, domain.StatusWFH:
		return daily
	case domain.StatusHalfDay:
		return daily.Div(two)
	default:
		return decimal.Zero
	}
}

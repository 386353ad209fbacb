package domain

import (
	"fmt"
	"time"
)

// Window is the processing period of one run: Start and End inclusive, both
// truncated to the calendar date. DaysInMonth is the length of the calendar
// month of Start and is the salary proration denominator, not End-Start.
type Window struct {
	Start       time.Time
	End         time.Time
	DaysInMonth int
}

// NewWindow builds a window from two dates in the same month.
func NewWindow(start, end time.Time) (Window, error) {
	start, end = DateOf(start), DateOf(end)
	if end.Before(start) {
		return Window{}, fmt.Errorf("%w: %s after %s", ErrInvalidWindow, start.Format(DateLayout), end.Format(DateLayout))
	}
	return Window{Start: start, End: end, DaysInMonth: MonthDays(start)}, nil
}

// MonthWindow spans the whole calendar month containing t.
func MonthWindow(t time.Time) Window {
	t = DateOf(t)
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	days := MonthDays(first)
	return Window{Start: first, End: first.AddDate(0, 0, days-1), DaysInMonth: days}
}

// Contains reports whether the calendar date of t lies within the window.
func (w Window) Contains(t time.Time) bool {
	d := DateOf(t)
	return !d.Before(w.Start) && !d.After(w.End)
}

// Dates lists every date of the window in order.
func (w Window) Dates() []time.Time {
	var dates []time.Time
	for d := w.Start; !d.After(w.End); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// MonthLabel renders the window month as MM/YYYY.
func (w Window) MonthLabel() string {
	return w.Start.Format("01/2006")
}

// MonthDays returns the number of days in the calendar month of t.
func MonthDays(t time.Time) int {
	first := time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 0, -1).Day()
}

// DateOf drops the clock part of t, keeping its calendar date in UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

package processor

import (
	"strings"
	"time"

	"github.com/orayew2002/rast-payroll/domain"
	"github.com/orayew2002/rast-payroll/excel"
	"github.com/orayew2002/rast-payroll/layout"
)

const (
	reportMonthCol   = 8
	reportMonthLabel = "Report Month"
	rangeRow         = 3
)

// DetectMonth finds the reporting month printed in an export header: either a
// "Report Month : July-2025" cell or a "01-07-2025 To 31-07-2025" range on the
// fourth row. The result is the first day of that month.
func DetectMonth(rows excel.Rows) (time.Time, bool) {
	for i := range rows {
		cell := rows.Cell(i, reportMonthCol)
		if !strings.Contains(cell, reportMonthLabel) {
			continue
		}
		parts := strings.Split(cell, ":")
		label := strings.TrimSpace(parts[len(parts)-1])
		for _, l := range []string{"January-2006", "Jan-2006", "January 2006"} {
			if t, err := time.Parse(l, label); err == nil {
				return monthStart(t), true
			}
		}
	}

	for col := range rows.Width(rangeRow) {
		cell := rows.Cell(rangeRow, col)
		from, _, ok := strings.Cut(cell, " To ")
		if !ok {
			continue
		}
		if t, ok := ParseDate(strings.TrimSpace(from)); ok {
			return monthStart(t), true
		}
	}

	return time.Time{}, false
}

// LatestDate returns the newest attendance date found in any employee block.
func LatestDate(rows excel.Rows, format layout.Format) (time.Time, bool) {
	blocks, err := layout.Segment(rows, format)
	if err != nil {
		return time.Time{}, false
	}

	var latest time.Time
	for _, block := range blocks {
		cols, err := layout.ResolveColumns(rows, block.HeaderRow, format)
		if err != nil {
			continue
		}
		for r := block.Start; r < block.End; r++ {
			if d, ok := ParseDate(rows.Cell(r, cols.Date)); ok && d.After(latest) {
				latest = d
			}
		}
	}
	return latest, !latest.IsZero()
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// DeriveWindow picks the processing window from the uploads themselves: the
// newest month that any export prints or holds attendance for, ending at the
// newest attendance date found. Upload order does not matter. With nothing
// readable at all, the month of now is used. Unreadable uploads are ignored
// here and reported by Run.
func DeriveWindow(uploads []Upload, now time.Time) domain.Window {
	var month, latest time.Time
	for _, up := range uploads {
		rows, err := excel.ReadRows(up.Data, up.Name)
		if err != nil {
			continue
		}
		if m, ok := DetectMonth(rows); ok && m.After(month) {
			month = m
		}
		if d, ok := LatestDate(rows, up.Format); ok && d.After(latest) {
			latest = d
		}
	}

	if !latest.IsZero() && monthStart(latest).After(month) {
		month = monthStart(latest)
	}
	if month.IsZero() {
		return domain.MonthWindow(now)
	}

	w := domain.MonthWindow(month)
	if !latest.IsZero() && w.Contains(latest) {
		w.End = domain.DateOf(latest)
	}
	return w
}

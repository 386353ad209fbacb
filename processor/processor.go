package processor

import (
	"fmt"
	"time"

	"github.com/orayew2002/rast-payroll/domain"
	"github.com/orayew2002/rast-payroll/duty"
	"github.com/orayew2002/rast-payroll/excel"
	"github.com/orayew2002/rast-payroll/layout"
	"github.com/shopspring/decimal"
)

// Upload is one attendance export as received from the operator.
type Upload struct {
	Name   string // original file name; ".xls" selects the legacy reader
	Format layout.Format
	Data   []byte
}

// Processor extracts attendance for the employees of a roster within one window.
type Processor struct {
	roster *domain.Roster
	window domain.Window
}

// New creates a Processor. The roster is only read.
func New(roster *domain.Roster, window domain.Window) *Processor {
	return &Processor{roster: roster, window: window}
}

// ProcessBytes reads the first sheet of an upload and merges its attendance into book.
// A returned error means nothing from the upload was merged; warnings report
// employee blocks that were skipped.
func (p *Processor) ProcessBytes(book *domain.Book, up Upload) ([]Warning, error) {
	rows, err := excel.ReadRows(up.Data, up.Name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", up.Name, err)
	}

	return p.ProcessRows(book, rows, up.Format, up.Name)
}

// ProcessRows merges the attendance held in rows into book. Records for the
// same employee and date overwrite earlier ones.
func (p *Processor) ProcessRows(book *domain.Book, rows excel.Rows, format layout.Format, file string) ([]Warning, error) {
	blocks, err := layout.Segment(rows, format)
	if err != nil {
		return nil, fmt.Errorf("segment %s: %w", file, err)
	}

	var warnings []Warning
	for _, block := range blocks {
		emp, ok := p.roster.ByName(block.Name)
		if !ok {
			continue
		}
		att := book.Entry(emp.ID, emp.Name)

		cols, err := layout.ResolveColumns(rows, block.HeaderRow, format)
		if err != nil {
			warnings = append(warnings, Warning{File: file, Employee: emp.Name, Err: err})
			continue
		}

		daily := duty.DailySalary(emp.MonthlySalary, p.window.DaysInMonth)
		for r := block.Start; r < block.End; r++ {
			date, ok := ParseDate(rows.Cell(r, cols.Date))
			if !ok || !p.window.Contains(date) {
				continue
			}
			att.Put(date.Format(domain.DateLayout), dayRecord(rows, r, cols, date, daily))
		}
	}

	return warnings, nil
}

func dayRecord(rows excel.Rows, r int, cols layout.Columns, date time.Time, daily decimal.Decimal) domain.DayRecord {
	rec := domain.DayRecord{
		TotalHours: duty.NoHours,
		Day:        date.Weekday().String(),
	}

	if date.Weekday() == time.Sunday {
		rec.Status = domain.StatusFullDay
		rec.Salary = duty.Salary(rec.Status, daily)
		return rec
	}

	if in, ok := duty.ParseClock(clockText(rows.Cell(r, cols.In))); ok {
		rec.InTime = &in
	}
	if out, ok := duty.ParseClock(clockText(rows.Cell(r, cols.Out))); ok {
		rec.OutTime = &out
	}
	rec.TotalHours = duty.Hours(rec.InTime, rec.OutTime)
	rec.Status = duty.StatusFor(rec.TotalHours, date)
	rec.Salary = duty.Salary(rec.Status, daily)
	return rec
}

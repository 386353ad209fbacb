// Package report renders the attendance book as downloadable spreadsheets:
// the attendance ledger and the bank bulk-payment file.
package report

import (
	"fmt"

	"github.com/orayew2002/rast-payroll/domain"
	"github.com/orayew2002/rast-payroll/excel"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// LedgerFilename is the download name of the attendance ledger.
const LedgerFilename = "attendance_report.xlsx"

const sheetName = "Sheet1"

// ledgerHeaders defines the column layout of the attendance ledger.
var ledgerHeaders = []string{
	"Employee ID", "Employee Name", "Date", "Day", "In Time", "Out Time",
	"Total Hours", "Status", "Salary", "Remark", "Total Salary",
}

var ledgerWidths = []float64{13, 28, 12, 12, 9, 9, 11, 10, 12, 30, 14}

const (
	colStatus      = 7
	colSalary      = 8
	colTotalSalary = 10
)

// LedgerBytes builds the attendance ledger: one row per day record of every
// employee, dates ascending, followed by a row carrying the employee's total.
func LedgerBytes(book *domain.Book) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeLedger(f, book); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write to buffer: %w", err)
	}
	return buf.Bytes(), nil
}

// SaveLedger writes the attendance ledger to path.
func SaveLedger(book *domain.Book, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeLedger(f, book); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func writeLedger(f *excelize.File, book *domain.Book) error {
	sm := newStyleManager(f)

	if err := writeHeaders(f, sm, ledgerHeaders); err != nil {
		return fmt.Errorf("write headers: %w", err)
	}

	row := 1
	for _, id := range book.IDs() {
		att := book.Employees[id]
		for _, date := range att.Dates() {
			if err := writeDayRow(f, sm, row, id, att.Name, date, att.Days[date]); err != nil {
				return fmt.Errorf("employee %s, %s: %w", id, date, err)
			}
			row++
		}
		if err := writeTotalRow(f, sm, row, id, att); err != nil {
			return fmt.Errorf("employee %s total: %w", id, err)
		}
		row++
	}

	if err := setWidths(f, ledgerWidths); err != nil {
		return fmt.Errorf("set widths: %w", err)
	}
	return nil
}

func writeDayRow(f *excelize.File, sm *styleManager, row int, id, name, date string, rec *domain.DayRecord) error {
	values := []string{
		id, name, date, rec.Day, deref(rec.InTime), deref(rec.OutTime),
		rec.TotalHours, string(rec.Status), "", rec.Remark, "",
	}
	if err := setRow(f, row, values); err != nil {
		return err
	}

	if err := setMoney(f, sm.money, row, colSalary, rec.Salary); err != nil {
		return err
	}

	styleID, err := sm.status(rec.Status)
	if err != nil {
		return err
	}
	cell := excel.CellName(row, colStatus)
	return f.SetCellStyle(sheetName, cell, cell, styleID)
}

func writeTotalRow(f *excelize.File, sm *styleManager, row int, id string, att *domain.EmployeeAttendance) error {
	if err := setRow(f, row, []string{id, att.Name}); err != nil {
		return err
	}
	return setMoney(f, sm.total, row, colTotalSalary, att.TotalSalary)
}

func writeHeaders(f *excelize.File, sm *styleManager, headers []string) error {
	style, err := sm.header()
	if err != nil {
		return err
	}
	if err := setRow(f, 0, headers); err != nil {
		return err
	}
	first, last := excel.CellName(0, 0), excel.CellName(0, len(headers)-1)
	return f.SetCellStyle(sheetName, first, last, style)
}

// setRow writes non-empty values as text cells starting at column A.
func setRow(f *excelize.File, row int, values []string) error {
	for col, val := range values {
		if val == "" {
			continue
		}
		cell := excel.CellName(row, col)
		if err := f.SetCellStr(sheetName, cell, val); err != nil {
			return fmt.Errorf("cell %s: %w", cell, err)
		}
	}
	return nil
}

func setMoney(f *excelize.File, style func() (int, error), row, col int, amount decimal.Decimal) error {
	cell := excel.CellName(row, col)
	if err := f.SetCellFloat(sheetName, cell, amount.Round(2).InexactFloat64(), 2, 64); err != nil {
		return fmt.Errorf("cell %s: %w", cell, err)
	}
	styleID, err := style()
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheetName, cell, cell, styleID)
}

func setWidths(f *excelize.File, widths []float64) error {
	for col, w := range widths {
		name := excel.ColumnName(col)
		if err := f.SetColWidth(sheetName, name, name, w); err != nil {
			return err
		}
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

package domain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Status is the daily attendance classification that drives pay.
type Status string

const (
	StatusFullDay Status = "Full day"
	StatusHalfDay Status = "Half day"
	StatusAbsent  Status = "Absent"
	StatusWFH     Status = "WFH"
)

// Statuses lists every valid status in display order.
var Statuses = []Status{StatusFullDay, StatusHalfDay, StatusAbsent, StatusWFH}

// ParseStatus accepts a status label case-insensitively.
func ParseStatus(s string) (Status, error) {
	s = strings.TrimSpace(s)
	for _, st := range Statuses {
		if strings.EqualFold(s, string(st)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// Valid reports whether s is one of Statuses.
func (s Status) Valid() bool {
	for _, st := range Statuses {
		if s == st {
			return true
		}
	}
	return false
}

// DateLayout is the fixed key layout of EmployeeAttendance.Days.
const DateLayout = "2006-01-02"

// DayRecord holds one employee's attendance for one calendar date.
type DayRecord struct {
	InTime     *string         `json:"in_time"`
	OutTime    *string         `json:"out_time"`
	TotalHours string          `json:"total_hours"`
	Status     Status          `json:"status"`
	Salary     decimal.Decimal `json:"salary"`
	Remark     string          `json:"remark"`
	Day        string          `json:"day"`
}

// EmployeeAttendance aggregates the day records of one employee for the window.
// TotalSalary always equals the sum of the day salaries.
type EmployeeAttendance struct {
	Name        string                `json:"name"`
	Days        map[string]*DayRecord `json:"date"`
	TotalSalary decimal.Decimal       `json:"total_salary"`
}

// NewEmployeeAttendance returns an empty aggregate for name.
func NewEmployeeAttendance(name string) *EmployeeAttendance {
	return &EmployeeAttendance{Name: name, Days: make(map[string]*DayRecord)}
}

// Put stores rec under date, replacing any previous record, and moves the
// total by the salary difference.
func (a *EmployeeAttendance) Put(date string, rec DayRecord) {
	if old, ok := a.Days[date]; ok {
		a.TotalSalary = a.TotalSalary.Sub(old.Salary)
	}
	a.Days[date] = &rec
	a.TotalSalary = a.TotalSalary.Add(rec.Salary)
}

// Dates returns the record keys in ascending order.
func (a *EmployeeAttendance) Dates() []string {
	dates := make([]string, 0, len(a.Days))
	for d := range a.Days {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// SetStatus applies an operator override to one day. Only that day's salary
// is recomputed; hours and punches stay as extracted, and the total moves by
// exactly the difference between the new and old salary.
func (a *EmployeeAttendance) SetStatus(date string, status Status, remark string, salary decimal.Decimal) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	if strings.TrimSpace(remark) == "" {
		return ErrRemarkRequired
	}
	if salary.IsNegative() {
		return ErrNegativeSalary
	}
	rec, ok := a.Days[date]
	if !ok {
		return fmt.Errorf("%w: %s", ErrDayNotFound, date)
	}

	old := rec.Salary
	rec.Status = status
	rec.Remark = remark
	rec.Salary = salary
	a.TotalSalary = a.TotalSalary.Sub(old).Add(salary)
	return nil
}

// Book is the attendance store aggregate: every employee's attendance for the
// active month, keyed by employee ID.
type Book struct {
	Month     string                         `json:"month_year"`
	Employees map[string]*EmployeeAttendance `json:"employee_id"`
}

// NewBook returns an empty book for the given month label (MM/YYYY).
func NewBook(month string) *Book {
	return &Book{Month: month, Employees: make(map[string]*EmployeeAttendance)}
}

// Entry returns the aggregate for id, creating it with name when missing.
func (b *Book) Entry(id, name string) *EmployeeAttendance {
	att, ok := b.Employees[id]
	if !ok {
		att = NewEmployeeAttendance(name)
		b.Employees[id] = att
	}
	return att
}

// Clone returns a deep copy of the book; day records are not shared.
func (b *Book) Clone() *Book {
	out := NewBook(b.Month)
	for id, att := range b.Employees {
		cp := &EmployeeAttendance{Name: att.Name, Days: make(map[string]*DayRecord, len(att.Days)), TotalSalary: att.TotalSalary}
		for date, rec := range att.Days {
			day := *rec
			cp.Days[date] = &day
		}
		out.Employees[id] = cp
	}
	return out
}

// IDs returns the employee identifiers in ascending order.
func (b *Book) IDs() []string {
	ids := make([]string, 0, len(b.Employees))
	for id := range b.Employees {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

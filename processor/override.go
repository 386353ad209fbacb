package processor

import (
	"errors"
	"fmt"
	"time"

	"github.com/orayew2002/rast-payroll/domain"
	"github.com/orayew2002/rast-payroll/duty"
)

var ErrNoAttendance = errors.New("attendance: employee has no attendance this month")

// Override changes the status and remark of one day of an employee's
// attendance. The day's salary is recomputed from the new status using the
// book's month for proration; the total moves by the difference. An employee
// missing from the roster is paid nothing.
func Override(book *domain.Book, roster *domain.Roster, id, date string, status domain.Status, remark string) error {
	att, ok := book.Employees[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoAttendance, id)
	}

	month, err := time.Parse("01/2006", book.Month)
	if err != nil {
		return fmt.Errorf("book month %q: %w", book.Month, err)
	}

	emp, _ := roster.ByID(id)
	daily := duty.DailySalary(emp.MonthlySalary, domain.MonthDays(month))

	if err := att.SetStatus(date, status, remark, duty.Salary(status, daily)); err != nil {
		return fmt.Errorf("override %s %s: %w", id, date, err)
	}
	return nil
}

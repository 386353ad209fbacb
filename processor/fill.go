package processor

import (
	"github.com/orayew2002/rast-payroll/domain"
	"github.com/orayew2002/rast-payroll/duty"
	"github.com/shopspring/decimal"
)

// FillGaps gives every employee already in book one record per window date,
// inserting an unpaid absence where a date is missing. Employees that no
// upload mentioned stay out of the book.
func FillGaps(book *domain.Book, window domain.Window) {
	dates := window.Dates()
	for _, att := range book.Employees {
		for _, d := range dates {
			key := d.Format(domain.DateLayout)
			if _, ok := att.Days[key]; ok {
				continue
			}
			att.Put(key, domain.DayRecord{
				TotalHours: duty.NoHours,
				Status:     domain.StatusAbsent,
				Salary:     decimal.Zero,
				Day:        d.Weekday().String(),
			})
		}
	}
}

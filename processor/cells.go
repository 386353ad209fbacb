package processor

import (
	"strconv"
	"time"

	"github.com/orayew2002/rast-payroll/domain"
	"github.com/xuri/excelize/v2"
)

// dateLayouts are the attendance date spellings seen in exports, day first.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"02-01-2006",
	"2-1-2006",
	"02/01/2006",
	"2/1/2006",
	"02.01.2006",
	"02-01-06",
	"02/01/06",
	"02-Jan-2006",
	"2-Jan-2006",
	"02 Jan 2006",
	"2 Jan 2006",
	"02-Jan-06",
	"2-Jan-06",
	"Jan 2, 2006",
	"January 2, 2006",
	"02-01-2006 15:04:05",
	"02/01/2006 15:04:05",
	"02-01-2006 15:04",
	"02/01/2006 15:04",
}

// Excel serials between these bounds are taken as dates (1954..2119).
const (
	minDateSerial = 20000
	maxDateSerial = 80000
)

// ParseDate reads an attendance date cell. Ambiguous numeric dates are read
// day first; Excel date serials are accepted.
func ParseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}

	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		if serial < minDateSerial || serial > maxDateSerial {
			return time.Time{}, false
		}
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}, false
		}
		return domain.DateOf(t), true
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return domain.DateOf(t), true
		}
	}
	return time.Time{}, false
}

// clockText normalises a punch cell to "HH:MM" when the reader handed back a
// day fraction or a full timestamp instead of the clock text. Anything else is
// returned untouched.
func clockText(value string) string {
	if f, err := strconv.ParseFloat(value, 64); err == nil && f > 0 && f < 1 {
		minutes := int(f*24*60 + 0.5)
		return time.Date(0, 1, 1, 0, minutes, 0, 0, time.UTC).Format("15:04")
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.Format("15:04")
	}
	return value
}

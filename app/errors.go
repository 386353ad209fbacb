package app

import (
	"errors"

	"github.com/orayew2002/rast-payroll/processor"
)

var (
	ErrNoAttendance = processor.ErrNoAttendance
	ErrEmptyBook    = errors.New("attendance: no attendance data, process files first")
)

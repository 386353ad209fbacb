package domain

import "errors"

var (
	ErrInvalidStatus  = errors.New("attendance: invalid status")
	ErrRemarkRequired = errors.New("attendance: remark is required")
	ErrDayNotFound    = errors.New("attendance: no record for date")
	ErrNegativeSalary = errors.New("attendance: salary must not be negative")
	ErrInvalidWindow  = errors.New("attendance: invalid window")
)

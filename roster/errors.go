package roster

import "errors"

var (
	ErrInvalidName      = errors.New("roster: name must not be blank")
	ErrDuplicateName    = errors.New("roster: employee name already exists")
	ErrNegativeSalary   = errors.New("roster: monthly salary must not be negative")
	ErrEmployeeNotFound = errors.New("roster: employee not found")
)

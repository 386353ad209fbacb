// Package roster validates and applies operator edits to the employee roster.
// Every function checks its input before touching any state.
package roster

import (
	"fmt"
	"strings"

	"github.com/orayew2002/rast-payroll/domain"
	"github.com/shopspring/decimal"
)

// Input carries the editable fields of an employee.
type Input struct {
	Name          string
	Email         string
	Mobile        string
	Designation   string
	BankName      string
	AccountNumber string
	IFSC          string
	MonthlySalary decimal.Decimal
}

func (in Input) employee(id string) domain.Employee {
	emp := domain.Employee{
		ID:            id,
		Name:          in.Name,
		Email:         in.Email,
		Mobile:        in.Mobile,
		Designation:   in.Designation,
		BankName:      in.BankName,
		AccountNumber: in.AccountNumber,
		IFSC:          in.IFSC,
		MonthlySalary: in.MonthlySalary,
	}
	emp.Normalize()
	return emp
}

// InputFrom returns the editable fields of emp.
func InputFrom(emp domain.Employee) Input {
	return Input{
		Name:          emp.Name,
		Email:         emp.Email,
		Mobile:        emp.Mobile,
		Designation:   emp.Designation,
		BankName:      emp.BankName,
		AccountNumber: emp.AccountNumber,
		IFSC:          emp.IFSC,
		MonthlySalary: emp.MonthlySalary,
	}
}

// Add registers a new employee under the next free identifier.
func Add(r *domain.Roster, in Input) (domain.Employee, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.Employee{}, ErrInvalidName
	}
	if _, taken := r.ByName(name); taken {
		return domain.Employee{}, fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}
	if in.MonthlySalary.IsNegative() {
		return domain.Employee{}, ErrNegativeSalary
	}

	emp := in.employee(r.NextID())
	r.Add(emp)
	return emp, nil
}

// Update replaces the fields of employee id. A rename is carried over to the
// employee's attendance so later uploads and reports keep matching.
func Update(r *domain.Roster, book *domain.Book, id string, in Input) (domain.Employee, error) {
	current, ok := r.ByID(id)
	if !ok {
		return domain.Employee{}, fmt.Errorf("%w: %s", ErrEmployeeNotFound, id)
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.Employee{}, ErrInvalidName
	}
	if name != current.Name {
		if _, taken := r.ByName(name); taken {
			return domain.Employee{}, fmt.Errorf("%w: %s", ErrDuplicateName, name)
		}
	}
	if in.MonthlySalary.IsNegative() {
		return domain.Employee{}, ErrNegativeSalary
	}

	emp := in.employee(id)
	r.Replace(emp)
	if att, ok := book.Employees[id]; ok {
		att.Name = emp.Name
	}
	return emp, nil
}

// Delete removes employee id and its attendance.
func Delete(r *domain.Roster, book *domain.Book, id string) error {
	if !r.Remove(id) {
		return fmt.Errorf("%w: %s", ErrEmployeeNotFound, id)
	}
	delete(book.Employees, id)
	return nil
}

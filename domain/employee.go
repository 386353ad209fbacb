package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Employee represents a single roster entry.
// Name is the join key against the name cells of attendance exports.
type Employee struct {
	ID            string          `json:"employee_id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Mobile        string          `json:"mobile"`
	Designation   string          `json:"designation"`
	BankName      string          `json:"bank_name"`
	AccountNumber string          `json:"account_number"`
	IFSC          string          `json:"ifsc"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
}

// Normalize trims the bank fields, which are routinely pasted with stray spaces.
func (e *Employee) Normalize() {
	e.Name = strings.TrimSpace(e.Name)
	e.AccountNumber = strings.TrimSpace(e.AccountNumber)
	e.IFSC = strings.TrimSpace(e.IFSC)
}

// Roster is the ordered set of known employees.
type Roster struct {
	employees []*Employee
}

// NewRoster builds a roster from employees in the given order.
// Employees without an ID are assigned one sequentially.
func NewRoster(employees []Employee) *Roster {
	r := &Roster{}
	for i := range employees {
		emp := employees[i]
		emp.Normalize()
		r.employees = append(r.employees, &emp)
	}
	for _, emp := range r.employees {
		if emp.ID == "" {
			emp.ID = r.NextID()
		}
	}
	return r
}

// Employees returns a copy of the roster in insertion order.
func (r *Roster) Employees() []Employee {
	out := make([]Employee, 0, len(r.employees))
	for _, emp := range r.employees {
		out = append(out, *emp)
	}
	return out
}

// Clone returns an independent copy of the roster.
func (r *Roster) Clone() *Roster {
	out := &Roster{employees: make([]*Employee, 0, len(r.employees))}
	for _, emp := range r.employees {
		cp := *emp
		out.employees = append(out.employees, &cp)
	}
	return out
}

// Len returns the number of employees.
func (r *Roster) Len() int {
	return len(r.employees)
}

// ByName looks an employee up by exact name.
func (r *Roster) ByName(name string) (Employee, bool) {
	for _, emp := range r.employees {
		if emp.Name == name {
			return *emp, true
		}
	}
	return Employee{}, false
}

// ByID looks an employee up by identifier.
func (r *Roster) ByID(id string) (Employee, bool) {
	if i := r.indexOf(id); i >= 0 {
		return *r.employees[i], true
	}
	return Employee{}, false
}

// Add appends emp. The caller is responsible for name uniqueness.
func (r *Roster) Add(emp Employee) {
	emp.Normalize()
	r.employees = append(r.employees, &emp)
}

// Replace overwrites the employee carrying emp.ID, keeping its position.
func (r *Roster) Replace(emp Employee) bool {
	i := r.indexOf(emp.ID)
	if i < 0 {
		return false
	}
	emp.Normalize()
	r.employees[i] = &emp
	return true
}

// Remove deletes the employee with the given identifier.
func (r *Roster) Remove(id string) bool {
	i := r.indexOf(id)
	if i < 0 {
		return false
	}
	r.employees = append(r.employees[:i], r.employees[i+1:]...)
	return true
}

// NextID returns the identifier following the highest one in use (EMP001, EMP002, ...).
func (r *Roster) NextID() string {
	highest := 0
	for _, emp := range r.employees {
		n, ok := idNumber(emp.ID)
		if ok && n > highest {
			highest = n
		}
	}
	return FormatID(highest + 1)
}

// FormatID renders n in the EMP### form.
func FormatID(n int) string {
	return fmt.Sprintf("%s%03d", idPrefix, n)
}

const idPrefix = "EMP"

func idNumber(id string) (int, bool) {
	digits, ok := strings.CutPrefix(id, idPrefix)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (r *Roster) indexOf(id string) int {
	for i, emp := range r.employees {
		if emp.ID == id {
			return i
		}
	}
	return -1
}

// Package app holds the application state of one payroll session: the roster,
// the attendance book and the configured window. Every mutating action is
// validated first and applied to a copy, which replaces the session state only
// once the store has accepted it.
package app

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/orayew2002/rast-payroll/domain"
	"github.com/orayew2002/rast-payroll/processor"
	"github.com/orayew2002/rast-payroll/report"
	"github.com/orayew2002/rast-payroll/roster"
)

// Store persists the roster and the attendance book.
type Store interface {
	LoadRoster(ctx context.Context) (*domain.Roster, error)
	SaveRoster(ctx context.Context, r *domain.Roster) error
	LoadBook(ctx context.Context) (*domain.Book, error)
	SaveBook(ctx context.Context, book *domain.Book) error
}

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// App is the explicit session state shared by the CLI and the HTTP adapter.
type App struct {
	mu     sync.Mutex
	store  Store
	clock  Clock
	window *domain.Window

	roster *domain.Roster
	book   *domain.Book
}

// Open loads the roster and the attendance book from store. A nil window
// makes every processing run derive its window from the uploads.
func Open(ctx context.Context, store Store, window *domain.Window, clock Clock) (*App, error) {
	if clock == nil {
		clock = realClock{}
	}

	r, err := store.LoadRoster(ctx)
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}
	book, err := store.LoadBook(ctx)
	if err != nil {
		return nil, fmt.Errorf("load attendance: %w", err)
	}

	return &App{store: store, clock: clock, window: window, roster: r, book: book}, nil
}

// Employees returns the roster in order.
func (a *App) Employees() []domain.Employee {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.roster.Employees()
}

// Employee looks one employee up by identifier.
func (a *App) Employee(id string) (domain.Employee, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	emp, ok := a.roster.ByID(id)
	if !ok {
		return domain.Employee{}, fmt.Errorf("%w: %s", roster.ErrEmployeeNotFound, id)
	}
	return emp, nil
}

// AddEmployee registers a new employee.
func (a *App) AddEmployee(ctx context.Context, in roster.Input) (domain.Employee, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	r := a.roster.Clone()
	emp, err := roster.Add(r, in)
	if err != nil {
		return domain.Employee{}, err
	}
	if err := a.store.SaveRoster(ctx, r); err != nil {
		return domain.Employee{}, fmt.Errorf("save roster: %w", err)
	}
	a.roster = r
	return emp, nil
}

// UpdateEmployee edits employee id. A rename also rewrites the attendance book.
func (a *App) UpdateEmployee(ctx context.Context, id string, in roster.Input) (domain.Employee, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	before, _ := a.roster.ByID(id)
	r, book := a.roster.Clone(), a.book.Clone()
	emp, err := roster.Update(r, book, id, in)
	if err != nil {
		return domain.Employee{}, err
	}
	if err := a.store.SaveRoster(ctx, r); err != nil {
		return domain.Employee{}, fmt.Errorf("save roster: %w", err)
	}
	a.roster = r
	if _, tracked := book.Employees[id]; tracked && before.Name != emp.Name {
		if err := a.store.SaveBook(ctx, book); err != nil {
			return domain.Employee{}, fmt.Errorf("save attendance: %w", err)
		}
		a.book = book
	}
	return emp, nil
}

// DeleteEmployee removes employee id together with its attendance.
func (a *App) DeleteEmployee(ctx context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	_, tracked := a.book.Employees[id]
	r, book := a.roster.Clone(), a.book.Clone()
	if err := roster.Delete(r, book, id); err != nil {
		return err
	}
	if err := a.store.SaveRoster(ctx, r); err != nil {
		return fmt.Errorf("save roster: %w", err)
	}
	a.roster = r
	if tracked {
		if err := a.store.SaveBook(ctx, book); err != nil {
			return fmt.Errorf("save attendance: %w", err)
		}
		a.book = book
	}
	return nil
}

// Process runs the uploads against the roster and replaces the attendance
// book with the result. Per-file problems come back as warnings; only a
// failing store write is an error.
func (a *App) Process(ctx context.Context, uploads []processor.Upload) (processor.Result, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	window := a.windowFor(uploads)
	res := processor.New(a.roster, window).Run(uploads)

	if err := a.store.SaveBook(ctx, res.Book); err != nil {
		return res, fmt.Errorf("save attendance: %w", err)
	}
	a.book = res.Book
	return res, nil
}

// Window returns the window a run over uploads would use.
func (a *App) Window(uploads []processor.Upload) domain.Window {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.windowFor(uploads)
}

func (a *App) windowFor(uploads []processor.Upload) domain.Window {
	if a.window != nil {
		return *a.window
	}
	return processor.DeriveWindow(uploads, a.clock.Now())
}

// SetStatus overrides the status and remark of one day of employee id.
func (a *App) SetStatus(ctx context.Context, id, date string, status domain.Status, remark string) (domain.DayRecord, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	book := a.book.Clone()
	if err := processor.Override(book, a.roster, id, date, status, remark); err != nil {
		return domain.DayRecord{}, err
	}
	if err := a.store.SaveBook(ctx, book); err != nil {
		return domain.DayRecord{}, fmt.Errorf("save attendance: %w", err)
	}
	a.book = book
	return *book.Employees[id].Days[date], nil
}

// DayView is one day of an attendance lookup.
type DayView struct {
	Date string `json:"date"`
	domain.DayRecord
}

// AttendanceView is the attendance of one employee, dates ascending.
type AttendanceView struct {
	ID          string    `json:"employee_id"`
	Name        string    `json:"name"`
	Month       string    `json:"month_year"`
	Days        []DayView `json:"days"`
	TotalSalary string    `json:"total_salary"`
}

// Attendance returns the attendance of employee id.
func (a *App) Attendance(id string) (AttendanceView, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	att, ok := a.book.Employees[id]
	if !ok {
		return AttendanceView{}, fmt.Errorf("%w: %s", ErrNoAttendance, id)
	}

	view := AttendanceView{
		ID:          id,
		Name:        att.Name,
		Month:       a.book.Month,
		TotalSalary: att.TotalSalary.StringFixed(2),
	}
	for _, date := range att.Dates() {
		view.Days = append(view.Days, DayView{Date: date, DayRecord: *att.Days[date]})
	}
	return view, nil
}

// Search returns the employees whose ID or name contains query, ignoring case.
func (a *App) Search(query string) []domain.Employee {
	a.mu.Lock()
	defer a.mu.Unlock()

	q := strings.ToLower(strings.TrimSpace(query))
	var out []domain.Employee
	for _, emp := range a.roster.Employees() {
		if strings.Contains(strings.ToLower(emp.ID), q) || strings.Contains(strings.ToLower(emp.Name), q) {
			out = append(out, emp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Ledger renders the attendance ledger of the current book.
func (a *App) Ledger() ([]byte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(a.book.Employees) == 0 {
		return nil, ErrEmptyBook
	}
	return report.LedgerBytes(a.book)
}

// Payment renders the bulk-payment file of the current book.
func (a *App) Payment(opts report.PaymentOptions) ([]byte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if len(a.book.Employees) == 0 {
		return nil, ErrEmptyBook
	}
	return report.PaymentBytes(a.book, a.roster, opts)
}

// Seed adds n generated employees and saves the roster.
func (a *App) Seed(ctx context.Context, n int) ([]domain.Employee, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	r := a.roster.Clone()
	added := domain.GenerateEmployees(r, n)
	if err := a.store.SaveRoster(ctx, r); err != nil {
		return nil, fmt.Errorf("save roster: %w", err)
	}
	a.roster = r
	return added, nil
}

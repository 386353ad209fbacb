package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/orayew2002/rast-payroll/domain"
	"github.com/orayew2002/rast-payroll/excel"
	"github.com/orayew2002/rast-payroll/layout"
	"github.com/orayew2002/rast-payroll/processor"
	"github.com/orayew2002/rast-payroll/report"
	"github.com/orayew2002/rast-payroll/roster"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

type fakeStore struct {
	roster      *domain.Roster
	book        *domain.Book
	rosterSaves int
	bookSaves   int
	saveErr     error
}

func (f *fakeStore) LoadRoster(context.Context) (*domain.Roster, error) { return f.roster, nil }
func (f *fakeStore) LoadBook(context.Context) (*domain.Book, error)     { return f.book, nil }

func (f *fakeStore) SaveRoster(_ context.Context, r *domain.Roster) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.rosterSaves++
	f.roster = r
	return nil
}

func (f *fakeStore) SaveBook(_ context.Context, b *domain.Book) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.bookSaves++
	f.book = b
	return nil
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func newStore() *fakeStore {
	return &fakeStore{
		roster: domain.NewRoster([]domain.Employee{
			{ID: "EMP001", Name: "Asha Rao", MonthlySalary: decimal.NewFromInt(31000)},
			{ID: "EMP002", Name: "Vikram Shah", MonthlySalary: decimal.NewFromInt(62000)},
		}),
		book: domain.NewBook(""),
	}
}

func julyWindow(t *testing.T) *domain.Window {
	t.Helper()
	w, err := domain.NewWindow(time.Date(2025, 7, 7, 0, 0, 0, 0, time.UTC), time.Date(2025, 7, 13, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	return &w
}

func openApp(t *testing.T, s *fakeStore, w *domain.Window) *App {
	t.Helper()
	a, err := Open(context.Background(), s, w, fixedClock{time.Date(2025, 7, 25, 0, 0, 0, 0, time.UTC)})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return a
}

// gcUpload renders a GC office export with one block for Asha Rao.
func gcUpload(t *testing.T) processor.Upload {
	t.Helper()

	rows := excel.Rows{
		{"", "", "", "", "", "", "", "", "Report Month : July-2025"},
		{"", "", "", "Employee Name :", "", "", "", "Asha Rao"},
		{"Sr", "", "Att. Date", "Shift", "", "InTime", "OutTime"},
		{"", "", "07-07-2025", "GS", "", "09:00", "18:00"},
		{"", "", "08-07-2025", "GS", "", "09:00", "12:00"},
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for r, cells := range rows {
		for c, v := range cells {
			if v == "" {
				continue
			}
			if err := f.SetCellStr(sheet, excel.CellName(r, c), v); err != nil {
				t.Fatal(err)
			}
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}
	return processor.Upload{Name: "gc.xlsx", Format: layout.FormatGC, Data: buf.Bytes()}
}

func TestApp_AddEmployee(t *testing.T) {
	t.Parallel()

	s := newStore()
	a := openApp(t, s, nil)

	emp, err := a.AddEmployee(context.Background(), roster.Input{Name: "Meera Iyer", MonthlySalary: decimal.NewFromInt(40000)})
	if err != nil {
		t.Fatalf("AddEmployee: %v", err)
	}
	if emp.ID != "EMP003" || s.rosterSaves != 1 || s.roster.Len() != 3 {
		t.Errorf("unexpected state: %+v, saves=%d", emp, s.rosterSaves)
	}

	if _, err := a.AddEmployee(context.Background(), roster.Input{Name: "Asha Rao"}); !errors.Is(err, roster.ErrDuplicateName) {
		t.Errorf("duplicate: %v", err)
	}
	if s.rosterSaves != 1 {
		t.Errorf("rejected input must not be saved, saves=%d", s.rosterSaves)
	}
}

func TestApp_ProcessAndOverride(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newStore()
	a := openApp(t, s, julyWindow(t))

	res, err := a.Process(ctx, []processor.Upload{gcUpload(t)})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if res.Processed != 1 || len(res.Warnings) != 0 || s.bookSaves != 1 {
		t.Fatalf("unexpected result %+v, saves=%d", res, s.bookSaves)
	}

	view, err := a.Attendance("EMP001")
	if err != nil {
		t.Fatalf("Attendance: %v", err)
	}
	if view.Month != "07/2025" || len(view.Days) != 7 {
		t.Fatalf("unexpected view %+v", view)
	}
	// 07-07 full day, 08-07 three hours, the rest filled as absences.
	if view.TotalSalary != "1000.00" {
		t.Errorf("total = %s, want 1000.00", view.TotalSalary)
	}
	if view.Days[0].Date != "2025-07-07" || view.Days[0].Status != domain.StatusFullDay {
		t.Errorf("first day = %+v", view.Days[0])
	}

	if _, err := a.SetStatus(ctx, "EMP001", "2025-07-08", domain.StatusHalfDay, ""); !errors.Is(err, domain.ErrRemarkRequired) {
		t.Errorf("missing remark: %v", err)
	}
	if s.bookSaves != 1 {
		t.Errorf("rejected override must not be saved")
	}

	rec, err := a.SetStatus(ctx, "EMP001", "2025-07-08", domain.StatusHalfDay, "left early, approved")
	if err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	if !rec.Salary.Equal(decimal.NewFromInt(500)) || rec.TotalHours != "03:00" {
		t.Errorf("record = %+v", rec)
	}
	view, _ = a.Attendance("EMP001")
	if view.TotalSalary != "1500.00" || s.bookSaves != 2 {
		t.Errorf("total after override = %s, saves=%d", view.TotalSalary, s.bookSaves)
	}

	if _, err := a.Attendance("EMP002"); !errors.Is(err, ErrNoAttendance) {
		t.Errorf("EMP002 had no rows: %v", err)
	}
}

func TestApp_ProcessDerivesWindow(t *testing.T) {
	t.Parallel()

	a := openApp(t, newStore(), nil)
	w := a.Window([]processor.Upload{gcUpload(t)})
	if !w.Start.Equal(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)) || !w.End.Equal(time.Date(2025, 7, 8, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("window = %v - %v", w.Start, w.End)
	}
}

func TestApp_RenameAndDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newStore()
	a := openApp(t, s, julyWindow(t))
	if _, err := a.Process(ctx, []processor.Upload{gcUpload(t)}); err != nil {
		t.Fatal(err)
	}

	emp, _ := a.Employee("EMP001")
	in := roster.InputFrom(emp)
	in.Name = "Asha R. Rao"
	if _, err := a.UpdateEmployee(ctx, "EMP001", in); err != nil {
		t.Fatalf("UpdateEmployee: %v", err)
	}
	if s.book.Employees["EMP001"].Name != "Asha R. Rao" || s.bookSaves != 2 {
		t.Errorf("rename not carried to attendance, saves=%d", s.bookSaves)
	}

	if err := a.DeleteEmployee(ctx, "EMP001"); err != nil {
		t.Fatalf("DeleteEmployee: %v", err)
	}
	if _, ok := s.book.Employees["EMP001"]; ok {
		t.Error("attendance kept after delete")
	}
	if err := a.DeleteEmployee(ctx, "EMP001"); !errors.Is(err, roster.ErrEmployeeNotFound) {
		t.Errorf("second delete: %v", err)
	}
}

func TestApp_Reports(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	a := openApp(t, newStore(), julyWindow(t))

	if _, err := a.Ledger(); !errors.Is(err, ErrEmptyBook) {
		t.Errorf("empty ledger: %v", err)
	}

	if _, err := a.Process(ctx, []processor.Upload{gcUpload(t)}); err != nil {
		t.Fatal(err)
	}
	if data, err := a.Ledger(); err != nil || len(data) == 0 {
		t.Errorf("Ledger: %v", err)
	}

	opts := report.PaymentOptions{TransactionType: "NEFT", Date: time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)}
	if _, err := a.Payment(opts); !errors.Is(err, report.ErrDebitAccountRequired) {
		t.Errorf("missing debit account: %v", err)
	}
	opts.DebitAccount = "123456"
	if data, err := a.Payment(opts); err != nil || len(data) == 0 {
		t.Errorf("Payment: %v", err)
	}
}

func TestApp_SearchAndSeed(t *testing.T) {
	t.Parallel()

	s := newStore()
	a := openApp(t, s, nil)

	got := a.Search("  vik ")
	if len(got) != 1 || got[0].ID != "EMP002" {
		t.Errorf("Search = %+v", got)
	}
	if got := a.Search("emp00"); len(got) != 2 {
		t.Errorf("Search by ID prefix = %d results", len(got))
	}

	added, err := a.Seed(context.Background(), 3)
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if len(added) != 3 || added[0].ID != "EMP003" || s.roster.Len() != 5 {
		t.Errorf("seeded %+v", added)
	}
}

func TestApp_SaveFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newStore()
	a := openApp(t, s, julyWindow(t))
	if _, err := a.Process(ctx, []processor.Upload{gcUpload(t)}); err != nil {
		t.Fatal(err)
	}
	s.saveErr = errors.New("disk full")

	if _, err := a.AddEmployee(ctx, roster.Input{Name: "Meera Iyer"}); err == nil {
		t.Error("expected save error")
	}
	if got := len(a.Employees()); got != 2 {
		t.Errorf("failed add kept in memory, roster = %d", got)
	}

	if _, err := a.SetStatus(ctx, "EMP001", "2025-07-08", domain.StatusWFH, "worked from home"); err == nil {
		t.Error("expected save error on override")
	}
	view, _ := a.Attendance("EMP001")
	if view.TotalSalary != "1000.00" || view.Days[1].Status != domain.StatusAbsent {
		t.Errorf("failed override kept in memory: total=%s day=%+v", view.TotalSalary, view.Days[1])
	}

	emp, _ := a.Employee("EMP001")
	in := roster.InputFrom(emp)
	in.Name = "Asha R. Rao"
	if _, err := a.UpdateEmployee(ctx, "EMP001", in); err == nil {
		t.Error("expected save error on update")
	}
	if emp, _ := a.Employee("EMP001"); emp.Name != "Asha Rao" {
		t.Errorf("failed rename kept in memory: %s", emp.Name)
	}

	if err := a.DeleteEmployee(ctx, "EMP001"); err == nil {
		t.Error("expected save error on delete")
	}
	if _, err := a.Attendance("EMP001"); err != nil {
		t.Errorf("failed delete dropped attendance: %v", err)
	}

	s.saveErr = nil
	if _, err := a.AddEmployee(ctx, roster.Input{Name: "Meera Iyer"}); err != nil {
		t.Errorf("retry after failed save: %v", err)
	}
	if s.roster.Len() != 3 {
		t.Errorf("stored roster = %d", s.roster.Len())
	}
}

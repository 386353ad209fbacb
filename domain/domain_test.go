package domain

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestEmployeeAttendance_PutReplaces(t *testing.T) {
	t.Parallel()

	att := NewEmployeeAttendance("Asha Rao")
	att.Put("2025-07-02", DayRecord{Status: StatusFullDay, Salary: decimal.NewFromInt(1000)})
	att.Put("2025-07-01", DayRecord{Status: StatusHalfDay, Salary: decimal.NewFromInt(500)})
	att.Put("2025-07-02", DayRecord{Status: StatusAbsent, Salary: decimal.Zero})

	if !att.TotalSalary.Equal(decimal.NewFromInt(500)) {
		t.Errorf("total = %s, want 500", att.TotalSalary)
	}
	if got := att.Dates(); len(got) != 2 || got[0] != "2025-07-01" {
		t.Errorf("dates = %v", got)
	}
}

func TestEmployeeAttendance_SetStatus(t *testing.T) {
	t.Parallel()

	hours := "09:00"
	att := NewEmployeeAttendance("Asha Rao")
	att.Put("2025-07-01", DayRecord{InTime: &hours, TotalHours: "09:00", Status: StatusFullDay, Salary: decimal.NewFromInt(1000)})
	att.Put("2025-07-02", DayRecord{TotalHours: "00:00", Status: StatusAbsent, Salary: decimal.Zero})

	tests := []struct {
		name   string
		date   string
		status Status
		remark string
		salary decimal.Decimal
		want   error
	}{
		{"invalid status", "2025-07-01", Status("Holiday"), "x", decimal.Zero, ErrInvalidStatus},
		{"blank remark", "2025-07-01", StatusWFH, "  ", decimal.Zero, ErrRemarkRequired},
		{"negative salary", "2025-07-01", StatusWFH, "x", decimal.NewFromInt(-1), ErrNegativeSalary},
		{"unknown day", "2025-07-09", StatusWFH, "x", decimal.Zero, ErrDayNotFound},
	}
	for _, tt := range tests {
		if err := att.SetStatus(tt.date, tt.status, tt.remark, tt.salary); !errors.Is(err, tt.want) {
			t.Errorf("%s: err = %v, want %v", tt.name, err, tt.want)
		}
	}
	if !att.TotalSalary.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("rejected overrides changed the total: %s", att.TotalSalary)
	}

	if err := att.SetStatus("2025-07-02", StatusHalfDay, "approved", decimal.NewFromInt(500)); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	rec := att.Days["2025-07-02"]
	if rec.Status != StatusHalfDay || rec.Remark != "approved" || rec.TotalHours != "00:00" {
		t.Errorf("record = %+v", rec)
	}
	if !att.TotalSalary.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("total = %s, want 1500", att.TotalSalary)
	}
}

func TestParseStatus(t *testing.T) {
	t.Parallel()

	if s, err := ParseStatus(" half DAY "); err != nil || s != StatusHalfDay {
		t.Errorf("ParseStatus = %q, %v", s, err)
	}
	if _, err := ParseStatus("late"); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("ParseStatus(late) = %v", err)
	}
}

func TestNewRoster_BackfillsIDs(t *testing.T) {
	t.Parallel()

	r := NewRoster([]Employee{
		{ID: "EMP007", Name: "Asha Rao"},
		{Name: " Vikram Shah ", IFSC: " HDFC0000001 "},
		{Name: "Meera Iyer"},
	})

	emps := r.Employees()
	if emps[1].ID != "EMP008" || emps[2].ID != "EMP009" {
		t.Errorf("ids = %s, %s", emps[1].ID, emps[2].ID)
	}
	if emps[1].Name != "Vikram Shah" || emps[1].IFSC != "HDFC0000001" {
		t.Errorf("not trimmed: %+v", emps[1])
	}
	if r.NextID() != "EMP010" {
		t.Errorf("NextID = %s", r.NextID())
	}
	if !r.Remove("EMP008") || r.Remove("EMP008") || r.Len() != 2 {
		t.Errorf("Remove misbehaved, len = %d", r.Len())
	}
}

func TestWindow(t *testing.T) {
	t.Parallel()

	w, err := NewWindow(time.Date(2025, 2, 10, 15, 0, 0, 0, time.UTC), time.Date(2025, 2, 12, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("NewWindow: %v", err)
	}
	if w.DaysInMonth != 28 || len(w.Dates()) != 3 || w.MonthLabel() != "02/2025" {
		t.Errorf("window = %+v", w)
	}
	if !w.Contains(time.Date(2025, 2, 12, 23, 59, 0, 0, time.UTC)) || w.Contains(time.Date(2025, 2, 13, 0, 0, 0, 0, time.UTC)) {
		t.Error("Contains must compare calendar dates, end inclusive")
	}

	if _, err := NewWindow(w.End, w.Start); !errors.Is(err, ErrInvalidWindow) {
		t.Errorf("reversed window: %v", err)
	}

	leap := MonthWindow(time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC))
	if leap.DaysInMonth != 29 || leap.End.Day() != 29 {
		t.Errorf("leap window = %+v", leap)
	}
}

func TestGenerateEmployees(t *testing.T) {
	t.Parallel()

	r := NewRoster([]Employee{{ID: "EMP004", Name: "Asha Rao"}})
	added := GenerateEmployees(r, 5)

	if len(added) != 5 || r.Len() != 6 {
		t.Fatalf("added %d, roster %d", len(added), r.Len())
	}
	seen := map[string]bool{"Asha Rao": true}
	for i, emp := range added {
		if want := FormatID(5 + i); emp.ID != want {
			t.Errorf("id = %s, want %s", emp.ID, want)
		}
		if seen[emp.Name] {
			t.Errorf("duplicate name %q", emp.Name)
		}
		seen[emp.Name] = true
		if len(emp.IFSC) != 11 || !strings.HasPrefix(emp.IFSC[4:], "0") {
			t.Errorf("bad IFSC %q", emp.IFSC)
		}
		if emp.MonthlySalary.IsNegative() || emp.MonthlySalary.IsZero() {
			t.Errorf("salary %s", emp.MonthlySalary)
		}
	}
}

func TestClone_Independent(t *testing.T) {
	t.Parallel()

	r := NewRoster([]Employee{{ID: "EMP001", Name: "Asha Rao"}})
	rc := r.Clone()
	rc.Add(Employee{ID: "EMP002", Name: "Vikram Shah"})
	rc.Replace(Employee{ID: "EMP001", Name: "Asha R. Rao"})
	if emp, _ := r.ByID("EMP001"); r.Len() != 1 || emp.Name != "Asha Rao" {
		t.Errorf("roster changed through clone: %+v", r.Employees())
	}

	book := NewBook("07/2025")
	book.Entry("EMP001", "Asha Rao").Put("2025-07-01", DayRecord{Status: StatusAbsent, Salary: decimal.Zero})
	bc := book.Clone()
	if err := bc.Employees["EMP001"].SetStatus("2025-07-01", StatusWFH, "approved", decimal.NewFromInt(1000)); err != nil {
		t.Fatal(err)
	}
	delete(bc.Employees, "EMP001")
	att := book.Employees["EMP001"]
	if att == nil || att.Days["2025-07-01"].Status != StatusAbsent || !att.TotalSalary.IsZero() {
		t.Errorf("book changed through clone: %+v", att)
	}
	if bc.Month != "07/2025" {
		t.Errorf("clone month = %q", bc.Month)
	}
}

package excel

import (
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestCellName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		row, col int
		want     string
	}{
		{0, 0, "A1"},
		{9, 25, "Z10"},
		{0, 26, "AA1"},
		{3, 27, "AB4"},
		{0, 701, "ZZ1"},
		{0, 702, "AAA1"},
	}
	for _, tt := range tests {
		if got := CellName(tt.row, tt.col); got != tt.want {
			t.Errorf("CellName(%d, %d) = %q, want %q", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestReadRows_XLSX(t *testing.T) {
	t.Parallel()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	must(t, f.SetCellStr(sheet, "A1", "title"))
	must(t, f.SetCellStr(sheet, "B3", " padded "))

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write: %v", err)
	}

	rows, err := ReadRows(buf.Bytes(), "upload.xlsx")
	if err != nil {
		t.Fatalf("ReadRows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows (blank row kept), got %d", len(rows))
	}
	if got := rows.Cell(0, 0); got != "title" {
		t.Errorf("A1 = %q", got)
	}
	if got := rows.Cell(2, 1); got != "padded" {
		t.Errorf("B3 = %q, want trimmed value", got)
	}
	if got := rows.Cell(1, 5); got != "" {
		t.Errorf("blank cell = %q", got)
	}
	if got := rows.Cell(99, 0); got != "" {
		t.Errorf("out of range cell = %q", got)
	}
}

func TestReadRows_Garbage(t *testing.T) {
	t.Parallel()

	if _, err := ReadRows([]byte("not a workbook"), "upload.xlsx"); err == nil {
		t.Error("expected error for xlsx garbage")
	}
	if _, err := ReadRows([]byte("not a workbook"), "upload.XLS"); err == nil {
		t.Error("expected error for xls garbage")
	}
}

func TestReadRows_EmptySheet(t *testing.T) {
	t.Parallel()

	f := excelize.NewFile()
	defer f.Close()
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err = ReadRows(buf.Bytes(), "empty.xlsx")
	if !errors.Is(err, ErrEmptySheet) {
		t.Errorf("expected ErrEmptySheet, got %v", err)
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

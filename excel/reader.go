package excel

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

var (
	ErrNoSheet    = errors.New("excel: no worksheet found")
	ErrEmptySheet = errors.New("excel: worksheet is empty")
)

// Rows is the cell text of one worksheet, indexed [row][col] from 0.
// Rows may be ragged; blank rows are kept so indices match the sheet.
type Rows [][]string

// Cell returns the trimmed text at row, col or "" outside the sheet.
func (r Rows) Cell(row, col int) string {
	if row < 0 || row >= len(r) {
		return ""
	}
	cells := r[row]
	if col < 0 || col >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[col])
}

// Width returns the number of cells in row.
func (r Rows) Width(row int) int {
	if row < 0 || row >= len(r) {
		return 0
	}
	return len(r[row])
}

// MaxWidth returns the number of cells in the widest row.
func (r Rows) MaxWidth() int {
	width := 0
	for _, cells := range r {
		width = max(width, len(cells))
	}
	return width
}

// ReadRows reads the first worksheet of a workbook held in data. The legacy
// BIFF encoding is chosen by the ".xls" extension of name; anything else is
// opened as Office Open XML, whose date and time cells come back as raw
// Excel serials rather than locale-formatted text.
func ReadRows(data []byte, name string) (Rows, error) {
	if strings.EqualFold(filepath.Ext(name), ".xls") {
		return readXLS(data)
	}
	return readXLSX(data)
}

func readXLSX(data []byte) (Rows, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, ErrNoSheet
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("sheet %q: get rows: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptySheet
	}

	return Rows(rows), nil
}

func readXLS(data []byte) (Rows, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("open xls: %w", err)
	}
	if wb.NumSheets() == 0 {
		return nil, ErrNoSheet
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, ErrNoSheet
	}

	rows := make(Rows, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		cells := make([]string, row.LastCol())
		for col := row.FirstCol(); col < row.LastCol(); col++ {
			cells[col] = row.Col(col)
		}
		rows = append(rows, cells)
	}

	if len(rows) == 0 {
		return nil, ErrEmptySheet
	}
	return rows, nil
}

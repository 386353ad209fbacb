package layout

import (
	"strings"

	"github.com/orayew2002/rast-payroll/excel"
)

// Columns holds the 0-based positions of the attendance fields in a block.
type Columns struct {
	Date int
	In   int
	Out  int
}

func (c Columns) last() int {
	return max(c.Date, c.In, c.Out)
}

// ResolveColumns locates the date and punch columns in the header row of a
// block. GC exports must name all three columns. Merlin exports fall back to
// fixed positions when the headers are not found, provided the row is wide
// enough to hold them. Readers drop trailing blank cells, so the row is
// measured at the width of the whole sheet.
func ResolveColumns(rows excel.Rows, headerRow int, format Format) (Columns, error) {
	d, err := format.descriptor()
	if err != nil {
		return Columns{}, err
	}

	cols := Columns{Date: -1, In: -1, Out: -1}
	for i := range rows.Width(headerRow) {
		switch normalizeHeader(rows.Cell(headerRow, i)) {
		case d.dateHeader:
			cols.Date = i
		case d.inHeader:
			cols.In = i
		case d.outHeader:
			cols.Out = i
		}
	}

	found := cols.Date >= 0 && cols.In >= 0 && cols.Out >= 0
	if found {
		return cols, nil
	}
	if d.fallback == nil {
		return Columns{}, &LayoutError{Row: headerRow + 1, Format: format, Err: ErrMissingColumns}
	}

	cols = *d.fallback
	if headerRow >= len(rows) || rows.MaxWidth() < cols.last()+1 {
		return Columns{}, &LayoutError{Row: headerRow + 1, Format: format, Err: ErrRowTooShort}
	}
	return cols, nil
}

func normalizeHeader(header string) string {
	return strings.ToLower(strings.TrimSpace(header))
}

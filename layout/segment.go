package layout

import (
	"github.com/orayew2002/rast-payroll/excel"
)

// Block is one employee's section of an export.
type Block struct {
	Name      string
	MarkerRow int // row holding the marker and the employee name
	HeaderRow int // column header row, directly below the marker
	Start     int // first data row (inclusive)
	End       int // last data row (exclusive)
}

// Segment splits a sheet into employee blocks. A block starts at every row
// whose marker column holds the format's sentinel and runs until the next
// marker row or the end of the sheet. Its data rows begin two rows below the
// marker, after the header row. Markers with an empty name produce no block
// but still end the block before them.
func Segment(rows excel.Rows, format Format) ([]Block, error) {
	d, err := format.descriptor()
	if err != nil {
		return nil, err
	}

	var markers []int
	for i := range rows {
		if rows.Cell(i, d.markerCol) == d.marker {
			markers = append(markers, i)
		}
	}

	blocks := make([]Block, 0, len(markers))
	for i, row := range markers {
		name := rows.Cell(row, d.nameCol)
		if name == "" || name == "nan" {
			continue
		}

		end := len(rows)
		if i+1 < len(markers) {
			end = markers[i+1]
		}

		blocks = append(blocks, Block{
			Name:      name,
			MarkerRow: row,
			HeaderRow: row + 1,
			Start:     row + 2,
			End:       end,
		})
	}

	return blocks, nil
}

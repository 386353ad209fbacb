package report

import (
	"github.com/orayew2002/rast-payroll/domain"
	"github.com/xuri/excelize/v2"
)

// styleManager caches Excel styles so each style is created only once per file.
type styleManager struct {
	file  *excelize.File
	cache map[string]int
}

func newStyleManager(f *excelize.File) *styleManager {
	return &styleManager{file: f, cache: make(map[string]int)}
}

// header returns the bold, filled, centered header style.
func (sm *styleManager) header() (int, error) {
	return sm.getOrCreate("header", &excelize.Style{
		Font:      reportFont(func(f *excelize.Font) { f.Bold, f.Color = true, "FFFFFF" }),
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    thinBorder(),
	})
}

// note returns the italic style of the payment file instruction row.
func (sm *styleManager) note() (int, error) {
	return sm.getOrCreate("note", &excelize.Style{
		Font:      reportFont(func(f *excelize.Font) { f.Italic, f.Color = true, "595959" }),
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
		Border:    thinBorder(),
	})
}

// total returns the bold style of per-employee summary rows.
func (sm *styleManager) total() (int, error) {
	return sm.getOrCreate("total", &excelize.Style{
		Font:   reportFont(func(f *excelize.Font) { f.Bold = true }),
		Border: thinBorder(),
		NumFmt: 2,
	})
}

// money returns a bordered two-decimal number style.
func (sm *styleManager) money() (int, error) {
	return sm.getOrCreate("money", &excelize.Style{
		Font:   reportFont(nil),
		Border: thinBorder(),
		NumFmt: 2,
	})
}

// status returns the style of a status cell, shaded by status.
func (sm *styleManager) status(s domain.Status) (int, error) {
	color, ok := statusColors[s]
	if !ok {
		return sm.getOrCreate("plain", &excelize.Style{Font: reportFont(nil), Border: thinBorder()})
	}
	return sm.getOrCreate("status:"+string(s), &excelize.Style{
		Font:      reportFont(nil),
		Fill:      excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    thinBorder(),
	})
}

var statusColors = map[domain.Status]string{
	domain.StatusFullDay: "90EE90",
	domain.StatusHalfDay: "FFFFE0",
	domain.StatusAbsent:  "F08080",
	domain.StatusWFH:     "ADD8E6",
}

func (sm *styleManager) getOrCreate(key string, style *excelize.Style) (int, error) {
	id, ok := sm.cache[key]
	if ok {
		return id, nil
	}
	id, err := sm.file.NewStyle(style)
	if err != nil {
		return 0, err
	}
	sm.cache[key] = id
	return id, nil
}

const (
	fontFamily = "Times New Roman"
	fontSize   = 11
)

// reportFont returns the workbook font, adjusted by with when given.
func reportFont(with func(*excelize.Font)) *excelize.Font {
	f := &excelize.Font{Family: fontFamily, Size: fontSize}
	if with != nil {
		with(f)
	}
	return f
}

func thinBorder() []excelize.Border {
	sides := []string{"left", "right", "top", "bottom"}
	border := make([]excelize.Border, 0, len(sides))
	for _, side := range sides {
		border = append(border, excelize.Border{Type: side, Color: "000000", Style: 1})
	}
	return border
}

package excel

import "fmt"

// CellName converts 0-based row and column indices to a cell reference (0,0 → "A1", 3,27 → "AB4").
func CellName(row, col int) string {
	return fmt.Sprintf("%s%d", ColumnName(col), row+1)
}

// ColumnName converts a 0-based column index to its letters (0→A, 25→Z, 26→AA).
func ColumnName(col int) string {
	var letters []byte
	for n := col; n >= 0; n = n/26 - 1 {
		letters = append([]byte{byte('A' + n%26)}, letters...)
	}
	return string(letters)
}

package layout

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownFormat  = errors.New("layout: unknown format")
	ErrMissingColumns = errors.New("layout: missing columns")
	ErrRowTooShort    = errors.New("layout: row too short")
)

// LayoutError reports a header row whose columns could not be resolved.
type LayoutError struct {
	Row    int // 1-based sheet row
	Format Format
	Err    error
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("%s header row %d: %v", e.Format, e.Row, e.Err)
}

func (e *LayoutError) Unwrap() error {
	return e.Err
}

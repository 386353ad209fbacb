package processor

import (
	"fmt"

	"github.com/orayew2002/rast-payroll/domain"
)

// Warning is a non-fatal problem met while processing a run. The part of the
// upload it names (the whole file, or one employee block) was skipped.
type Warning struct {
	File     string
	Employee string // empty when the whole file was skipped
	Err      error
}

func (w Warning) String() string {
	if w.Employee == "" {
		return fmt.Sprintf("%s: %v", w.File, w.Err)
	}
	return fmt.Sprintf("%s: %s: %v", w.File, w.Employee, w.Err)
}

// Result is the outcome of a run: the completed book plus everything that was
// skipped along the way.
type Result struct {
	Book      *domain.Book
	Window    domain.Window
	Processed int // uploads that contributed
	Warnings  []Warning
}

// Run processes every upload in order into a fresh book for the window, then
// fills the window gaps. A failing upload is reported as a warning and does not
// stop the run.
func (p *Processor) Run(uploads []Upload) Result {
	res := Result{Book: domain.NewBook(p.window.MonthLabel()), Window: p.window}

	for _, up := range uploads {
		warnings, err := p.ProcessBytes(res.Book, up)
		if err != nil {
			res.Warnings = append(res.Warnings, Warning{File: up.Name, Err: err})
			continue
		}
		res.Warnings = append(res.Warnings, warnings...)
		res.Processed++
	}

	FillGaps(res.Book, p.window)
	return res
}

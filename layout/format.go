// Package layout understands the two biometric export layouts: where an
// employee block starts, where the employee name sits and which columns hold
// the attendance date and the punches.
package layout

import (
	"fmt"
	"strings"
)

// Format identifies the source system of an attendance export.
type Format int

const (
	// FormatGC is the GC office export ("altius"): one block per employee
	// introduced by an "Employee Name :" row, headers Att. Date / InTime / OutTime.
	FormatGC Format = iota + 1
	// FormatMerlin is the Merlin Heights monthly in/out export ("monthinout"):
	// blocks introduced by a "Name" row, headers Date / IN / Out.
	FormatMerlin
)

// descriptor holds the per-format constants used by Segment and ResolveColumns.
type descriptor struct {
	tag string

	markerCol int
	marker    string
	nameCol   int

	dateHeader string
	inHeader   string
	outHeader  string

	// fallback column positions; nil when the headers are mandatory
	fallback *Columns
}

var descriptors = map[Format]descriptor{
	FormatGC: {
		tag:        "altius",
		markerCol:  3,
		marker:     "Employee Name :",
		nameCol:    7,
		dateHeader: "att. date",
		inHeader:   "intime",
		outHeader:  "outtime",
	},
	FormatMerlin: {
		tag:        "monthinout",
		markerCol:  7,
		marker:     "Name",
		nameCol:    9,
		dateHeader: "date",
		inHeader:   "in",
		outHeader:  "out",
		fallback:   &Columns{Date: 0, In: 2, Out: 17},
	},
}

// Formats lists the supported formats.
var Formats = []Format{FormatGC, FormatMerlin}

// String returns the upload tag of f.
func (f Format) String() string {
	if d, ok := descriptors[f]; ok {
		return d.tag
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat maps an upload tag ("altius", "monthinout") to its Format.
func ParseFormat(tag string) (Format, error) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for _, f := range Formats {
		if descriptors[f].tag == tag {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, tag)
}

func (f Format) descriptor() (descriptor, error) {
	d, ok := descriptors[f]
	if !ok {
		return descriptor{}, fmt.Errorf("%w: %d", ErrUnknownFormat, int(f))
	}
	return d, nil
}

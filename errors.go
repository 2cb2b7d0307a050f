package otview

import (
	"fmt"

	"github.com/npillmayer/otview/view"
)

// Severity classifies container-level diagnostics collected while reading
// a font's table directory.
type Severity int

const (
	// SeverityCritical indicates a defect that makes the font unusable or unreliable.
	SeverityCritical Severity = iota
	// SeverityMajor indicates a defect that may affect some tables but not all.
	SeverityMajor
	// SeverityMinor indicates an issue that is safe to ignore in most cases.
	SeverityMinor
)

// String returns a human-readable representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "CRITICAL"
	case SeverityMajor:
		return "MAJOR"
	case SeverityMinor:
		return "MINOR"
	default:
		return "UNKNOWN"
	}
}

// FontError is one diagnostic found in a font's table directory. Fonts in
// the wild frequently bend the specification in recoverable ways;
// diagnostics record such findings without failing the parse.
type FontError struct {
	Table    view.Tag // table record the issue belongs to (zero tag: the directory itself)
	Issue    string   // human-readable description
	Severity Severity
	Offset   uint32 // byte offset in the font file, 0 if unknown
}

// Error implements the error interface.
func (e FontError) Error() string {
	if e.Offset > 0 {
		return fmt.Sprintf("[%s] %s at offset %d: %s", e.Severity, e.Table, e.Offset, e.Issue)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Severity, e.Table, e.Issue)
}

// TableMissingError is returned by FontRef.Table for a tag the font does
// not contain.
type TableMissingError struct {
	Tag view.Tag
}

func (e TableMissingError) Error() string {
	return fmt.Sprintf("font contains no '%s' table", e.Tag)
}

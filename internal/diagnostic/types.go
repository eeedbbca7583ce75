package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"pluginscan/internal/common"
)

// Codes identifying the kinds of load diagnostics.
const (
	// CodeMissingImport marks a package that failed because a required
	// module is not available.
	CodeMissingImport = "missing-import"
	// CodeLoadFailed marks any other list, parse, or type error.
	CodeLoadFailed = "load-failed"
)

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Diagnostic represents a single load report.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// PkgPath identifies the package the report relates to.
	PkgPath string
	// Message is the human-readable description.
	Message string
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if d.PkgPath != "" {
		return d.PkgPath + ": " + msg
	}

	return msg
}

// Diagnostics accumulates load reports for one call.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, pkgPath, message string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		PkgPath:  pkgPath,
		Message:  message,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, pkgPath, message string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		PkgPath:  pkgPath,
		Message:  message,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
}

// Error returns a combined error from all error diagnostics, or nil if clean.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

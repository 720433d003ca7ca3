package diagnostic

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	"stub-generator/internal/common"
)

// Diagnostic codes.
const (
	CodeParse            = "parse_error"
	CodeMissingField     = "missing_field"
	CodeInvalidIdent     = "invalid_identifier"
	CodeInvalidExpr      = "invalid_expression"
	CodeBodyForm         = "invalid_body_form"
	CodeEmptyTags        = "empty_tags"
	CodeUnknownTag       = "unknown_tag"
	CodeDuplicateMethod  = "duplicate_method"
	CodeIncompleteMethod = "incomplete_method_set"
	CodeTypeMismatch     = "type_mismatch"
	CodeUnattributed     = "type_error"
)

// Diagnostics holds all diagnostic information from a run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Serializer is the receiver type the diagnostic relates to (if any).
	Serializer string
	// Tag is the method tag the diagnostic relates to (if any).
	Tag string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, serializer, tag string, suggestions ...string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity:    SeverityError,
		Code:        code,
		Message:     message,
		Serializer:  serializer,
		Tag:         tag,
		Suggestions: suggestions,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, serializer, tag string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity:   SeverityWarning,
		Code:       code,
		Message:    message,
		Serializer: serializer,
		Tag:        tag,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, serializer, tag string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity:   SeverityInfo,
		Code:       code,
		Message:    message,
		Serializer: serializer,
		Tag:        tag,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other *Diagnostics) {
	if other == nil {
		return
	}

	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// All returns errors, warnings and infos in that order.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.Newf("%s", strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Serializer != "" {
		prefix = append(prefix, "["+d.Serializer+"]")
	}

	if d.Tag != "" {
		prefix = append(prefix, d.Tag)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}

// String renders every diagnostic on its own line, prefixed by severity.
func (d *Diagnostics) String() string {
	var sb strings.Builder
	for _, diag := range d.All() {
		sb.WriteString(diag.Severity.String())
		sb.WriteString(": ")
		sb.WriteString(diag.String())
		sb.WriteByte('\n')
	}

	return sb.String()
}

package driver

import (
	"errors"
	"fmt"
	"strings"

	"groovy/frontend-go/pkg/ast"
	"groovy/frontend-go/pkg/cst"
	"groovy/frontend-go/pkg/lowering"
)

// DiagnosticSeverity captures diagnostic levels.
type DiagnosticSeverity string

const (
	SeverityError   DiagnosticSeverity = "error"
	SeverityWarning DiagnosticSeverity = "warning"
)

// DiagnosticLocation references a source span for diagnostics.
type DiagnosticLocation struct {
	Path      string
	Line      int
	Column    int
	EndLine   int
	EndColumn int
}

// Diagnostic is a located, human-facing failure report. Stage names the
// component that raised it ("lowering", "cst", ...).
type Diagnostic struct {
	Severity DiagnosticSeverity
	Stage    string
	Code     string
	Message  string
	Location DiagnosticLocation
}

// DiagnosticError wraps a diagnostic for error handling.
type DiagnosticError struct {
	Diagnostic Diagnostic
	Err        error
}

func (e *DiagnosticError) Error() string {
	return DescribeDiagnostic(e.Diagnostic)
}

func (e *DiagnosticError) Unwrap() error {
	return e.Err
}

// DiagnosticFromError converts err into a diagnostic attributed to path.
// Lowering failures and syntax errors carry their span; anything else is
// reported without a location.
func DiagnosticFromError(path string, err error) Diagnostic {
	diag := Diagnostic{
		Severity: SeverityError,
		Location: DiagnosticLocation{Path: path},
	}
	if err == nil {
		return diag
	}
	var lowerErr *lowering.Error
	var syntaxErr *cst.SyntaxError
	switch {
	case errors.As(err, &lowerErr):
		diag.Stage = "lowering"
		diag.Code = ErrorCode(lowerErr)
		diag.Message = lowerErr.Message
		diag.Location = locationFromSpan(path, lowerErr.Span)
	case errors.As(err, &syntaxErr):
		diag.Stage = "cst"
		diag.Code = "syntax-error"
		diag.Message = syntaxErr.Message
		diag.Location = locationFromSpan(path, syntaxErr.Span)
	default:
		diag.Message = err.Error()
		if stage, _, ok := strings.Cut(diag.Message, ":"); ok && !strings.ContainsAny(stage, " /\\") {
			diag.Stage = stage
		}
	}
	return diag
}

// ErrorCode names a lowering failure by its reason, or by its category when
// it has no finer reason.
func ErrorCode(err *lowering.Error) string {
	if err == nil {
		return ""
	}
	if err.Reason != "" {
		return err.Reason
	}
	return string(err.Category)
}

func locationFromSpan(path string, span ast.Span) DiagnosticLocation {
	return DiagnosticLocation{
		Path:      path,
		Line:      span.Start.Line,
		Column:    span.Start.Column,
		EndLine:   span.End.Line,
		EndColumn: span.End.Column,
	}
}

// DescribeDiagnostic formats a diagnostic for CLI output.
func DescribeDiagnostic(diag Diagnostic) string {
	message := strings.TrimSpace(diag.Message)
	stage := strings.TrimSpace(diag.Stage)
	if stage != "" && strings.HasPrefix(message, stage+":") {
		message = strings.TrimSpace(strings.TrimPrefix(message, stage+":"))
	}
	prefix := ""
	if stage != "" {
		prefix = stage + ": "
	}
	if diag.Severity == SeverityWarning {
		prefix = "warning: " + prefix
	}
	location := formatDiagnosticLocation(diag.Location)
	if location != "" {
		return fmt.Sprintf("%s%s %s", prefix, location, message)
	}
	return fmt.Sprintf("%s%s", prefix, message)
}

func formatDiagnosticLocation(loc DiagnosticLocation) string {
	path := strings.TrimSpace(loc.Path)
	line := loc.Line
	column := loc.Column
	switch {
	case path != "" && line > 0 && column > 0:
		return fmt.Sprintf("%s:%d:%d", path, line, column)
	case path != "" && line > 0:
		return fmt.Sprintf("%s:%d", path, line)
	case path != "":
		return path
	case line > 0 && column > 0:
		return fmt.Sprintf("line %d, column %d", line, column)
	case line > 0:
		return fmt.Sprintf("line %d", line)
	default:
		return ""
	}
}

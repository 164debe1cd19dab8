package driver

import (
	"fmt"
	"strings"

	"github.com/avaunit02/lang/pkg/typechecker"
)

// DiagnosticLocation references a position in a program fixture.
type DiagnosticLocation struct {
	Path   string
	Line   int
	Column int
}

// DescribeDiagnostic formats a checker diagnostic for CLI output, e.g.
// "typechecker: prog.yml:4:7 T0301 type-mismatch: cannot assign bool to x".
func DescribeDiagnostic(path string, diag *typechecker.Diagnostic) string {
	if diag == nil {
		return ""
	}
	location := formatDiagnosticLocation(diagnosticLocation(path, diag))
	label := fmt.Sprintf("%s %s", diag.Kind.Code(), diag.Kind.Slug())
	message := diagnosticMessage(diag)
	if location != "" {
		return fmt.Sprintf("typechecker: %s %s: %s", location, label, message)
	}
	return fmt.Sprintf("typechecker: %s: %s", label, message)
}

func diagnosticLocation(path string, diag *typechecker.Diagnostic) DiagnosticLocation {
	loc := DiagnosticLocation{Path: path}
	if !diag.Span.IsZero() {
		loc.Line = diag.Span.Start.Line
		loc.Column = diag.Span.Start.Column
	}
	return loc
}

func diagnosticMessage(diag *typechecker.Diagnostic) string {
	message := strings.TrimSpace(diag.Message)
	return strings.TrimSpace(strings.TrimPrefix(message, "typechecker:"))
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

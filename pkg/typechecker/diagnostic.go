package typechecker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/avaunit02/lang/pkg/ast"
	"github.com/avaunit02/lang/pkg/types"
)

// Diagnostic is a single rule violation found by the checker.
type Diagnostic struct {
	Kind    ErrorKind
	Message string
	Node    ast.Node
	Span    ast.Span
	// Name is the spelling of the offending identifier, if any.
	Name     string
	Expected types.Type
	Actual   types.Type
	// Cause is the scope or registry error behind the diagnostic, if any.
	Cause error
}

func (d *Diagnostic) Error() string {
	return d.Message
}

func (d *Diagnostic) Unwrap() error {
	return d.Cause
}

// Diagnostics is returned when the checker runs in accumulating mode.
type Diagnostics []*Diagnostic

func (ds Diagnostics) Error() string {
	switch len(ds) {
	case 0:
		return "typechecker: no diagnostics"
	case 1:
		return ds[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "typechecker: %d errors", len(ds))
	for _, d := range ds {
		b.WriteString("\n\t")
		b.WriteString(d.Error())
	}
	return b.String()
}

// Kinds lists the kind of every diagnostic in order.
func (ds Diagnostics) Kinds() []ErrorKind {
	out := make([]ErrorKind, len(ds))
	for i, d := range ds {
		out[i] = d.Kind
	}
	return out
}

// AsDiagnostics flattens a checker error into its diagnostics. It returns
// nil for errors that did not come from a rule violation.
func AsDiagnostics(err error) Diagnostics {
	if err == nil {
		return nil
	}
	var many Diagnostics
	if errors.As(err, &many) {
		return many
	}
	var one *Diagnostic
	if errors.As(err, &one) {
		return Diagnostics{one}
	}
	return nil
}

package typechecker

import (
	"errors"
	"testing"

	"github.com/avaunit02/lang/pkg/ast"
)

func check(t *testing.T, b *ast.Builder, opts Options, statements ...ast.Statement) (*Result, error) {
	t.Helper()
	return New(opts).Check(ast.Prog(statements...), b.Symbols)
}

func expectOK(t *testing.T, b *ast.Builder, statements ...ast.Statement) *Result {
	t.Helper()
	result, err := check(t, b, Options{}, statements...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return result
}

func expectKind(t *testing.T, b *ast.Builder, want ErrorKind, statements ...ast.Statement) *Diagnostic {
	t.Helper()
	_, err := check(t, b, Options{}, statements...)
	return requireKind(t, err, want)
}

func requireKind(t *testing.T, err error, want ErrorKind) *Diagnostic {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s, got no error", want)
	}
	var diag *Diagnostic
	if !errors.As(err, &diag) {
		t.Fatalf("expected %s diagnostic, got %v", want, err)
	}
	if diag.Kind != want {
		t.Fatalf("expected %s, got %s (%s)", want, diag.Kind, diag.Message)
	}
	return diag
}

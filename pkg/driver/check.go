package driver

import (
	"fmt"
	"strings"

	"github.com/avaunit02/lang/pkg/typechecker"
)

// CheckResult is the outcome of checking one program.
type CheckResult struct {
	Program     *Program
	Result      *typechecker.Result
	Diagnostics typechecker.Diagnostics
}

// OK reports whether the program checked cleanly.
func (r *CheckResult) OK() bool {
	return r != nil && len(r.Diagnostics) == 0
}

// Check runs the checker over program. Rule violations are returned in the
// result; the error is reserved for malformed input.
func Check(program *Program, opts typechecker.Options) (*CheckResult, error) {
	if program == nil || program.AST == nil {
		return nil, fmt.Errorf("driver: nil program")
	}
	result, err := typechecker.New(opts).Check(program.AST, program.Symbols)
	out := &CheckResult{Program: program, Result: result}
	if err != nil {
		diags := typechecker.AsDiagnostics(err)
		if diags == nil {
			return nil, fmt.Errorf("driver: check %s: %w", program.Path, err)
		}
		out.Diagnostics = diags
	}
	return out, nil
}

// Verify compares the reported diagnostic kinds with the fixture's expect
// list.
func (r *CheckResult) Verify() error {
	want := r.Program.Expect
	got := r.Diagnostics.Kinds()
	if len(want) == len(got) {
		same := true
		for i := range want {
			if want[i] != got[i] {
				same = false
				break
			}
		}
		if same {
			return nil
		}
	}
	return fmt.Errorf("driver: %s: expected [%s], got [%s]", r.Program.Path, slugList(want), slugList(got))
}

func slugList(kinds []typechecker.ErrorKind) string {
	parts := make([]string, len(kinds))
	for i, kind := range kinds {
		parts[i] = kind.Slug()
	}
	return strings.Join(parts, ", ")
}

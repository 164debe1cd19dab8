package typechecker

import (
	"errors"
	"testing"

	"github.com/go-test/deep"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/avaunit02/lang/pkg/ast"
	"github.com/avaunit02/lang/pkg/types"
)

func TestAccumulateReportsEveryFailingStatement(t *testing.T) {
	b := ast.NewBuilder(nil)
	_, err := check(t, b, Options{Mode: ModeAccumulate},
		b.Var("x", ast.Prim(types.U8), ast.Bool(true)),
		b.Assign("x", ast.Int(1)),
		b.Fn("f", nil, ast.Prim(types.Bool),
			b.Assign("missing", ast.Int(1)),
			ast.Ret(ast.Int(2)),
		),
		ast.Break(nil),
		ast.Bin(ast.OpAdd, ast.Int(1), ast.Bool(true)),
	)
	diags := AsDiagnostics(err)
	want := []ErrorKind{TypeMismatch, UndeclaredVariable, ReturnTypeMismatch, BreakOutsideLoop, OperandTypeMismatch}
	if diff := deep.Equal(diags.Kinds(), want); diff != nil {
		t.Fatalf("unexpected kinds: %v", diff)
	}
	var many Diagnostics
	if !errors.As(err, &many) {
		t.Fatalf("expected Diagnostics error, got %T", err)
	}
}

func TestAccumulateDeclaresFailedVariable(t *testing.T) {
	b := ast.NewBuilder(nil)
	_, err := check(t, b, Options{Mode: ModeAccumulate},
		b.Var("x", ast.Prim(types.U8), b.ID("nope")),
		b.Assign("x", ast.Int(1)),
	)
	diags := AsDiagnostics(err)
	if diff := deep.Equal(diags.Kinds(), []ErrorKind{UndeclaredVariable}); diff != nil {
		t.Fatalf("unexpected kinds: %v", diff)
	}
}

func TestAccumulateKeepsScopesBalanced(t *testing.T) {
	b := ast.NewBuilder(nil)
	_, err := check(t, b, Options{Mode: ModeAccumulate},
		ast.While(ast.Bool(true), ast.Blk(
			b.Var("inner", ast.Prim(types.U8), ast.Int(1)),
			ast.Ret(nil),
		)),
		b.Assign("inner", ast.Int(2)),
	)
	diags := AsDiagnostics(err)
	if diff := deep.Equal(diags.Kinds(), []ErrorKind{ReturnOutsideFunction, UndeclaredVariable}); diff != nil {
		t.Fatalf("unexpected kinds: %v", diff)
	}
}

func TestAccumulateVisitsBlocksBehindFailedHeaders(t *testing.T) {
	b := ast.NewBuilder(nil)
	_, err := check(t, b, Options{Mode: ModeAccumulate},
		ast.If(ast.Int(1), ast.Blk(b.Var("y", ast.Prim(types.U32), ast.Bool(true)))),
		ast.While(ast.Flt(1), ast.Blk(ast.Continue(), b.Assign("missing", ast.Int(1)))),
		ast.For(b.Var("i", ast.Prim(types.Bool), ast.Int(0)), b.ID("i"), nil, ast.Blk(ast.Break(ast.Int(1)))),
	)
	want := []ErrorKind{
		NonBooleanCondition, TypeMismatch,
		NonBooleanCondition, UndeclaredVariable,
		TypeMismatch, BreakValueNotAllowed,
	}
	if diff := deep.Equal(AsDiagnostics(err).Kinds(), want); diff != nil {
		t.Fatalf("unexpected kinds: %v", diff)
	}

	// Fail-fast still stops at the condition.
	b = ast.NewBuilder(nil)
	expectKind(t, b, NonBooleanCondition,
		ast.If(ast.Int(1), ast.Blk(b.Var("y", ast.Prim(types.U32), ast.Bool(true)))),
	)
}

func TestAccumulateSingleDiagnosticMessage(t *testing.T) {
	b := ast.NewBuilder(nil)
	_, err := check(t, b, Options{Mode: ModeAccumulate}, ast.Continue())
	diags := AsDiagnostics(err)
	if len(diags) != 1 || err.Error() != diags[0].Message {
		t.Fatalf("expected a single diagnostic message, got %q", err.Error())
	}
}

func TestMaxDiagnosticsStopsTheWalk(t *testing.T) {
	b := ast.NewBuilder(nil)
	_, err := check(t, b, Options{Mode: ModeAccumulate, MaxDiagnostics: 2},
		ast.Break(nil),
		ast.Continue(),
		ast.Ret(nil),
	)
	if got := len(AsDiagnostics(err)); got != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", got)
	}
}

func TestFailFastStopsAtFirstViolation(t *testing.T) {
	b := ast.NewBuilder(nil)
	_, err := check(t, b, Options{}, ast.Break(nil), ast.Continue())
	diags := AsDiagnostics(err)
	if diff := deep.Equal(diags.Kinds(), []ErrorKind{BreakOutsideLoop}); diff != nil {
		t.Fatalf("unexpected kinds: %v", diff)
	}
}

func TestInternalErrorsAbortAccumulation(t *testing.T) {
	b := ast.NewBuilder(nil)
	_, err := check(t, b, Options{Mode: ModeAccumulate},
		ast.Break(nil),
		b.Var("x", ast.Prim(types.U8), nil),
		ast.Continue(),
	)
	if err == nil || AsDiagnostics(err) != nil {
		t.Fatalf("expected plain error, got %v", err)
	}
}

func TestHoistingAllowsForwardCalls(t *testing.T) {
	b := ast.NewBuilder(nil)
	result, err := check(t, b, Options{HoistFunctions: true},
		b.Fn("a", nil, b.Named("count"), ast.Ret(b.Call("b"))),
		b.TypeDef("count", ast.Prim(types.U32)),
		b.Fn("b", nil, b.Named("count"), ast.Ret(ast.Int(1))),
	)
	// Type definitions are hoisted in document order too, so "count" is
	// not visible to a's signature.
	requireKind(t, err, UndefinedType)
	if result == nil {
		t.Fatalf("expected partial result")
	}

	b = ast.NewBuilder(nil)
	result, err = check(t, b, Options{HoistFunctions: true},
		b.TypeDef("count", ast.Prim(types.U32)),
		b.Fn("a", nil, b.Named("count"), ast.Ret(b.Call("b"))),
		b.Fn("b", nil, b.Named("count"), ast.Ret(ast.Int(1))),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"a", "b"}
	var got []string
	for _, id := range result.Functions.Keys() {
		got = append(got, b.Symbols.Name(id))
	}
	if diff := deep.Equal(got, want); diff != nil {
		t.Fatalf("unexpected registration order: %v", diff)
	}
	if len(result.NamedTypes) != 1 {
		t.Fatalf("expected hoisted type to be recorded once, got %d", len(result.NamedTypes))
	}
}

func TestHoistingReportsDuplicatesOnce(t *testing.T) {
	b := ast.NewBuilder(nil)
	_, err := check(t, b, Options{Mode: ModeAccumulate, HoistFunctions: true},
		b.Fn("f", nil, nil),
		b.Fn("f", nil, nil),
	)
	diags := AsDiagnostics(err)
	if diff := deep.Equal(diags.Kinds(), []ErrorKind{DuplicateDefinition}); diff != nil {
		t.Fatalf("unexpected kinds: %v", diff)
	}
}

func TestHoistingStillChecksScopeCollisions(t *testing.T) {
	b := ast.NewBuilder(nil)
	_, err := check(t, b, Options{HoistFunctions: true},
		b.Var("f", ast.Prim(types.U8), ast.Int(1)),
		b.Fn("f", nil, nil),
	)
	requireKind(t, err, DuplicateDefinition)
}

func TestRejectedHoistedFunctionIsNotCallable(t *testing.T) {
	program := func(b *ast.Builder) []ast.Statement {
		return []ast.Statement{
			b.Var("f", ast.Prim(types.U64), ast.Int(1)),
			b.Fn("f", nil, ast.Prim(types.U64), ast.Ret(ast.Int(2))),
			b.Var("y", ast.Prim(types.U64), b.Call("f")),
		}
	}
	want := []ErrorKind{DuplicateDefinition, UndefinedFunction}
	for _, hoist := range []bool{false, true} {
		b := ast.NewBuilder(nil)
		result, err := check(t, b, Options{Mode: ModeAccumulate, HoistFunctions: hoist}, program(b)...)
		if diff := deep.Equal(AsDiagnostics(err).Kinds(), want); diff != nil {
			t.Fatalf("hoist=%v: unexpected kinds: %v", hoist, diff)
		}
		if result.Functions.Len() != 0 {
			t.Fatalf("hoist=%v: rejected function left in registry", hoist)
		}
	}
}

func TestMaxDepth(t *testing.T) {
	b := ast.NewBuilder(nil)
	var expr ast.Expression = ast.Bool(true)
	for i := 0; i < 20; i++ {
		expr = ast.Not(expr)
	}
	_, err := check(t, b, Options{MaxDepth: 10}, expr)
	requireKind(t, err, NestingTooDeep)

	if _, err := check(t, b, Options{MaxDepth: 30}, expr); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckerLogsDiagnostics(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	b := ast.NewBuilder(nil)
	_, err := check(t, b, Options{Logger: zap.New(core)}, ast.Continue())
	requireKind(t, err, ContinueOutsideLoop)
	entries := logs.FilterMessage("diagnostic").All()
	if len(entries) != 1 {
		t.Fatalf("expected one diagnostic log entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["code"]; got != ContinueOutsideLoop.Code() {
		t.Fatalf("unexpected code field %v", got)
	}
	if entries[0].LoggerName != "typechecker" {
		t.Fatalf("unexpected logger name %q", entries[0].LoggerName)
	}
}

func TestParseMode(t *testing.T) {
	for input, want := range map[string]Mode{"": ModeFailFast, "fail-fast": ModeFailFast, "accumulate": ModeAccumulate} {
		got, err := ParseMode(input)
		if err != nil || got != want {
			t.Fatalf("ParseMode(%q) = %v, %v", input, got, err)
		}
	}
	if _, err := ParseMode("lenient"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

package typechecker

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/avaunit02/lang/pkg/ast"
	"github.com/avaunit02/lang/pkg/symbols"
	"github.com/avaunit02/lang/pkg/types"
)

// InferenceMap records the type of every checked expression.
type InferenceMap map[ast.Expression]types.Type

func (m InferenceMap) set(expr ast.Expression, typ types.Type) {
	if m == nil || expr == nil {
		return
	}
	m[expr] = typ
}

// NamedType is a resolved `type` definition.
type NamedType struct {
	Name       symbols.ID
	Type       types.Type
	Definition *ast.TypeDefinition
}

// Result is what code generation consumes after a successful check. On
// failure it still holds everything inferred before the walk stopped.
type Result struct {
	Types      InferenceMap
	Functions  *Registry[symbols.ID, Signature]
	NamedTypes []NamedType
}

// TypeOf returns the inferred type of expr.
func (r *Result) TypeOf(expr ast.Expression) (types.Type, bool) {
	if r == nil {
		return nil, false
	}
	typ, ok := r.Types[expr]
	return typ, ok
}

// Checker walks a program and either types every expression or reports why
// it cannot. A Checker may be reused; each Check starts from a clean state.
type Checker struct {
	opts  Options
	log   *zap.Logger
	names symbols.Resolver

	infer      InferenceMap
	variables  *Scopes[symbols.ID, types.Type]
	typeNames  *Scopes[symbols.ID, types.Type]
	functions  *Registry[symbols.ID, Signature]
	namedTypes []NamedType

	// hoisted marks statements handled by the pre-pass; false means the
	// pre-pass rejected the statement and the walk skips it.
	hoisted map[ast.Statement]bool

	returnTypeStack []types.Type
	loopCarryStack  []types.Type
	depth           int

	diagnostics Diagnostics
}

var errDiagnosticLimit = errors.New("typechecker: diagnostic limit reached")

// New returns a checker configured by opts.
func New(opts Options) *Checker {
	opts = opts.withDefaults()
	return &Checker{
		opts: opts,
		log:  opts.Logger.Named("typechecker"),
	}
}

// Check typechecks program. names resolves identifiers for messages and is
// never modified. The returned error is a *Diagnostic in fail-fast mode, a
// Diagnostics value in accumulating mode, or a plain error for malformed
// input.
func (c *Checker) Check(program *ast.Program, names symbols.Resolver) (*Result, error) {
	if program == nil {
		return nil, fmt.Errorf("typechecker: program is nil")
	}
	c.reset(names)
	c.log.Debug("check started",
		zap.Int("statements", len(program.Statements)),
		zap.Stringer("mode", c.opts.Mode),
		zap.Bool("hoist", c.opts.HoistFunctions),
	)

	err := c.checkProgram(program)

	result := &Result{
		Types:      c.infer,
		Functions:  c.functions,
		NamedTypes: c.namedTypes,
	}
	if err != nil && !errors.Is(err, errDiagnosticLimit) {
		c.log.Debug("check failed", zap.Error(err))
		return result, err
	}
	if len(c.diagnostics) > 0 {
		c.log.Debug("check failed", zap.Int("diagnostics", len(c.diagnostics)))
		return result, c.diagnostics
	}
	c.log.Debug("check succeeded",
		zap.Int("expressions", len(c.infer)),
		zap.Int("functions", c.functions.Len()),
	)
	return result, nil
}

func (c *Checker) reset(names symbols.Resolver) {
	c.names = names
	c.infer = make(InferenceMap)
	c.variables = NewScopes[symbols.ID, types.Type]()
	c.typeNames = NewScopes[symbols.ID, types.Type]()
	c.functions = NewRegistry[symbols.ID, Signature]()
	c.namedTypes = nil
	c.hoisted = make(map[ast.Statement]bool)
	c.returnTypeStack = nil
	c.loopCarryStack = nil
	c.depth = 0
	c.diagnostics = nil
}

func (c *Checker) checkProgram(program *ast.Program) error {
	c.pushScope()
	defer c.popScope()
	if c.opts.HoistFunctions {
		if err := c.hoistDeclarations(program); err != nil {
			return err
		}
	}
	return c.checkStatements(program.Statements)
}

// absorb decides whether a statement-level failure ends the walk.
func (c *Checker) absorb(err error) error {
	var diag *Diagnostic
	if c.opts.Mode != ModeAccumulate || !errors.As(err, &diag) {
		return err
	}
	c.diagnostics = append(c.diagnostics, diag)
	if c.opts.MaxDiagnostics > 0 && len(c.diagnostics) >= c.opts.MaxDiagnostics {
		return errDiagnosticLimit
	}
	return nil
}

func (c *Checker) fail(kind ErrorKind, node ast.Node, format string, args ...any) *Diagnostic {
	d := &Diagnostic{
		Kind:    kind,
		Message: "typechecker: " + fmt.Sprintf(format, args...),
		Node:    node,
	}
	if node != nil {
		d.Span = node.Span()
	}
	c.log.Debug("diagnostic",
		zap.String("code", kind.Code()),
		zap.Stringer("kind", kind),
		zap.String("message", d.Message),
	)
	return d
}

func (c *Checker) mismatch(kind ErrorKind, node ast.Node, expected, actual types.Type, format string, args ...any) *Diagnostic {
	d := c.fail(kind, node, format, args...)
	d.Expected = expected
	d.Actual = actual
	return d
}

func (c *Checker) render(t types.Type) string {
	return types.Render(t, c.names)
}

func (c *Checker) name(id symbols.ID) string {
	if c.names == nil {
		return fmt.Sprintf("#%d", id)
	}
	return c.names.Name(id)
}

func (c *Checker) failName(kind ErrorKind, node ast.Node, id symbols.ID, format string, args ...any) *Diagnostic {
	d := c.fail(kind, node, format, args...)
	d.Name = c.name(id)
	return d
}

package typechecker

import (
	"fmt"

	"github.com/avaunit02/lang/pkg/ast"
	"github.com/avaunit02/lang/pkg/types"
)

// checkExpression types expr and records the result in the inference map.
func (c *Checker) checkExpression(expr ast.Expression) (types.Type, error) {
	if expr == nil {
		return nil, fmt.Errorf("typechecker: nil expression")
	}
	c.depth++
	defer func() { c.depth-- }()
	if c.depth > c.opts.MaxDepth {
		return nil, c.fail(NestingTooDeep, expr, "nesting exceeds %d levels", c.opts.MaxDepth)
	}

	var (
		typ types.Type
		err error
	)
	switch e := expr.(type) {
	case *ast.Identifier:
		typ, err = c.checkIdentifier(e)
	case *ast.IntegerLiteral:
		typ = types.U64
	case *ast.FloatLiteral:
		typ = types.F64
	case *ast.BooleanLiteral:
		typ = types.Bool
	case *ast.FunctionCall:
		typ, err = c.checkFunctionCall(e)
	case *ast.BinaryExpression:
		typ, err = c.checkBinaryExpression(e)
	case *ast.UnaryExpression:
		typ, err = c.checkUnaryExpression(e)
	default:
		return nil, fmt.Errorf("typechecker: unsupported expression %s", expr.NodeType())
	}
	if err != nil {
		return nil, err
	}
	c.infer.set(expr, typ)
	return typ, nil
}

func (c *Checker) checkIdentifier(id *ast.Identifier) (types.Type, error) {
	typ, ok := c.variables.Lookup(id.Name)
	if !ok {
		d := c.failName(UndeclaredVariable, id, id.Name, "undeclared variable %s", c.name(id.Name))
		d.Cause = ErrUndeclared
		return nil, d
	}
	return typ, nil
}

// checkFunctionCall resolves the callee through the registry, never through
// the variable scopes.
func (c *Checker) checkFunctionCall(call *ast.FunctionCall) (types.Type, error) {
	sig, ok := c.functions.Lookup(call.Callee)
	if !ok {
		return nil, c.failName(UndefinedFunction, call, call.Callee, "undefined function %s", c.name(call.Callee))
	}
	argTypes := make([]types.Type, len(call.Arguments))
	for i, arg := range call.Arguments {
		var expected types.Type
		if i < len(sig.Params) {
			expected = sig.Params[i]
		}
		typ, err := c.checkExpressionExpecting(arg, expected)
		if err != nil {
			return nil, err
		}
		argTypes[i] = typ
	}
	if len(argTypes) != len(sig.Params) {
		return nil, c.failName(ArgumentCountMismatch, call, call.Callee,
			"%s expects %d arguments, got %d", c.name(call.Callee), len(sig.Params), len(argTypes))
	}
	for i, param := range sig.Params {
		if !types.Equal(param, argTypes[i]) {
			d := c.mismatch(ArgumentTypeMismatch, call.Arguments[i], param, argTypes[i],
				"argument %d to %s: expected %s, got %s", i+1, c.name(call.Callee), c.render(param), c.render(argTypes[i]))
			d.Name = c.name(call.Callee)
			return nil, d
		}
	}
	return sig.Return, nil
}

func (c *Checker) checkUnaryExpression(expr *ast.UnaryExpression) (types.Type, error) {
	operand, err := c.checkExpression(expr.Operand)
	if err != nil {
		return nil, err
	}
	switch expr.Operator {
	case ast.OpBitNot:
		if !types.IsInteger(operand) {
			return nil, c.mismatch(BitwiseNotOperandNotInteger, expr, nil, operand,
				"operand of ~ must be an integer, got %s", c.render(operand))
		}
	case ast.OpNot:
		if !types.IsBool(operand) {
			return nil, c.mismatch(LogicalNotOperandNotBoolean, expr, types.Bool, operand,
				"operand of ! must be bool, got %s", c.render(operand))
		}
	default:
		return nil, fmt.Errorf("typechecker: unsupported unary operator %q", string(expr.Operator))
	}
	return operand, nil
}

package typechecker

import (
	"fmt"

	"github.com/avaunit02/lang/pkg/ast"
	"github.com/avaunit02/lang/pkg/types"
)

// checkBinaryExpression evaluates both operands, then applies the rule of
// the operator's class. Within a class the mismatch check precedes the
// classification check.
func (c *Checker) checkBinaryExpression(expr *ast.BinaryExpression) (types.Type, error) {
	class := expr.Operator.Class()
	if class == ast.ClassInvalid {
		return nil, fmt.Errorf("typechecker: unsupported binary operator %q", string(expr.Operator))
	}
	left, err := c.checkExpression(expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := c.checkExpression(expr.Right)
	if err != nil {
		return nil, err
	}
	op := string(expr.Operator)

	switch class {
	case ast.ClassArithmetic:
		if !types.Equal(left, right) {
			return nil, c.mismatch(OperandTypeMismatch, expr, left, right,
				"operands of %s must have the same type, got %s and %s", op, c.render(left), c.render(right))
		}
		if !types.IsNumber(left) {
			return nil, c.mismatch(NotANumber, expr, nil, left, "operands of %s must be numbers, got %s", op, c.render(left))
		}
		return left, nil

	case ast.ClassShift:
		if !types.IsInteger(left) {
			return nil, c.mismatch(ShiftOperandNotInteger, expr.Left, nil, left,
				"left operand of %s must be an integer, got %s", op, c.render(left))
		}
		if !types.IsInteger(right) {
			return nil, c.mismatch(ShiftOperandNotInteger, expr.Right, nil, right,
				"right operand of %s must be an integer, got %s", op, c.render(right))
		}
		return left, nil

	case ast.ClassBitwise:
		if !types.Equal(left, right) {
			return nil, c.mismatch(BitwiseTypeMismatch, expr, left, right,
				"operands of %s must have the same type, got %s and %s", op, c.render(left), c.render(right))
		}
		if !types.IsInteger(left) {
			return nil, c.mismatch(BitwiseOperandNotInteger, expr, nil, left,
				"operands of %s must be integers, got %s", op, c.render(left))
		}
		return left, nil

	case ast.ClassLogical:
		if !types.IsBool(left) {
			return nil, c.mismatch(LogicalOperandNotBoolean, expr.Left, types.Bool, left,
				"left operand of %s must be bool, got %s", op, c.render(left))
		}
		if !types.IsBool(right) {
			return nil, c.mismatch(LogicalOperandNotBoolean, expr.Right, types.Bool, right,
				"right operand of %s must be bool, got %s", op, c.render(right))
		}
		return types.Bool, nil

	case ast.ClassEquality:
		if !types.Equal(left, right) {
			return nil, c.mismatch(EqualityTypeMismatch, expr, left, right,
				"cannot compare %s with %s", c.render(left), c.render(right))
		}
		return types.Bool, nil

	case ast.ClassOrdering:
		if !types.Equal(left, right) {
			return nil, c.mismatch(OrderingTypeMismatch, expr, left, right,
				"cannot order %s against %s", c.render(left), c.render(right))
		}
		if !types.IsNumber(left) {
			return nil, c.mismatch(NotANumber, expr, nil, left, "operands of %s must be numbers, got %s", op, c.render(left))
		}
		return types.Bool, nil
	}
	return nil, fmt.Errorf("typechecker: unhandled operator class %s", class)
}

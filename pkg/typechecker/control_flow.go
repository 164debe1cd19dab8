package typechecker

import (
	"fmt"

	"github.com/avaunit02/lang/pkg/ast"
	"github.com/avaunit02/lang/pkg/types"
)

func (c *Checker) checkIfStatement(stmt *ast.IfStatement) error {
	if len(stmt.Conditions) == 0 {
		return fmt.Errorf("typechecker: if statement without condition")
	}
	if n := len(stmt.Blocks); n != len(stmt.Conditions) && n != len(stmt.Conditions)+1 {
		return fmt.Errorf("typechecker: if statement has %d conditions and %d blocks", len(stmt.Conditions), n)
	}
	for _, cond := range stmt.Conditions {
		if err := c.continueAfter(c.checkCondition(cond)); err != nil {
			return err
		}
	}
	// Every branch is checked; nothing is pruned.
	for _, block := range stmt.Blocks {
		if err := c.checkScopedBlock(block); err != nil {
			return err
		}
	}
	return nil
}

func (c *Checker) checkWhileLoop(loop *ast.WhileLoop) error {
	if err := c.continueAfter(c.checkCondition(loop.Condition)); err != nil {
		return err
	}
	return c.checkLoopBody(loop.Body)
}

// checkForLoop opens one level for the init statement, visible to the
// condition, the post statement and the body.
func (c *Checker) checkForLoop(loop *ast.ForLoop) error {
	c.pushScope()
	defer c.popScope()
	if loop.Init != nil {
		if err := c.continueAfter(c.checkStatement(loop.Init)); err != nil {
			return err
		}
	}
	if loop.Condition != nil {
		if err := c.continueAfter(c.checkCondition(loop.Condition)); err != nil {
			return err
		}
	}
	if loop.Post != nil {
		if err := c.continueAfter(c.checkStatement(loop.Post)); err != nil {
			return err
		}
	}
	return c.checkLoopBody(loop.Body)
}

// checkLoopBody visits body in its own level inside a loop context. Loops
// produce no value, so the carry type is unset.
func (c *Checker) checkLoopBody(body *ast.Block) error {
	c.pushLoopContext(nil)
	defer c.popLoopContext()
	return c.checkScopedBlock(body)
}

// continueAfter lets an accumulating check record a failed loop or branch
// header and still visit the blocks it guards.
func (c *Checker) continueAfter(err error) error {
	if err == nil {
		return nil
	}
	return c.absorb(err)
}

func (c *Checker) checkCondition(cond ast.Expression) error {
	if cond == nil {
		return fmt.Errorf("typechecker: missing condition")
	}
	typ, err := c.checkExpression(cond)
	if err != nil {
		return err
	}
	if !types.IsBool(typ) {
		return c.mismatch(NonBooleanCondition, cond, types.Bool, typ, "condition must be bool, got %s", c.render(typ))
	}
	return nil
}

func (c *Checker) checkReturnStatement(stmt *ast.ReturnStatement) error {
	expected, ok := c.currentReturnType()
	if !ok {
		return c.fail(ReturnOutsideFunction, stmt, "return outside of a function")
	}
	var actual types.Type = types.Void
	if stmt.Argument != nil {
		typ, err := c.checkExpressionExpecting(stmt.Argument, expected)
		if err != nil {
			return err
		}
		actual = typ
	}
	if !types.Equal(expected, actual) {
		return c.mismatch(ReturnTypeMismatch, stmt, expected, actual,
			"return type mismatch: expected %s, got %s", c.render(expected), c.render(actual))
	}
	return nil
}

func (c *Checker) checkBreakStatement(stmt *ast.BreakStatement) error {
	if !c.inLoopContext() {
		return c.fail(BreakOutsideLoop, stmt, "break outside of a loop")
	}
	if stmt.Value == nil {
		return nil
	}
	typ, err := c.checkExpression(stmt.Value)
	if err != nil {
		return err
	}
	carry := c.currentLoopCarry()
	if carry == nil {
		return c.mismatch(BreakValueNotAllowed, stmt, nil, typ, "break cannot carry a value (got %s)", c.render(typ))
	}
	if !types.Equal(carry, typ) {
		return c.mismatch(TypeMismatch, stmt.Value, carry, typ,
			"break value must be %s, got %s", c.render(carry), c.render(typ))
	}
	return nil
}

func (c *Checker) checkContinueStatement(stmt *ast.ContinueStatement) error {
	if !c.inLoopContext() {
		return c.fail(ContinueOutsideLoop, stmt, "continue outside of a loop")
	}
	return nil
}

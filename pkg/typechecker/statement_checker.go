package typechecker

import (
	"errors"
	"fmt"

	"github.com/avaunit02/lang/pkg/ast"
	"github.com/avaunit02/lang/pkg/types"
)

// checkStatements visits statements in order. In accumulating mode a
// failing statement is recorded and the next one is visited.
func (c *Checker) checkStatements(statements []ast.Statement) error {
	for _, stmt := range statements {
		if err := c.checkStatement(stmt); err != nil {
			if err := c.absorb(err); err != nil {
				return err
			}
		}
	}
	return nil
}

// checkBlock visits a block in the current level. Callers own the scope.
func (c *Checker) checkBlock(block *ast.Block) error {
	if block == nil {
		return fmt.Errorf("typechecker: missing block")
	}
	return c.checkStatements(block.Statements)
}

// checkScopedBlock visits block inside a fresh level.
func (c *Checker) checkScopedBlock(block *ast.Block) error {
	c.pushScope()
	defer c.popScope()
	return c.checkBlock(block)
}

func (c *Checker) checkStatement(stmt ast.Statement) error {
	if stmt == nil {
		return fmt.Errorf("typechecker: nil statement")
	}
	c.depth++
	defer func() { c.depth-- }()
	if c.depth > c.opts.MaxDepth {
		return c.fail(NestingTooDeep, stmt, "nesting exceeds %d levels", c.opts.MaxDepth)
	}

	switch s := stmt.(type) {
	case *ast.Block:
		return c.checkScopedBlock(s)
	case *ast.IfStatement:
		return c.checkIfStatement(s)
	case *ast.WhileLoop:
		return c.checkWhileLoop(s)
	case *ast.ForLoop:
		return c.checkForLoop(s)
	case *ast.FunctionDefinition:
		return c.checkFunctionDefinition(s)
	case *ast.ReturnStatement:
		return c.checkReturnStatement(s)
	case *ast.BreakStatement:
		return c.checkBreakStatement(s)
	case *ast.ContinueStatement:
		return c.checkContinueStatement(s)
	case *ast.VariableDefinition:
		return c.checkVariableDefinition(s)
	case *ast.Assignment:
		return c.checkAssignment(s)
	case *ast.TypeDefinition:
		return c.checkTypeDefinition(s)
	case ast.Expression:
		_, err := c.checkExpression(s)
		return err
	default:
		return fmt.Errorf("typechecker: unsupported statement %s", stmt.NodeType())
	}
}

func (c *Checker) checkVariableDefinition(def *ast.VariableDefinition) error {
	if def.Value == nil {
		return fmt.Errorf("typechecker: variable %s has no initializer", c.name(def.Name))
	}
	declared, err := c.resolveType(def.Type)
	if err != nil {
		return err
	}
	if types.IsVoid(declared) {
		return c.failName(VoidVariable, def, def.Name, "variable %s cannot have type void", c.name(def.Name))
	}
	valueType, err := c.checkExpressionExpecting(def.Value, declared)
	if err != nil {
		// Keep the name visible so later statements do not cascade.
		_ = c.variables.Declare(def.Name, declared)
		return err
	}
	if err := c.variables.Declare(def.Name, declared); err != nil {
		d := c.failName(DuplicateDeclaration, def, def.Name, "%s is already declared in this scope", c.name(def.Name))
		d.Cause = err
		return d
	}
	if !types.Equal(declared, valueType) {
		d := c.mismatch(TypeMismatch, def.Value, declared, valueType,
			"cannot initialize %s of type %s with %s", c.name(def.Name), c.render(declared), c.render(valueType))
		d.Name = c.name(def.Name)
		return d
	}
	return nil
}

func (c *Checker) checkAssignment(assign *ast.Assignment) error {
	declared, ok := c.variables.Lookup(assign.Name)
	if !ok {
		d := c.failName(UndeclaredVariable, assign, assign.Name, "undeclared variable %s", c.name(assign.Name))
		d.Cause = ErrUndeclared
		return d
	}
	if assign.Value == nil {
		return fmt.Errorf("typechecker: assignment to %s has no value", c.name(assign.Name))
	}
	valueType, err := c.checkExpressionExpecting(assign.Value, declared)
	if err != nil {
		return err
	}
	if err := c.variables.AssignCheck(assign.Name, valueType, types.Equal); err != nil {
		if !errors.Is(err, ErrTypeMismatch) {
			return fmt.Errorf("typechecker: assignment to %s: %w", c.name(assign.Name), err)
		}
		d := c.mismatch(TypeMismatch, assign.Value, declared, valueType,
			"cannot assign %s to %s of type %s", c.render(valueType), c.name(assign.Name), c.render(declared))
		d.Name = c.name(assign.Name)
		d.Cause = err
		return d
	}
	return nil
}

func (c *Checker) checkTypeDefinition(def *ast.TypeDefinition) error {
	if _, handled := c.hoisted[def]; handled {
		return nil
	}
	return c.declareType(def)
}

// declareType resolves def and binds its name in the current type level.
func (c *Checker) declareType(def *ast.TypeDefinition) error {
	typ, err := c.resolveType(def.Type)
	if err != nil {
		return err
	}
	if err := c.typeNames.Declare(def.Name, typ); err != nil {
		d := c.failName(DuplicateType, def, def.Name, "type %s is already defined in this scope", c.name(def.Name))
		d.Cause = err
		return d
	}
	c.namedTypes = append(c.namedTypes, NamedType{Name: def.Name, Type: typ, Definition: def})
	return nil
}

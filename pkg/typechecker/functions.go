package typechecker

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/avaunit02/lang/pkg/ast"
	"github.com/avaunit02/lang/pkg/types"
)

// checkFunctionDefinition binds the function in the current level and in the
// registry, then checks the body with the parameters in a fresh level.
func (c *Checker) checkFunctionDefinition(fn *ast.FunctionDefinition) error {
	registered, handled := c.hoisted[fn]
	if handled && !registered {
		return nil
	}
	if fn.Body == nil {
		return fmt.Errorf("typechecker: function %s has no body", c.name(fn.Name))
	}

	var sig Signature
	if registered {
		sig, _ = c.functions.Lookup(fn.Name)
	} else {
		resolved, err := c.resolveSignature(fn)
		if err != nil {
			return err
		}
		sig = resolved
	}

	if c.variables.DeclaredInCurrent(fn.Name) {
		if registered {
			c.functions.Withdraw(fn.Name)
		}
		d := c.failName(DuplicateDefinition, fn, fn.Name, "%s is already defined in this scope", c.name(fn.Name))
		d.Cause = ErrDuplicateDeclaration
		return d
	}
	if !registered {
		if err := c.registerFunction(fn, sig); err != nil {
			return err
		}
	}
	if err := c.variables.Declare(fn.Name, sig.Return); err != nil {
		return fmt.Errorf("typechecker: declare function %s: %w", c.name(fn.Name), err)
	}

	restore := c.enterFunction(sig.Return)
	defer restore()
	c.pushScope()
	defer c.popScope()
	for i, param := range fn.Params {
		if err := c.variables.Declare(param.Name, sig.Params[i]); err != nil {
			d := c.failName(DuplicateDeclaration, param, param.Name,
				"parameter %s is declared more than once in %s", c.name(param.Name), c.name(fn.Name))
			d.Cause = err
			return d
		}
	}
	return c.checkBlock(fn.Body)
}

// resolveSignature resolves the parameter and return types of fn. A missing
// return type means void.
func (c *Checker) resolveSignature(fn *ast.FunctionDefinition) (Signature, error) {
	sig := Signature{Params: make([]types.Type, len(fn.Params)), Return: types.Void}
	for i, param := range fn.Params {
		if param == nil {
			return Signature{}, fmt.Errorf("typechecker: function %s has a nil parameter", c.name(fn.Name))
		}
		typ, err := c.resolveType(param.Type)
		if err != nil {
			return Signature{}, err
		}
		if types.IsVoid(typ) {
			return Signature{}, c.failName(VoidVariable, param, param.Name,
				"parameter %s cannot have type void", c.name(param.Name))
		}
		sig.Params[i] = typ
	}
	if fn.ReturnType != nil {
		typ, err := c.resolveType(fn.ReturnType)
		if err != nil {
			return Signature{}, err
		}
		sig.Return = typ
	}
	return sig, nil
}

func (c *Checker) registerFunction(fn *ast.FunctionDefinition, sig Signature) error {
	if err := c.functions.Register(fn.Name, sig); err != nil {
		if !errors.Is(err, ErrDuplicateFunction) {
			return fmt.Errorf("typechecker: register %s: %w", c.name(fn.Name), err)
		}
		d := c.failName(DuplicateFunction, fn, fn.Name, "function %s is already defined", c.name(fn.Name))
		d.Cause = err
		return d
	}
	c.log.Debug("function registered",
		zap.String("name", c.name(fn.Name)),
		zap.Int("params", len(sig.Params)),
		zap.String("returns", c.render(sig.Return)),
	)
	return nil
}

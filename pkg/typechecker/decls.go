package typechecker

import (
	"github.com/avaunit02/lang/pkg/ast"
	"github.com/avaunit02/lang/pkg/symbols"
)

// hoistDeclarations resolves top-level type definitions and registers
// top-level function signatures in document order, so calls may precede the
// callee's definition. The walk later skips whatever was handled here.
func (c *Checker) hoistDeclarations(program *ast.Program) error {
	seen := make(map[symbols.ID]struct{})
	for _, stmt := range program.Statements {
		var err error
		switch s := stmt.(type) {
		case *ast.TypeDefinition:
			err = c.declareType(s)
			c.hoisted[s] = err == nil
		case *ast.FunctionDefinition:
			err = c.hoistFunction(s, seen)
			c.hoisted[s] = err == nil
		default:
			continue
		}
		if err != nil {
			if err := c.absorb(err); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Checker) hoistFunction(fn *ast.FunctionDefinition, seen map[symbols.ID]struct{}) error {
	if _, dup := seen[fn.Name]; dup {
		// Both definitions share the outermost level.
		d := c.failName(DuplicateDefinition, fn, fn.Name, "%s is already defined in this scope", c.name(fn.Name))
		d.Cause = ErrDuplicateFunction
		return d
	}
	seen[fn.Name] = struct{}{}
	sig, err := c.resolveSignature(fn)
	if err != nil {
		return err
	}
	return c.registerFunction(fn, sig)
}

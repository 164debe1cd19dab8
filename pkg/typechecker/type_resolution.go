package typechecker

import (
	"fmt"

	"github.com/avaunit02/lang/pkg/ast"
	"github.com/avaunit02/lang/pkg/symbols"
	"github.com/avaunit02/lang/pkg/types"
)

// resolveType turns a type expression into a concrete Type. Named types are
// looked up in the type scopes, innermost first.
func (c *Checker) resolveType(expr ast.TypeExpression) (types.Type, error) {
	if expr == nil {
		return nil, fmt.Errorf("typechecker: missing type")
	}
	c.depth++
	defer func() { c.depth-- }()
	if c.depth > c.opts.MaxDepth {
		return nil, c.fail(NestingTooDeep, expr, "type nesting exceeds %d levels", c.opts.MaxDepth)
	}

	switch t := expr.(type) {
	case *ast.PrimitiveTypeExpression:
		if !t.Primitive.Valid() {
			return nil, fmt.Errorf("typechecker: invalid primitive %d", t.Primitive)
		}
		return t.Primitive, nil
	case *ast.NamedTypeExpression:
		typ, ok := c.typeNames.Lookup(t.Name)
		if !ok {
			return nil, c.failName(UndefinedType, t, t.Name, "undefined type %s", c.name(t.Name))
		}
		return typ, nil
	case *ast.StructTypeExpression:
		fields := make([]types.Field, 0, len(t.Fields))
		seen := make(map[symbols.ID]struct{}, len(t.Fields))
		for _, field := range t.Fields {
			if field == nil {
				return nil, fmt.Errorf("typechecker: nil struct field")
			}
			if _, dup := seen[field.Name]; dup {
				return nil, c.failName(DuplicateField, field, field.Name, "duplicate field %s", c.name(field.Name))
			}
			seen[field.Name] = struct{}{}
			typ, err := c.resolveType(field.Type)
			if err != nil {
				return nil, err
			}
			if types.IsVoid(typ) {
				return nil, c.failName(VoidMember, field, field.Name, "field %s cannot have type void", c.name(field.Name))
			}
			fields = append(fields, types.Field{Type: typ, Name: field.Name})
		}
		return types.NewStruct(fields...), nil
	case *ast.ArrayTypeExpression:
		elem, err := c.resolveType(t.Element)
		if err != nil {
			return nil, err
		}
		if types.IsVoid(elem) {
			return nil, c.fail(VoidMember, t.Element, "array element cannot have type void")
		}
		return types.NewArray(elem, t.Length), nil
	default:
		return nil, fmt.Errorf("typechecker: unsupported type expression %s", expr.NodeType())
	}
}

package driver

import (
	"gopkg.in/yaml.v3"

	"github.com/avaunit02/lang/pkg/ast"
	"github.com/avaunit02/lang/pkg/types"
)

func (d *decoder) statements(n *yaml.Node) ([]ast.Statement, error) {
	if n == nil || n.Kind != yaml.SequenceNode {
		return nil, nodeError(n, "expected a list of statements")
	}
	out := make([]ast.Statement, 0, len(n.Content))
	for _, item := range n.Content {
		stmt, err := d.statement(item)
		if err != nil {
			return nil, err
		}
		out = append(out, stmt)
	}
	return out, nil
}

// block accepts either a Block node or a bare list of statements.
func (d *decoder) block(n *yaml.Node) (*ast.Block, error) {
	if n != nil && n.Kind == yaml.SequenceNode {
		statements, err := d.statements(n)
		if err != nil {
			return nil, err
		}
		return at(ast.NewBlock(statements), n), nil
	}
	obj, err := d.object(n, "statements")
	if err != nil {
		return nil, err
	}
	if typ, _ := nodeType(n); typ != string(ast.NodeBlock) {
		return nil, nodeError(n, "expected Block, got %q", typ)
	}
	statements := []ast.Statement{}
	if body := obj.get("statements"); body != nil {
		statements, err = d.statements(body)
		if err != nil {
			return nil, err
		}
	}
	return at(ast.NewBlock(statements), n), nil
}

func (d *decoder) optionalStatement(o object, key string) (ast.Statement, error) {
	n := o.get(key)
	if n == nil || n.Tag == "!!null" {
		return nil, nil
	}
	return d.statement(n)
}

func (d *decoder) optionalExpression(o object, key string) (ast.Expression, error) {
	n := o.get(key)
	if n == nil || n.Tag == "!!null" {
		return nil, nil
	}
	return d.expression(n)
}

func (d *decoder) statement(n *yaml.Node) (ast.Statement, error) {
	typ, err := nodeType(n)
	if err != nil {
		return nil, err
	}
	switch ast.NodeType(typ) {
	case ast.NodeBlock:
		return d.block(n)

	case ast.NodeIfStatement:
		obj, err := d.object(n, "conditions", "blocks")
		if err != nil {
			return nil, err
		}
		condNode, err := obj.require("conditions")
		if err != nil {
			return nil, err
		}
		blocksNode, err := obj.require("blocks")
		if err != nil {
			return nil, err
		}
		if condNode.Kind != yaml.SequenceNode || blocksNode.Kind != yaml.SequenceNode {
			return nil, nodeError(n, "conditions and blocks must be lists")
		}
		conditions := make([]ast.Expression, 0, len(condNode.Content))
		for _, item := range condNode.Content {
			cond, err := d.expression(item)
			if err != nil {
				return nil, err
			}
			conditions = append(conditions, cond)
		}
		blocks := make([]*ast.Block, 0, len(blocksNode.Content))
		for _, item := range blocksNode.Content {
			block, err := d.block(item)
			if err != nil {
				return nil, err
			}
			blocks = append(blocks, block)
		}
		if len(blocks) != len(conditions) && len(blocks) != len(conditions)+1 {
			return nil, nodeError(n, "if statement has %d conditions and %d blocks", len(conditions), len(blocks))
		}
		return at(ast.NewIfStatement(conditions, blocks), n), nil

	case ast.NodeWhileLoop:
		obj, err := d.object(n, "condition", "body")
		if err != nil {
			return nil, err
		}
		condNode, err := obj.require("condition")
		if err != nil {
			return nil, err
		}
		cond, err := d.expression(condNode)
		if err != nil {
			return nil, err
		}
		body, err := d.requiredBlock(obj, "body")
		if err != nil {
			return nil, err
		}
		return at(ast.NewWhileLoop(cond, body), n), nil

	case ast.NodeForLoop:
		obj, err := d.object(n, "init", "condition", "post", "body")
		if err != nil {
			return nil, err
		}
		init, err := d.optionalStatement(obj, "init")
		if err != nil {
			return nil, err
		}
		cond, err := d.optionalExpression(obj, "condition")
		if err != nil {
			return nil, err
		}
		post, err := d.optionalStatement(obj, "post")
		if err != nil {
			return nil, err
		}
		body, err := d.requiredBlock(obj, "body")
		if err != nil {
			return nil, err
		}
		return at(ast.NewForLoop(init, cond, post, body), n), nil

	case ast.NodeReturnStatement:
		obj, err := d.object(n, "argument")
		if err != nil {
			return nil, err
		}
		arg, err := d.optionalExpression(obj, "argument")
		if err != nil {
			return nil, err
		}
		return at(ast.NewReturnStatement(arg), n), nil

	case ast.NodeBreakStatement:
		obj, err := d.object(n, "value")
		if err != nil {
			return nil, err
		}
		value, err := d.optionalExpression(obj, "value")
		if err != nil {
			return nil, err
		}
		return at(ast.NewBreakStatement(value), n), nil

	case ast.NodeContinueStatement:
		if _, err := d.object(n); err != nil {
			return nil, err
		}
		return at(ast.NewContinueStatement(), n), nil

	case ast.NodeFunctionDefinition:
		return d.functionDefinition(n)

	case ast.NodeVariableDefinition:
		obj, err := d.object(n, "name", "varType", "value")
		if err != nil {
			return nil, err
		}
		name, err := d.name(obj, "name")
		if err != nil {
			return nil, err
		}
		typ, err := d.requiredType(obj, "varType")
		if err != nil {
			return nil, err
		}
		valueNode, err := obj.require("value")
		if err != nil {
			return nil, err
		}
		value, err := d.expression(valueNode)
		if err != nil {
			return nil, err
		}
		return at(ast.NewVariableDefinition(name, typ, value), n), nil

	case ast.NodeAssignment:
		obj, err := d.object(n, "name", "value")
		if err != nil {
			return nil, err
		}
		name, err := d.name(obj, "name")
		if err != nil {
			return nil, err
		}
		valueNode, err := obj.require("value")
		if err != nil {
			return nil, err
		}
		value, err := d.expression(valueNode)
		if err != nil {
			return nil, err
		}
		return at(ast.NewAssignment(name, value), n), nil

	case ast.NodeTypeDefinition:
		obj, err := d.object(n, "name", "definition")
		if err != nil {
			return nil, err
		}
		name, err := d.name(obj, "name")
		if err != nil {
			return nil, err
		}
		typ, err := d.requiredType(obj, "definition")
		if err != nil {
			return nil, err
		}
		return at(ast.NewTypeDefinition(name, typ), n), nil

	default:
		if isExpressionType(typ) {
			return d.expression(n)
		}
		return nil, nodeError(n, "unsupported statement type %q", typ)
	}
}

func (d *decoder) requiredBlock(o object, key string) (*ast.Block, error) {
	n, err := o.require(key)
	if err != nil {
		return nil, err
	}
	return d.block(n)
}

func (d *decoder) functionDefinition(n *yaml.Node) (*ast.FunctionDefinition, error) {
	obj, err := d.object(n, "name", "params", "returnType", "body")
	if err != nil {
		return nil, err
	}
	name, err := d.name(obj, "name")
	if err != nil {
		return nil, err
	}
	var params []*ast.FunctionParameter
	if paramsNode := obj.get("params"); paramsNode != nil && paramsNode.Tag != "!!null" {
		if paramsNode.Kind != yaml.SequenceNode {
			return nil, nodeError(paramsNode, "params must be a list")
		}
		for _, item := range paramsNode.Content {
			pobj, err := d.object(item, "name", "paramType")
			if err != nil {
				return nil, err
			}
			pname, err := d.name(pobj, "name")
			if err != nil {
				return nil, err
			}
			ptype, err := d.requiredType(pobj, "paramType")
			if err != nil {
				return nil, err
			}
			params = append(params, at(ast.NewFunctionParameter(pname, ptype), item))
		}
	}
	var returnType ast.TypeExpression
	if rt := obj.get("returnType"); rt != nil && rt.Tag != "!!null" {
		returnType, err = d.typeExpression(rt)
		if err != nil {
			return nil, err
		}
	}
	body, err := d.requiredBlock(obj, "body")
	if err != nil {
		return nil, err
	}
	return at(ast.NewFunctionDefinition(name, params, returnType, body), n), nil
}

func isExpressionType(typ string) bool {
	switch ast.NodeType(typ) {
	case ast.NodeIdentifier, ast.NodeIntegerLiteral, ast.NodeFloatLiteral, ast.NodeBooleanLiteral,
		ast.NodeFunctionCall, ast.NodeBinaryExpression, ast.NodeUnaryExpression:
		return true
	}
	return false
}

func (d *decoder) expression(n *yaml.Node) (ast.Expression, error) {
	typ, err := nodeType(n)
	if err != nil {
		return nil, err
	}
	switch ast.NodeType(typ) {
	case ast.NodeIdentifier:
		obj, err := d.object(n, "name")
		if err != nil {
			return nil, err
		}
		name, err := d.name(obj, "name")
		if err != nil {
			return nil, err
		}
		return at(ast.NewIdentifier(name), n), nil

	case ast.NodeIntegerLiteral:
		var value uint64
		if err := d.scalar(n, &value); err != nil {
			return nil, err
		}
		return at(ast.NewIntegerLiteral(value), n), nil

	case ast.NodeFloatLiteral:
		var value float64
		if err := d.scalar(n, &value); err != nil {
			return nil, err
		}
		return at(ast.NewFloatLiteral(value), n), nil

	case ast.NodeBooleanLiteral:
		var value bool
		if err := d.scalar(n, &value); err != nil {
			return nil, err
		}
		return at(ast.NewBooleanLiteral(value), n), nil

	case ast.NodeFunctionCall:
		obj, err := d.object(n, "callee", "arguments")
		if err != nil {
			return nil, err
		}
		callee, err := d.name(obj, "callee")
		if err != nil {
			return nil, err
		}
		var args []ast.Expression
		if argsNode := obj.get("arguments"); argsNode != nil && argsNode.Tag != "!!null" {
			if argsNode.Kind != yaml.SequenceNode {
				return nil, nodeError(argsNode, "arguments must be a list")
			}
			for _, item := range argsNode.Content {
				arg, err := d.expression(item)
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
			}
		}
		return at(ast.NewFunctionCall(callee, args), n), nil

	case ast.NodeBinaryExpression:
		obj, err := d.object(n, "operator", "left", "right")
		if err != nil {
			return nil, err
		}
		opNode, err := obj.require("operator")
		if err != nil {
			return nil, err
		}
		op := ast.BinaryOperator(opNode.Value)
		if op.Class() == ast.ClassInvalid {
			return nil, nodeError(opNode, "unknown binary operator %q", opNode.Value)
		}
		left, err := d.requiredExpression(obj, "left")
		if err != nil {
			return nil, err
		}
		right, err := d.requiredExpression(obj, "right")
		if err != nil {
			return nil, err
		}
		return at(ast.NewBinaryExpression(op, left, right), n), nil

	case ast.NodeUnaryExpression:
		obj, err := d.object(n, "operator", "operand")
		if err != nil {
			return nil, err
		}
		opNode, err := obj.require("operator")
		if err != nil {
			return nil, err
		}
		op := ast.UnaryOperator(opNode.Value)
		if op != ast.OpBitNot && op != ast.OpNot {
			return nil, nodeError(opNode, "unknown unary operator %q", opNode.Value)
		}
		operand, err := d.requiredExpression(obj, "operand")
		if err != nil {
			return nil, err
		}
		return at(ast.NewUnaryExpression(op, operand), n), nil

	default:
		return nil, nodeError(n, "unsupported expression type %q", typ)
	}
}

func (d *decoder) requiredExpression(o object, key string) (ast.Expression, error) {
	n, err := o.require(key)
	if err != nil {
		return nil, err
	}
	return d.expression(n)
}

// scalar decodes the `value` field of a literal node into out.
func (d *decoder) scalar(n *yaml.Node, out any) error {
	obj, err := d.object(n, "value")
	if err != nil {
		return err
	}
	valueNode, err := obj.require("value")
	if err != nil {
		return err
	}
	if err := valueNode.Decode(out); err != nil {
		return nodeError(valueNode, "invalid literal value %q", valueNode.Value)
	}
	return nil
}

func (d *decoder) requiredType(o object, key string) (ast.TypeExpression, error) {
	n, err := o.require(key)
	if err != nil {
		return nil, err
	}
	return d.typeExpression(n)
}

// typeExpression accepts a type node or a bare name: a primitive spelling
// such as "u32", otherwise a named type.
func (d *decoder) typeExpression(n *yaml.Node) (ast.TypeExpression, error) {
	if n != nil && n.Kind == yaml.ScalarNode {
		if n.Value == "" {
			return nil, nodeError(n, "empty type name")
		}
		if p, ok := types.PrimitiveByName(n.Value); ok {
			return at(ast.NewPrimitiveTypeExpression(p), n), nil
		}
		return at(ast.NewNamedTypeExpression(d.symbols.Intern(n.Value)), n), nil
	}
	typ, err := nodeType(n)
	if err != nil {
		return nil, err
	}
	switch ast.NodeType(typ) {
	case ast.NodePrimitiveTypeExpression:
		obj, err := d.object(n, "primitive")
		if err != nil {
			return nil, err
		}
		pNode, err := obj.require("primitive")
		if err != nil {
			return nil, err
		}
		p, ok := types.PrimitiveByName(pNode.Value)
		if !ok {
			return nil, nodeError(pNode, "unknown primitive %q", pNode.Value)
		}
		return at(ast.NewPrimitiveTypeExpression(p), n), nil

	case ast.NodeNamedTypeExpression:
		obj, err := d.object(n, "name")
		if err != nil {
			return nil, err
		}
		name, err := d.name(obj, "name")
		if err != nil {
			return nil, err
		}
		return at(ast.NewNamedTypeExpression(name), n), nil

	case ast.NodeStructTypeExpression:
		obj, err := d.object(n, "fields")
		if err != nil {
			return nil, err
		}
		var fields []*ast.StructField
		if fieldsNode := obj.get("fields"); fieldsNode != nil && fieldsNode.Tag != "!!null" {
			if fieldsNode.Kind != yaml.SequenceNode {
				return nil, nodeError(fieldsNode, "fields must be a list")
			}
			for _, item := range fieldsNode.Content {
				fobj, err := d.object(item, "name", "fieldType")
				if err != nil {
					return nil, err
				}
				fname, err := d.name(fobj, "name")
				if err != nil {
					return nil, err
				}
				ftype, err := d.requiredType(fobj, "fieldType")
				if err != nil {
					return nil, err
				}
				fields = append(fields, at(ast.NewStructField(fname, ftype), item))
			}
		}
		return at(ast.NewStructTypeExpression(fields), n), nil

	case ast.NodeArrayTypeExpression:
		obj, err := d.object(n, "element", "length")
		if err != nil {
			return nil, err
		}
		elem, err := d.requiredType(obj, "element")
		if err != nil {
			return nil, err
		}
		lengthNode, err := obj.require("length")
		if err != nil {
			return nil, err
		}
		var length uint64
		if err := lengthNode.Decode(&length); err != nil {
			return nil, nodeError(lengthNode, "invalid array length %q", lengthNode.Value)
		}
		return at(ast.NewArrayTypeExpression(elem, length), n), nil

	default:
		return nil, nodeError(n, "unsupported type expression %q", typ)
	}
}

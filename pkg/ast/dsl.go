package ast

import (
	"github.com/avaunit02/lang/pkg/symbols"
	"github.com/avaunit02/lang/pkg/types"
)

// Literal and operator helpers.

func Int(value uint64) *IntegerLiteral {
	return NewIntegerLiteral(value)
}

func Flt(value float64) *FloatLiteral {
	return NewFloatLiteral(value)
}

func Bool(value bool) *BooleanLiteral {
	return NewBooleanLiteral(value)
}

func Bin(op BinaryOperator, left, right Expression) *BinaryExpression {
	return NewBinaryExpression(op, left, right)
}

func Not(operand Expression) *UnaryExpression {
	return NewUnaryExpression(OpNot, operand)
}

func BitNot(operand Expression) *UnaryExpression {
	return NewUnaryExpression(OpBitNot, operand)
}

// Type expression helpers.

func Prim(p types.Primitive) *PrimitiveTypeExpression {
	return NewPrimitiveTypeExpression(p)
}

func ArrT(elem TypeExpression, length uint64) *ArrayTypeExpression {
	return NewArrayTypeExpression(elem, length)
}

// Statement helpers.

func Blk(statements ...Statement) *Block {
	return NewBlock(statements)
}

func If(cond Expression, then *Block) *IfStatement {
	return NewIfStatement([]Expression{cond}, []*Block{then})
}

func IfElse(cond Expression, then, otherwise *Block) *IfStatement {
	return NewIfStatement([]Expression{cond}, []*Block{then, otherwise})
}

func While(cond Expression, body *Block) *WhileLoop {
	return NewWhileLoop(cond, body)
}

func For(init Statement, cond Expression, post Statement, body *Block) *ForLoop {
	return NewForLoop(init, cond, post, body)
}

func Ret(argument Expression) *ReturnStatement {
	return NewReturnStatement(argument)
}

func Break(value Expression) *BreakStatement {
	return NewBreakStatement(value)
}

func Continue() *ContinueStatement {
	return NewContinueStatement()
}

func Prog(statements ...Statement) *Program {
	return NewProgram(statements)
}

// Builder creates name-bearing nodes, interning spellings in its table.
type Builder struct {
	Symbols *symbols.Table
}

// NewBuilder returns a builder over table, allocating one when nil.
func NewBuilder(table *symbols.Table) *Builder {
	if table == nil {
		table = symbols.NewTable()
	}
	return &Builder{Symbols: table}
}

func (b *Builder) Sym(name string) symbols.ID {
	return b.Symbols.Intern(name)
}

func (b *Builder) ID(name string) *Identifier {
	return NewIdentifier(b.Sym(name))
}

func (b *Builder) Call(callee string, args ...Expression) *FunctionCall {
	return NewFunctionCall(b.Sym(callee), args)
}

func (b *Builder) Var(name string, typ TypeExpression, value Expression) *VariableDefinition {
	return NewVariableDefinition(b.Sym(name), typ, value)
}

func (b *Builder) Assign(name string, value Expression) *Assignment {
	return NewAssignment(b.Sym(name), value)
}

func (b *Builder) Param(name string, typ TypeExpression) *FunctionParameter {
	return NewFunctionParameter(b.Sym(name), typ)
}

func (b *Builder) Fn(name string, params []*FunctionParameter, returnType TypeExpression, body ...Statement) *FunctionDefinition {
	return NewFunctionDefinition(b.Sym(name), params, returnType, NewBlock(body))
}

func (b *Builder) TypeDef(name string, typ TypeExpression) *TypeDefinition {
	return NewTypeDefinition(b.Sym(name), typ)
}

func (b *Builder) Named(name string) *NamedTypeExpression {
	return NewNamedTypeExpression(b.Sym(name))
}

func (b *Builder) Field(name string, typ TypeExpression) *StructField {
	return NewStructField(b.Sym(name), typ)
}

func (b *Builder) StructT(fields ...*StructField) *StructTypeExpression {
	return NewStructTypeExpression(fields)
}

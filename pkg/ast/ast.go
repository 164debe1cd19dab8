package ast

import (
	"github.com/avaunit02/lang/pkg/symbols"
	"github.com/avaunit02/lang/pkg/types"
)

type NodeType string

const (
	NodeProgram                 NodeType = "Program"
	NodeBlock                   NodeType = "Block"
	NodeIfStatement             NodeType = "IfStatement"
	NodeWhileLoop               NodeType = "WhileLoop"
	NodeForLoop                 NodeType = "ForLoop"
	NodeFunctionDefinition      NodeType = "FunctionDefinition"
	NodeFunctionParameter       NodeType = "FunctionParameter"
	NodeReturnStatement         NodeType = "ReturnStatement"
	NodeBreakStatement          NodeType = "BreakStatement"
	NodeContinueStatement       NodeType = "ContinueStatement"
	NodeVariableDefinition      NodeType = "VariableDefinition"
	NodeAssignment              NodeType = "Assignment"
	NodeTypeDefinition          NodeType = "TypeDefinition"
	NodeIdentifier              NodeType = "Identifier"
	NodeIntegerLiteral          NodeType = "IntegerLiteral"
	NodeFloatLiteral            NodeType = "FloatLiteral"
	NodeBooleanLiteral          NodeType = "BooleanLiteral"
	NodeFunctionCall            NodeType = "FunctionCall"
	NodeBinaryExpression        NodeType = "BinaryExpression"
	NodeUnaryExpression         NodeType = "UnaryExpression"
	NodePrimitiveTypeExpression NodeType = "PrimitiveTypeExpression"
	NodeNamedTypeExpression     NodeType = "NamedTypeExpression"
	NodeStructTypeExpression    NodeType = "StructTypeExpression"
	NodeStructField             NodeType = "StructField"
	NodeArrayTypeExpression     NodeType = "ArrayTypeExpression"
)

type Node interface {
	NodeType() NodeType
	Span() Span
	isNode()
}

type nodeImpl struct {
	Type NodeType `json:"type"`
	span Span
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (n nodeImpl) Span() Span         { return n.span }
func (nodeImpl) isNode()              {}
func (n *nodeImpl) setSpan(span Span) { n.span = span }

// Marker interfaces.

// Expression nodes may also stand alone as statements (e.g. a call whose
// result is discarded).
type Expression interface {
	Node
	expressionNode()
	statementNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}

type Statement interface {
	Node
	statementNode()
}

type statementMarker struct{}

func (statementMarker) statementNode() {}

type TypeExpression interface {
	Node
	typeExpressionNode()
}

type typeExpressionMarker struct{}

func (typeExpressionMarker) typeExpressionNode() {}

// Program

type Program struct {
	nodeImpl

	Statements []Statement `json:"statements"`
}

func NewProgram(statements []Statement) *Program {
	return &Program{nodeImpl: newNodeImpl(NodeProgram), Statements: statements}
}

// Block is a statement sequence. It does not introduce a scope on its own;
// the construct that owns the block decides that.
type Block struct {
	nodeImpl
	statementMarker

	Statements []Statement `json:"statements"`
}

func NewBlock(statements []Statement) *Block {
	return &Block{nodeImpl: newNodeImpl(NodeBlock), Statements: statements}
}

// Control flow

// IfStatement pairs Conditions[i] with Blocks[i]. A trailing extra block is
// the else branch.
type IfStatement struct {
	nodeImpl
	statementMarker

	Conditions []Expression `json:"conditions"`
	Blocks     []*Block     `json:"blocks"`
}

func NewIfStatement(conditions []Expression, blocks []*Block) *IfStatement {
	return &IfStatement{nodeImpl: newNodeImpl(NodeIfStatement), Conditions: conditions, Blocks: blocks}
}

type WhileLoop struct {
	nodeImpl
	statementMarker

	Condition Expression `json:"condition"`
	Body      *Block     `json:"body"`
}

func NewWhileLoop(condition Expression, body *Block) *WhileLoop {
	return &WhileLoop{nodeImpl: newNodeImpl(NodeWhileLoop), Condition: condition, Body: body}
}

// ForLoop is `for (init; condition; post) body`. Init and Post are optional.
type ForLoop struct {
	nodeImpl
	statementMarker

	Init      Statement  `json:"init,omitempty"`
	Condition Expression `json:"condition"`
	Post      Statement  `json:"post,omitempty"`
	Body      *Block     `json:"body"`
}

func NewForLoop(init Statement, condition Expression, post Statement, body *Block) *ForLoop {
	return &ForLoop{nodeImpl: newNodeImpl(NodeForLoop), Init: init, Condition: condition, Post: post, Body: body}
}

type ReturnStatement struct {
	nodeImpl
	statementMarker

	Argument Expression `json:"argument,omitempty"`
}

func NewReturnStatement(argument Expression) *ReturnStatement {
	return &ReturnStatement{nodeImpl: newNodeImpl(NodeReturnStatement), Argument: argument}
}

type BreakStatement struct {
	nodeImpl
	statementMarker

	Value Expression `json:"value,omitempty"`
}

func NewBreakStatement(value Expression) *BreakStatement {
	return &BreakStatement{nodeImpl: newNodeImpl(NodeBreakStatement), Value: value}
}

type ContinueStatement struct {
	nodeImpl
	statementMarker
}

func NewContinueStatement() *ContinueStatement {
	return &ContinueStatement{nodeImpl: newNodeImpl(NodeContinueStatement)}
}

// Definitions

type FunctionParameter struct {
	nodeImpl

	Name symbols.ID     `json:"name"`
	Type TypeExpression `json:"paramType"`
}

func NewFunctionParameter(name symbols.ID, typ TypeExpression) *FunctionParameter {
	return &FunctionParameter{nodeImpl: newNodeImpl(NodeFunctionParameter), Name: name, Type: typ}
}

type FunctionDefinition struct {
	nodeImpl
	statementMarker

	Name       symbols.ID           `json:"name"`
	Params     []*FunctionParameter `json:"params"`
	ReturnType TypeExpression       `json:"returnType"`
	Body       *Block               `json:"body"`
}

func NewFunctionDefinition(name symbols.ID, params []*FunctionParameter, returnType TypeExpression, body *Block) *FunctionDefinition {
	return &FunctionDefinition{
		nodeImpl:   newNodeImpl(NodeFunctionDefinition),
		Name:       name,
		Params:     params,
		ReturnType: returnType,
		Body:       body,
	}
}

type VariableDefinition struct {
	nodeImpl
	statementMarker

	Name  symbols.ID     `json:"name"`
	Type  TypeExpression `json:"varType"`
	Value Expression     `json:"value"`
}

func NewVariableDefinition(name symbols.ID, typ TypeExpression, value Expression) *VariableDefinition {
	return &VariableDefinition{nodeImpl: newNodeImpl(NodeVariableDefinition), Name: name, Type: typ, Value: value}
}

type Assignment struct {
	nodeImpl
	statementMarker

	Name  symbols.ID `json:"name"`
	Value Expression `json:"value"`
}

func NewAssignment(name symbols.ID, value Expression) *Assignment {
	return &Assignment{nodeImpl: newNodeImpl(NodeAssignment), Name: name, Value: value}
}

// TypeDefinition is `type name = <type>;`.
type TypeDefinition struct {
	nodeImpl
	statementMarker

	Name symbols.ID     `json:"name"`
	Type TypeExpression `json:"definition"`
}

func NewTypeDefinition(name symbols.ID, typ TypeExpression) *TypeDefinition {
	return &TypeDefinition{nodeImpl: newNodeImpl(NodeTypeDefinition), Name: name, Type: typ}
}

// Expressions

type Identifier struct {
	nodeImpl
	expressionMarker
	statementMarker

	Name symbols.ID `json:"name"`
}

func NewIdentifier(name symbols.ID) *Identifier {
	return &Identifier{nodeImpl: newNodeImpl(NodeIdentifier), Name: name}
}

type IntegerLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker

	Value uint64 `json:"value"`
}

func NewIntegerLiteral(value uint64) *IntegerLiteral {
	return &IntegerLiteral{nodeImpl: newNodeImpl(NodeIntegerLiteral), Value: value}
}

type FloatLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker

	Value float64 `json:"value"`
}

func NewFloatLiteral(value float64) *FloatLiteral {
	return &FloatLiteral{nodeImpl: newNodeImpl(NodeFloatLiteral), Value: value}
}

type BooleanLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker

	Value bool `json:"value"`
}

func NewBooleanLiteral(value bool) *BooleanLiteral {
	return &BooleanLiteral{nodeImpl: newNodeImpl(NodeBooleanLiteral), Value: value}
}

type FunctionCall struct {
	nodeImpl
	expressionMarker
	statementMarker

	Callee    symbols.ID   `json:"callee"`
	Arguments []Expression `json:"arguments"`
}

func NewFunctionCall(callee symbols.ID, args []Expression) *FunctionCall {
	return &FunctionCall{nodeImpl: newNodeImpl(NodeFunctionCall), Callee: callee, Arguments: args}
}

type BinaryExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Operator BinaryOperator `json:"operator"`
	Left     Expression     `json:"left"`
	Right    Expression     `json:"right"`
}

func NewBinaryExpression(op BinaryOperator, left, right Expression) *BinaryExpression {
	return &BinaryExpression{nodeImpl: newNodeImpl(NodeBinaryExpression), Operator: op, Left: left, Right: right}
}

type UnaryExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Operator UnaryOperator `json:"operator"`
	Operand  Expression    `json:"operand"`
}

func NewUnaryExpression(op UnaryOperator, operand Expression) *UnaryExpression {
	return &UnaryExpression{nodeImpl: newNodeImpl(NodeUnaryExpression), Operator: op, Operand: operand}
}

// Type expressions

type PrimitiveTypeExpression struct {
	nodeImpl
	typeExpressionMarker

	Primitive types.Primitive `json:"primitive"`
}

func NewPrimitiveTypeExpression(p types.Primitive) *PrimitiveTypeExpression {
	return &PrimitiveTypeExpression{nodeImpl: newNodeImpl(NodePrimitiveTypeExpression), Primitive: p}
}

// NamedTypeExpression refers to a type introduced by a TypeDefinition.
type NamedTypeExpression struct {
	nodeImpl
	typeExpressionMarker

	Name symbols.ID `json:"name"`
}

func NewNamedTypeExpression(name symbols.ID) *NamedTypeExpression {
	return &NamedTypeExpression{nodeImpl: newNodeImpl(NodeNamedTypeExpression), Name: name}
}

type StructField struct {
	nodeImpl

	Name symbols.ID     `json:"name"`
	Type TypeExpression `json:"fieldType"`
}

func NewStructField(name symbols.ID, typ TypeExpression) *StructField {
	return &StructField{nodeImpl: newNodeImpl(NodeStructField), Name: name, Type: typ}
}

type StructTypeExpression struct {
	nodeImpl
	typeExpressionMarker

	Fields []*StructField `json:"fields"`
}

func NewStructTypeExpression(fields []*StructField) *StructTypeExpression {
	return &StructTypeExpression{nodeImpl: newNodeImpl(NodeStructTypeExpression), Fields: fields}
}

type ArrayTypeExpression struct {
	nodeImpl
	typeExpressionMarker

	Element TypeExpression `json:"element"`
	Length  uint64         `json:"length"`
}

func NewArrayTypeExpression(element TypeExpression, length uint64) *ArrayTypeExpression {
	return &ArrayTypeExpression{nodeImpl: newNodeImpl(NodeArrayTypeExpression), Element: element, Length: length}
}

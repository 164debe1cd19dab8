package ast

type BinaryOperator string

const (
	OpAdd BinaryOperator = "+"
	OpSub BinaryOperator = "-"
	OpMul BinaryOperator = "*"
	OpDiv BinaryOperator = "/"
	OpMod BinaryOperator = "%"

	OpShl BinaryOperator = "<<"
	OpShr BinaryOperator = ">>"

	OpBitAnd BinaryOperator = "&"
	OpBitXor BinaryOperator = "^"
	OpBitOr  BinaryOperator = "|"

	OpAnd BinaryOperator = "&&"
	OpOr  BinaryOperator = "||"

	OpEq BinaryOperator = "=="
	OpNe BinaryOperator = "!="

	OpGt BinaryOperator = ">"
	OpGe BinaryOperator = ">="
	OpLt BinaryOperator = "<"
	OpLe BinaryOperator = "<="
)

// OperatorClass groups binary operators that share a typing rule.
type OperatorClass int

const (
	ClassInvalid OperatorClass = iota
	ClassArithmetic
	ClassShift
	ClassBitwise
	ClassLogical
	ClassEquality
	ClassOrdering
)

func (c OperatorClass) String() string {
	switch c {
	case ClassArithmetic:
		return "arithmetic"
	case ClassShift:
		return "shift"
	case ClassBitwise:
		return "bitwise"
	case ClassLogical:
		return "logical"
	case ClassEquality:
		return "equality"
	case ClassOrdering:
		return "ordering"
	default:
		return "invalid"
	}
}

// Class returns the typing class of op, or ClassInvalid for an unknown
// spelling.
func (op BinaryOperator) Class() OperatorClass {
	switch op {
	case OpAdd, OpSub, OpMul, OpDiv, OpMod:
		return ClassArithmetic
	case OpShl, OpShr:
		return ClassShift
	case OpBitAnd, OpBitXor, OpBitOr:
		return ClassBitwise
	case OpAnd, OpOr:
		return ClassLogical
	case OpEq, OpNe:
		return ClassEquality
	case OpGt, OpGe, OpLt, OpLe:
		return ClassOrdering
	default:
		return ClassInvalid
	}
}

type UnaryOperator string

const (
	OpBitNot UnaryOperator = "~"
	OpNot    UnaryOperator = "!"
)

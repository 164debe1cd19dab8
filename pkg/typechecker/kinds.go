package typechecker

// ErrorKind classifies a diagnostic. Every kind has a stable code and a
// kebab-case slug that the CLI prints and program fixtures reference.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota

	// redeclaration
	DuplicateDeclaration
	DuplicateDefinition
	DuplicateFunction
	DuplicateType
	DuplicateField

	// lookup miss
	UndeclaredVariable
	UndefinedFunction
	UndefinedType

	// unequal types
	TypeMismatch
	ReturnTypeMismatch
	EqualityTypeMismatch
	OrderingTypeMismatch
	OperandTypeMismatch
	BitwiseTypeMismatch
	ArgumentTypeMismatch

	// classification failure
	NotANumber
	NonBooleanCondition
	ShiftOperandNotInteger
	BitwiseOperandNotInteger
	LogicalOperandNotBoolean
	BitwiseNotOperandNotInteger
	LogicalNotOperandNotBoolean
	VoidVariable
	VoidMember

	// arity
	ArgumentCountMismatch

	// placement
	ReturnOutsideFunction
	BreakOutsideLoop
	ContinueOutsideLoop
	BreakValueNotAllowed

	// resources
	NestingTooDeep
)

type kindInfo struct {
	code string
	name string
	slug string
}

var kindTable = map[ErrorKind]kindInfo{
	KindUnknown:                 {"T0000", "Unknown", "unknown"},
	DuplicateDeclaration:        {"T0101", "DuplicateDeclaration", "duplicate-declaration"},
	DuplicateDefinition:         {"T0102", "DuplicateDefinition", "duplicate-definition"},
	DuplicateFunction:           {"T0103", "DuplicateFunction", "duplicate-function"},
	DuplicateType:               {"T0104", "DuplicateType", "duplicate-type"},
	DuplicateField:              {"T0105", "DuplicateField", "duplicate-field"},
	UndeclaredVariable:          {"T0201", "UndeclaredVariable", "undeclared-variable"},
	UndefinedFunction:           {"T0202", "UndefinedFunction", "undefined-function"},
	UndefinedType:               {"T0203", "UndefinedType", "undefined-type"},
	TypeMismatch:                {"T0301", "TypeMismatch", "type-mismatch"},
	ReturnTypeMismatch:          {"T0302", "ReturnTypeMismatch", "return-type-mismatch"},
	EqualityTypeMismatch:        {"T0303", "EqualityTypeMismatch", "equality-type-mismatch"},
	OrderingTypeMismatch:        {"T0304", "OrderingTypeMismatch", "ordering-type-mismatch"},
	OperandTypeMismatch:         {"T0305", "OperandTypeMismatch", "operand-type-mismatch"},
	BitwiseTypeMismatch:         {"T0306", "BitwiseTypeMismatch", "bitwise-type-mismatch"},
	ArgumentTypeMismatch:        {"T0307", "ArgumentTypeMismatch", "argument-type-mismatch"},
	NotANumber:                  {"T0401", "NotANumber", "not-a-number"},
	NonBooleanCondition:         {"T0402", "NonBooleanCondition", "non-boolean-condition"},
	ShiftOperandNotInteger:      {"T0403", "ShiftOperandNotInteger", "shift-operand-not-integer"},
	BitwiseOperandNotInteger:    {"T0404", "BitwiseOperandNotInteger", "bitwise-operand-not-integer"},
	LogicalOperandNotBoolean:    {"T0405", "LogicalOperandNotBoolean", "logical-operand-not-boolean"},
	BitwiseNotOperandNotInteger: {"T0406", "BitwiseNotOperandNotInteger", "bitwise-not-operand-not-integer"},
	LogicalNotOperandNotBoolean: {"T0407", "LogicalNotOperandNotBoolean", "logical-not-operand-not-boolean"},
	VoidVariable:                {"T0408", "VoidVariable", "void-variable"},
	VoidMember:                  {"T0409", "VoidMember", "void-member"},
	ArgumentCountMismatch:       {"T0501", "ArgumentCountMismatch", "argument-count-mismatch"},
	ReturnOutsideFunction:       {"T0601", "ReturnOutsideFunction", "return-outside-function"},
	BreakOutsideLoop:            {"T0602", "BreakOutsideLoop", "break-outside-loop"},
	ContinueOutsideLoop:         {"T0603", "ContinueOutsideLoop", "continue-outside-loop"},
	BreakValueNotAllowed:        {"T0604", "BreakValueNotAllowed", "break-value-not-allowed"},
	NestingTooDeep:              {"T0701", "NestingTooDeep", "nesting-too-deep"},
}

func (k ErrorKind) info() kindInfo {
	if info, ok := kindTable[k]; ok {
		return info
	}
	return kindTable[KindUnknown]
}

func (k ErrorKind) String() string { return k.info().name }

// Code returns the stable diagnostic code, e.g. "T0301".
func (k ErrorKind) Code() string { return k.info().code }

// Slug returns the kebab-case name, e.g. "type-mismatch".
func (k ErrorKind) Slug() string { return k.info().slug }

// KindBySlug resolves a slug back to its kind.
func KindBySlug(slug string) (ErrorKind, bool) {
	for kind, info := range kindTable {
		if kind != KindUnknown && info.slug == slug {
			return kind, true
		}
	}
	return KindUnknown, false
}

package types

// Class is the full set of classification predicates for one type.
type Class struct {
	Bool     bool
	Integer  bool
	Signed   bool
	Unsigned bool
	Float    bool
	Number   bool
}

// Classify evaluates every predicate at once. Struct and array types satisfy
// none of them.
func Classify(t Type) Class {
	return Class{
		Bool:     IsBool(t),
		Integer:  IsInteger(t),
		Signed:   IsSigned(t),
		Unsigned: IsUnsigned(t),
		Float:    IsFloat(t),
		Number:   IsNumber(t),
	}
}

func primitiveIn(t Type, lo, hi Primitive) bool {
	p, ok := t.(Primitive)
	return ok && p >= lo && p <= hi
}

func IsVoid(t Type) bool     { return primitiveIn(t, Void, Void) }
func IsBool(t Type) bool     { return primitiveIn(t, Bool, Bool) }
func IsInteger(t Type) bool  { return primitiveIn(t, U8, I64) }
func IsSigned(t Type) bool   { return primitiveIn(t, I8, I64) }
func IsUnsigned(t Type) bool { return primitiveIn(t, U8, U64) }
func IsFloat(t Type) bool    { return primitiveIn(t, F16, F64) }
func IsNumber(t Type) bool   { return primitiveIn(t, U8, F64) }

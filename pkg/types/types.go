// Package types defines the closed set of type shapes understood by the
// checker: primitive scalars, anonymous structs and fixed-length arrays.
package types

import "github.com/avaunit02/lang/pkg/symbols"

// Kind tags the three Type shapes.
type Kind uint8

const (
	KindPrimitive Kind = iota
	KindStruct
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindStruct:
		return "struct"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Type is implemented only by Primitive, *Struct and *Array.
type Type interface {
	Kind() Kind
	isType()
}

// Primitive enumerates the scalar types. The declaration order is load
// bearing: the classification predicates are range checks over it.
type Primitive uint8

const (
	Void Primitive = iota
	Bool
	U8
	U16
	U32
	U64
	I8
	I16
	I32
	I64
	F16
	F32
	F64
)

// NumPrimitives is the count of Primitive values.
const NumPrimitives = int(F64) + 1

var primitiveNames = [NumPrimitives]string{
	Void: "void",
	Bool: "bool",
	U8:   "u8",
	U16:  "u16",
	U32:  "u32",
	U64:  "u64",
	I8:   "i8",
	I16:  "i16",
	I32:  "i32",
	I64:  "i64",
	F16:  "f16",
	F32:  "f32",
	F64:  "f64",
}

func (Primitive) Kind() Kind { return KindPrimitive }
func (Primitive) isType()    {}

func (p Primitive) String() string {
	if int(p) < NumPrimitives {
		return primitiveNames[p]
	}
	return "invalid"
}

// Valid reports whether p is one of the declared primitives.
func (p Primitive) Valid() bool { return int(p) < NumPrimitives }

var primitiveBits = [NumPrimitives]int{
	Void: 0,
	Bool: 1,
	U8:   8,
	U16:  16,
	U32:  32,
	U64:  64,
	I8:   8,
	I16:  16,
	I32:  32,
	I64:  64,
	F16:  16,
	F32:  32,
	F64:  64,
}

// Bits returns the value width of p. bool is one bit wide; void has no width.
func (p Primitive) Bits() int {
	if !p.Valid() {
		return 0
	}
	return primitiveBits[p]
}

// PrimitiveByName resolves a primitive spelling such as "u32".
func PrimitiveByName(name string) (Primitive, bool) {
	for i, n := range primitiveNames {
		if n == name {
			return Primitive(i), true
		}
	}
	return 0, false
}

// Primitives returns every primitive in declaration order.
func Primitives() []Primitive {
	out := make([]Primitive, NumPrimitives)
	for i := range out {
		out[i] = Primitive(i)
	}
	return out
}

// Field is one struct member. Field order is part of the type.
type Field struct {
	Type Type
	Name symbols.ID
}

// Struct is an anonymous struct type.
type Struct struct {
	Fields []Field
}

func (*Struct) Kind() Kind { return KindStruct }
func (*Struct) isType()    {}

// NewStruct builds a struct type from fields, preserving their order.
func NewStruct(fields ...Field) *Struct {
	copied := make([]Field, len(fields))
	copy(copied, fields)
	return &Struct{Fields: copied}
}

// Array is a fixed-length array type.
type Array struct {
	Elem   Type
	Length uint64
}

func (*Array) Kind() Kind { return KindArray }
func (*Array) isType()    {}

// NewArray builds an array type.
func NewArray(elem Type, length uint64) *Array {
	return &Array{Elem: elem, Length: length}
}

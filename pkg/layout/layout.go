// Package layout maps checked types to the machine representation code
// generation needs: value width, byte size, alignment and field offsets.
package layout

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/avaunit02/lang/pkg/symbols"
	"github.com/avaunit02/lang/pkg/types"
)

var (
	ErrTooLarge   = errors.New("layout: size overflows uint64")
	ErrVoidMember = errors.New("layout: struct field or array element of type void")
)

type Kind int

const (
	Void Kind = iota
	Bool
	Int
	Float
	Struct
	Array
)

func (k Kind) String() string {
	switch k {
	case Void:
		return "void"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	case Struct:
		return "struct"
	case Array:
		return "array"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Layout describes how values of one type are stored. Size is always a
// multiple of Align.
type Layout struct {
	Kind Kind
	// Bits is the value width of a primitive; bool is 1 bit stored in a byte.
	Bits   int
	Signed bool
	Size   uint64
	Align  uint64
	Fields []Field
	Elem   *Layout
	Length uint64
}

// Field is one struct member at its byte offset. Declaration order is kept.
type Field struct {
	Name   symbols.ID
	Offset uint64
	Layout Layout
}

// Of computes the layout of t.
func Of(t types.Type) (Layout, error) {
	switch x := t.(type) {
	case types.Primitive:
		return primitive(x)
	case *types.Struct:
		if x == nil {
			return Layout{}, fmt.Errorf("layout: nil struct")
		}
		return structOf(x)
	case *types.Array:
		if x == nil {
			return Layout{}, fmt.Errorf("layout: nil array")
		}
		return arrayOf(x)
	default:
		return Layout{}, fmt.Errorf("layout: unsupported type %T", t)
	}
}

func primitive(p types.Primitive) (Layout, error) {
	if !p.Valid() {
		return Layout{}, fmt.Errorf("layout: invalid primitive %d", p)
	}
	l := Layout{Bits: p.Bits(), Signed: types.IsSigned(p), Align: 1}
	switch {
	case types.IsVoid(p):
		l.Kind = Void
	case types.IsBool(p):
		l.Kind = Bool
		l.Size = 1
	case types.IsInteger(p):
		l.Kind = Int
	case types.IsFloat(p):
		l.Kind = Float
	}
	if l.Kind == Int || l.Kind == Float {
		l.Size = uint64(l.Bits / 8)
		l.Align = l.Size
	}
	return l, nil
}

// structOf places fields in declaration order at their natural alignment
// and pads the total size to the largest field alignment.
func structOf(s *types.Struct) (Layout, error) {
	l := Layout{Kind: Struct, Align: 1, Fields: make([]Field, 0, len(s.Fields))}
	var offset uint64
	for _, f := range s.Fields {
		fl, err := Of(f.Type)
		if err != nil {
			return Layout{}, err
		}
		if fl.Kind == Void {
			return Layout{}, ErrVoidMember
		}
		offset, err = alignUp(offset, fl.Align)
		if err != nil {
			return Layout{}, err
		}
		l.Fields = append(l.Fields, Field{Name: f.Name, Offset: offset, Layout: fl})
		next, carry := bits.Add64(offset, fl.Size, 0)
		if carry != 0 {
			return Layout{}, ErrTooLarge
		}
		offset = next
		if fl.Align > l.Align {
			l.Align = fl.Align
		}
	}
	size, err := alignUp(offset, l.Align)
	if err != nil {
		return Layout{}, err
	}
	l.Size = size
	return l, nil
}

func arrayOf(a *types.Array) (Layout, error) {
	elem, err := Of(a.Elem)
	if err != nil {
		return Layout{}, err
	}
	if elem.Kind == Void {
		return Layout{}, ErrVoidMember
	}
	hi, size := bits.Mul64(elem.Size, a.Length)
	if hi != 0 {
		return Layout{}, ErrTooLarge
	}
	return Layout{Kind: Array, Size: size, Align: elem.Align, Elem: &elem, Length: a.Length}, nil
}

func alignUp(n, align uint64) (uint64, error) {
	if align <= 1 {
		return n, nil
	}
	sum, carry := bits.Add64(n, align-1, 0)
	if carry != 0 {
		return 0, ErrTooLarge
	}
	return sum &^ (align - 1), nil
}

func (l Layout) String() string {
	return l.Format(nil)
}

// Format renders l, resolving field names through names when it is set:
// "i32", "{ u8 a @0; u32 b @4 } size 8 align 4", "[4 x f32]".
func (l Layout) Format(names symbols.Resolver) string {
	var b strings.Builder
	l.format(&b, names)
	return b.String()
}

func (l Layout) format(b *strings.Builder, names symbols.Resolver) {
	switch l.Kind {
	case Void:
		b.WriteString("void")
	case Bool:
		b.WriteString("i1")
	case Int:
		if l.Signed {
			b.WriteByte('i')
		} else {
			b.WriteByte('u')
		}
		b.WriteString(strconv.Itoa(l.Bits))
	case Float:
		b.WriteByte('f')
		b.WriteString(strconv.Itoa(l.Bits))
	case Struct:
		b.WriteString("{ ")
		for i, f := range l.Fields {
			if i > 0 {
				b.WriteString("; ")
			}
			f.Layout.format(b, names)
			b.WriteByte(' ')
			b.WriteString(fieldName(f.Name, names))
			b.WriteString(" @")
			b.WriteString(strconv.FormatUint(f.Offset, 10))
		}
		if len(l.Fields) > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(b, "} size %d align %d", l.Size, l.Align)
	case Array:
		fmt.Fprintf(b, "[%d x ", l.Length)
		if l.Elem != nil {
			l.Elem.format(b, names)
		}
		b.WriteByte(']')
	default:
		b.WriteString(l.Kind.String())
	}
}

func fieldName(id symbols.ID, names symbols.Resolver) string {
	if names == nil {
		return "#" + strconv.FormatUint(uint64(id), 10)
	}
	return names.Name(id)
}

package types

import (
	"strconv"
	"strings"

	"github.com/avaunit02/lang/pkg/symbols"
)

// Render formats t for diagnostics, e.g. "u32", "struct { f32 x; f32 y; }"
// or "[f32 4]". Field names are looked up through names; a nil resolver
// renders them as "#<id>".
func Render(t Type, names symbols.Resolver) string {
	var b strings.Builder
	render(&b, t, names)
	return b.String()
}

func render(b *strings.Builder, t Type, names symbols.Resolver) {
	switch x := t.(type) {
	case nil:
		b.WriteString("<nil>")
	case Primitive:
		b.WriteString(x.String())
	case *Struct:
		b.WriteString("struct { ")
		if x != nil {
			for _, f := range x.Fields {
				render(b, f.Type, names)
				b.WriteByte(' ')
				b.WriteString(fieldName(f.Name, names))
				b.WriteString("; ")
			}
		}
		b.WriteByte('}')
	case *Array:
		b.WriteByte('[')
		if x != nil {
			render(b, x.Elem, names)
			b.WriteByte(' ')
			b.WriteString(strconv.FormatUint(x.Length, 10))
		}
		b.WriteByte(']')
	default:
		b.WriteString("<unknown>")
	}
}

func fieldName(id symbols.ID, names symbols.Resolver) string {
	if names == nil {
		return "#" + strconv.FormatUint(uint64(id), 10)
	}
	return names.Name(id)
}

package typechecker

import (
	"math"

	"github.com/avaunit02/lang/pkg/ast"
	"github.com/avaunit02/lang/pkg/types"
)

const maxF16 = 65504

// checkExpressionExpecting types expr in a position whose type is already
// known: an initializer, an assigned value, a call argument or a returned
// value. A bare literal there takes the expected primitive when it belongs to
// the same class and its value is representable; otherwise the literal keeps
// its fixed type and the caller's equality check reports the mismatch.
func (c *Checker) checkExpressionExpecting(expr ast.Expression, expected types.Type) (types.Type, error) {
	if typ, ok := literalType(expr, expected); ok {
		c.infer.set(expr, typ)
		return typ, nil
	}
	return c.checkExpression(expr)
}

func literalType(expr ast.Expression, expected types.Type) (types.Type, bool) {
	p, ok := expected.(types.Primitive)
	if !ok {
		return nil, false
	}
	switch lit := expr.(type) {
	case *ast.IntegerLiteral:
		if types.IsInteger(p) && integerFits(lit.Value, p) {
			return p, true
		}
	case *ast.FloatLiteral:
		if types.IsFloat(p) && floatFits(lit.Value, p) {
			return p, true
		}
	}
	return nil, false
}

func integerFits(value uint64, p types.Primitive) bool {
	bits := p.Bits()
	if types.IsSigned(p) {
		return value <= uint64(1)<<(bits-1)-1
	}
	return bits == 64 || value < uint64(1)<<bits
}

func floatFits(value float64, p types.Primitive) bool {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return true
	}
	switch p {
	case types.F16:
		return math.Abs(value) <= maxF16
	case types.F32:
		return math.Abs(value) <= math.MaxFloat32
	}
	return true
}

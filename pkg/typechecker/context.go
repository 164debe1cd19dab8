package typechecker

import (
	"go.uber.org/zap"

	"github.com/avaunit02/lang/pkg/types"
)

// pushScope opens a level in both the variable and the type-name scopes.
func (c *Checker) pushScope() {
	c.variables.Push()
	c.typeNames.Push()
	c.log.Debug("push scope", zap.Int("depth", c.variables.Depth()))
}

func (c *Checker) popScope() {
	c.log.Debug("pop scope", zap.Int("depth", c.variables.Depth()))
	c.variables.Pop()
	c.typeNames.Pop()
}

// pushReturnType records the current function's expected return type.
func (c *Checker) pushReturnType(typ types.Type) {
	c.returnTypeStack = append(c.returnTypeStack, typ)
}

// popReturnType restores the previous expected return type.
func (c *Checker) popReturnType() {
	if len(c.returnTypeStack) == 0 {
		return
	}
	c.returnTypeStack = c.returnTypeStack[:len(c.returnTypeStack)-1]
}

// currentReturnType returns the innermost expected return type, if any.
func (c *Checker) currentReturnType() (types.Type, bool) {
	if len(c.returnTypeStack) == 0 {
		return nil, false
	}
	return c.returnTypeStack[len(c.returnTypeStack)-1], true
}

// pushLoopContext enters a loop. carry is the type a value-carrying break
// must have; nil means the loop accepts only bare breaks.
func (c *Checker) pushLoopContext(carry types.Type) {
	c.loopCarryStack = append(c.loopCarryStack, carry)
}

func (c *Checker) popLoopContext() {
	if len(c.loopCarryStack) == 0 {
		return
	}
	c.loopCarryStack = c.loopCarryStack[:len(c.loopCarryStack)-1]
}

func (c *Checker) inLoopContext() bool {
	return len(c.loopCarryStack) > 0
}

func (c *Checker) currentLoopCarry() types.Type {
	if len(c.loopCarryStack) == 0 {
		return nil
	}
	return c.loopCarryStack[len(c.loopCarryStack)-1]
}

// enterFunction hides enclosing loops from a function body; break and
// continue never cross a function boundary. The returned func undoes it.
func (c *Checker) enterFunction(returnType types.Type) func() {
	savedLoops := c.loopCarryStack
	c.loopCarryStack = nil
	c.pushReturnType(returnType)
	return func() {
		c.popReturnType()
		c.loopCarryStack = savedLoops
	}
}

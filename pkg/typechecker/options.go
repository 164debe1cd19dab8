package typechecker

import (
	"fmt"

	"go.uber.org/zap"
)

// Mode selects how the checker reacts to a rule violation.
type Mode int

const (
	// ModeFailFast aborts the whole check at the first violation.
	ModeFailFast Mode = iota
	// ModeAccumulate records the violation and resumes at the next statement.
	ModeAccumulate
)

func (m Mode) String() string {
	switch m {
	case ModeFailFast:
		return "fail-fast"
	case ModeAccumulate:
		return "accumulate"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts the spellings used in configuration files.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "fail-fast", "failfast":
		return ModeFailFast, nil
	case "accumulate":
		return ModeAccumulate, nil
	default:
		return ModeFailFast, fmt.Errorf("typechecker: unknown mode %q", s)
	}
}

const DefaultMaxDepth = 10000

// Options configures a Checker.
type Options struct {
	Mode Mode
	// HoistFunctions registers every top-level function signature before
	// any body is checked, so calls may precede definitions. Top-level type
	// definitions are resolved in the same pre-pass so signatures can name
	// them.
	HoistFunctions bool
	// MaxDiagnostics stops an accumulating check after this many
	// diagnostics. Zero means no limit.
	MaxDiagnostics int
	// MaxDepth bounds statement/expression nesting. Zero means DefaultMaxDepth.
	MaxDepth int
	Logger   *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

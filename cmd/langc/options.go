package main

import (
	"fmt"
	"strings"

	"github.com/avaunit02/lang/pkg/typechecker"
)

type globalOptions struct {
	ConfigPath string
	Mode       string
	Hoist      bool
	Debug      bool
}

// parseGlobalOptions strips the options that may precede the subcommand.
func parseGlobalOptions(args []string) (globalOptions, []string, error) {
	var opts globalOptions
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return opts, args[i+1:], nil
		case arg == "--config" || arg == "-config":
			if i+1 >= len(args) {
				return opts, nil, fmt.Errorf("--config expects a path")
			}
			opts.ConfigPath = args[i+1]
			i++
		case strings.HasPrefix(arg, "--config="):
			opts.ConfigPath = strings.TrimPrefix(arg, "--config=")
			if opts.ConfigPath == "" {
				return opts, nil, fmt.Errorf("--config expects a path")
			}
		case arg == "--mode":
			if i+1 >= len(args) {
				return opts, nil, fmt.Errorf("--mode expects a value")
			}
			if err := opts.setMode(args[i+1]); err != nil {
				return opts, nil, err
			}
			i++
		case strings.HasPrefix(arg, "--mode="):
			if err := opts.setMode(strings.TrimPrefix(arg, "--mode=")); err != nil {
				return opts, nil, err
			}
		case arg == "--hoist":
			opts.Hoist = true
		case arg == "--debug" || arg == "-debug":
			opts.Debug = true
		default:
			return opts, args[i:], nil
		}
	}
	return opts, nil, nil
}

func (o *globalOptions) setMode(value string) error {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return fmt.Errorf("--mode expects a value")
	}
	if _, err := typechecker.ParseMode(value); err != nil {
		return fmt.Errorf("unknown --mode value '%s' (expected fail-fast or accumulate)", value)
	}
	o.Mode = value
	return nil
}

package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/avaunit02/lang/pkg/driver"
	"github.com/avaunit02/lang/pkg/typechecker"
)

// session is the resolved configuration shared by every subcommand.
type session struct {
	config  *driver.Config
	logger  *zap.Logger
	checker typechecker.Options
}

func newSession(opts globalOptions) (*session, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}
	cfg, err := driver.ResolveConfig(opts.ConfigPath, wd)
	if err != nil {
		return nil, err
	}
	if opts.Mode != "" {
		cfg.Mode = opts.Mode
	}
	if opts.Hoist {
		cfg.HoistFunctions = true
	}
	logger, err := cfg.NewLogger(opts.Debug)
	if err != nil {
		return nil, err
	}
	checkerOpts, err := cfg.CheckerOptions(logger)
	if err != nil {
		return nil, err
	}
	logger.Debug("configuration resolved",
		zap.String("config", cfg.Path),
		zap.String("mode", cfg.Mode),
		zap.Bool("hoist", cfg.HoistFunctions),
	)
	return &session{config: cfg, logger: logger, checker: checkerOpts}, nil
}

func (s *session) close() {
	_ = s.logger.Sync()
}

// check loads and checks one program. A non-nil error means the program
// could not be loaded or was malformed.
func (s *session) check(path string, opts typechecker.Options) (*driver.CheckResult, error) {
	program, err := driver.LoadProgram(path)
	if err != nil {
		s.logger.Debug("load failed", zap.String("path", path), zap.Error(err))
		return nil, err
	}
	result, err := driver.Check(program, opts)
	if err != nil {
		s.logger.Error("check aborted", zap.String("path", path), zap.Error(err))
		return nil, err
	}
	s.logger.Debug("program checked",
		zap.String("path", path),
		zap.Int("diagnostics", len(result.Diagnostics)),
	)
	return result, nil
}

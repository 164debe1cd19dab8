package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/avaunit02/lang/pkg/typechecker"
)

// ConfigFileName is looked up in the working directory when no explicit
// configuration path is given.
const ConfigFileName = "langc.yml"

// Config models langc.yml.
type Config struct {
	Path           string `yaml:"-"`
	Mode           string `yaml:"mode"`
	HoistFunctions bool   `yaml:"hoist_functions"`
	MaxDiagnostics int    `yaml:"max_diagnostics"`
	MaxDepth       int    `yaml:"max_depth"`
	LogLevel       string `yaml:"log_level"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Mode:     typechecker.ModeFailFast.String(),
		MaxDepth: typechecker.DefaultMaxDepth,
		LogLevel: "info",
	}
}

// LoadConfig parses a configuration file. Unknown keys are rejected.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(abs)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	cfg, err := DecodeConfig(file)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", abs, err)
	}
	cfg.Path = abs
	return cfg, nil
}

// DecodeConfig reads a configuration document over the defaults.
func DecodeConfig(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ResolveConfig loads path when set, otherwise langc.yml from dir when it
// exists, otherwise the defaults.
func ResolveConfig(path, dir string) (*Config, error) {
	if path != "" {
		return LoadConfig(path)
	}
	candidate := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(candidate); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("config: stat %s: %w", candidate, err)
	}
	return LoadConfig(candidate)
}

func (c *Config) normalize() {
	c.Mode = strings.ToLower(strings.TrimSpace(c.Mode))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if _, err := typechecker.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.MaxDiagnostics < 0 {
		return fmt.Errorf("config: max_diagnostics must not be negative")
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("config: max_depth must not be negative")
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: log_level: %w", err)
	}
	return nil
}

// CheckerOptions converts the configuration into checker options that log
// through logger.
func (c *Config) CheckerOptions(logger *zap.Logger) (typechecker.Options, error) {
	mode, err := typechecker.ParseMode(c.Mode)
	if err != nil {
		return typechecker.Options{}, fmt.Errorf("config: %w", err)
	}
	return typechecker.Options{
		Mode:           mode,
		HoistFunctions: c.HoistFunctions,
		MaxDiagnostics: c.MaxDiagnostics,
		MaxDepth:       c.MaxDepth,
		Logger:         logger,
	}, nil
}

// NewLogger builds the CLI logger. debug forces a development logger at
// debug level; otherwise a production logger at the configured level.
func (c *Config) NewLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("config: log_level: %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

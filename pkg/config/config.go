package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/Veraticus/regexbench/pkg/engine"
	"github.com/Veraticus/regexbench/pkg/patterns"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config holds all configuration for regexbench
type Config struct {
	// Engine selection and report header
	Engine string `yaml:"engine" env:"REGEXBENCH_ENGINE" validate:"required,oneof=coregex stdlib regexp2 auto"`
	Label  string `yaml:"label" env:"REGEXBENCH_LABEL"`

	// Pattern configuration
	PatternSet    string             `yaml:"pattern_set" env:"REGEXBENCH_SET" validate:"required,oneof=default extended"`
	ExtraPatterns []patterns.Pattern `yaml:"extra_patterns" validate:"dive"`

	// Behavior flags
	OnCompileError string `yaml:"on_compile_error" env:"REGEXBENCH_ON_COMPILE_ERROR" validate:"required,oneof=abort report"`
	Mmap           bool   `yaml:"mmap" env:"REGEXBENCH_MMAP"`
	Progress       bool   `yaml:"progress" env:"REGEXBENCH_PROGRESS"`
	Debug          bool   `yaml:"debug" env:"REGEXBENCH_DEBUG"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Engine:         engine.Default,
		PatternSet:     patterns.SetDefault,
		OnCompileError: "abort",
		Progress:       true,
	}
}

// Patterns returns the selected pattern set followed by the extra patterns.
func (c *Config) Patterns() ([]patterns.Pattern, error) {
	set, err := patterns.Lookup(c.PatternSet)
	if err != nil {
		return nil, err
	}
	return append(set, c.ExtraPatterns...), nil
}

// Load loads configuration from file and environment. The result is not
// validated; callers apply their own overrides and then call Validate.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	// Try to load from config file
	configPath := getConfigPath()
	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	return cfg, nil
}

// getConfigPath returns the config file path
func getConfigPath() string {
	// Check for explicit config path
	if path := os.Getenv("REGEXBENCH_CONFIG"); path != "" {
		return path
	}

	// Check XDG config directory
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "regexbench", "config.yaml")
	}

	// Fall back to home directory
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "regexbench", "config.yaml")
	}

	return ""
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(cfg *Config, path string) error {
	// #nosec G304 - The config file path comes from trusted sources (env var, flag or standard locations)
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// loadFromEnv loads configuration from environment variables
func loadFromEnv(cfg *Config) error {
	if name := os.Getenv("REGEXBENCH_ENGINE"); name != "" {
		cfg.Engine = name
	}

	if set := os.Getenv("REGEXBENCH_SET"); set != "" {
		cfg.PatternSet = set
	}

	if label := os.Getenv("REGEXBENCH_LABEL"); label != "" {
		cfg.Label = label
	}

	if policy := os.Getenv("REGEXBENCH_ON_COMPILE_ERROR"); policy != "" {
		cfg.OnCompileError = policy
	}

	bools := []struct {
		env string
		dst *bool
	}{
		{"REGEXBENCH_MMAP", &cfg.Mmap},
		{"REGEXBENCH_PROGRESS", &cfg.Progress},
		{"REGEXBENCH_DEBUG", &cfg.Debug},
	}
	for _, b := range bools {
		v := os.Getenv(b.env)
		if v == "" {
			continue
		}
		parsed, err := parseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s value: %q (use true/false)", b.env, v)
		}
		*b.dst = parsed
	}

	return nil
}

// parseBool accepts yes/no on top of everything strconv.ParseBool does
func parseBool(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	}
	return cast.ToBoolE(v)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints and that pattern names are unique.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	set, err := cfg.Patterns()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	seen := make(map[string]bool, len(set))
	for _, p := range set {
		if seen[p.Name] {
			return fmt.Errorf("%w: duplicate pattern name %q", ErrInvalid, p.Name)
		}
		seen[p.Name] = true
	}

	return nil
}

// Package config provides Viper-based configuration loading for the kennel.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// Output is a zap sink: "stderr", "stdout" or a file path.
	Output string `mapstructure:"output"`
}

// ContentConfig locates optional catalog overlays and care scripts.
type ContentConfig struct {
	// BreedsDir holds breed YAML files layered over the built-in breeds. Empty means built-ins only.
	BreedsDir string `mapstructure:"breeds_dir"`
	// ConditionsDir holds condition YAML files layered over the built-in rules. Empty means built-ins only.
	ConditionsDir string `mapstructure:"conditions_dir"`
	// ScriptsDir holds Lua care scripts. Empty disables care actions.
	ScriptsDir string `mapstructure:"scripts_dir"`
	// InstructionLimit is the Lua opcode budget per care action; 0 selects the default.
	InstructionLimit int `mapstructure:"instruction_limit"`
}

// PetConfig holds adoption defaults.
type PetConfig struct {
	DefaultName  string `mapstructure:"default_name"`
	DefaultBreed string `mapstructure:"default_breed"`
	DefaultAge   int    `mapstructure:"default_age"`
	// Seed makes initial stats reproducible when non-zero.
	Seed uint64 `mapstructure:"seed"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Content ContentConfig `mapstructure:"content"`
	Pet     PetConfig     `mapstructure:"pet"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string
	for _, err := range []error{
		validateLogging(c.Logging),
		validateContent(c.Content),
		validatePet(c.Pet),
	} {
		if err != nil {
			errs = append(errs, err.Error())
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	var errs []string
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		errs = append(errs, fmt.Sprintf("logging.level must be one of [debug, info, warn, error], got %q", l.Level))
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		errs = append(errs, fmt.Sprintf("logging.format must be one of [json, console], got %q", l.Format))
	}
	if l.Output == "" {
		errs = append(errs, "logging.output must not be empty")
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func validateContent(c ContentConfig) error {
	if c.InstructionLimit < 0 {
		return fmt.Errorf("content.instruction_limit must be >= 0, got %d", c.InstructionLimit)
	}
	return nil
}

func validatePet(p PetConfig) error {
	var errs []string
	if p.DefaultBreed == "" {
		errs = append(errs, "pet.default_breed must not be empty")
	}
	if p.DefaultAge < 0 || p.DefaultAge > 29 {
		errs = append(errs, fmt.Sprintf("pet.default_age must be 0-29, got %d", p.DefaultAge))
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path loads defaults and
// environment overrides only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with KENNEL_ prefix
	v.SetEnvPrefix("KENNEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}
	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output", "stderr")

	v.SetDefault("content.breeds_dir", "")
	v.SetDefault("content.conditions_dir", "")
	v.SetDefault("content.scripts_dir", "")
	v.SetDefault("content.instruction_limit", 0)

	v.SetDefault("pet.default_name", "Rex")
	v.SetDefault("pet.default_breed", "labrador")
	v.SetDefault("pet.default_age", 3)
	v.SetDefault("pet.seed", 0)
}

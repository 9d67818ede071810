package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"binomci/internal/domain"
	"binomci/internal/synth"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home     string  `yaml:"home" validate:"required"`                         // data directory, e.g. $HOME/.binomci
	Server   string  `yaml:"server" validate:"omitempty,url"`                  // remote server base URL; empty runs locally
	Listen   string  `yaml:"listen" validate:"required"`                       // binomci-server listen address
	LogLevel string  `yaml:"log_level" validate:"oneof=debug info warn error"` // slog level name
	Level    float64 `yaml:"level" validate:"gt=0,lt=1"`                       // confidence / credible level

	Prior   domain.ModelSpec     `yaml:"prior"`
	Sampler domain.SamplerConfig `yaml:"sampler"`
	Synth   synth.Params         `yaml:"synth"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	home := ".binomci"
	if dir, err := os.UserHomeDir(); err == nil {
		home = filepath.Join(dir, ".binomci")
	}
	return Config{
		Home:     home,
		Listen:   ":8080",
		LogLevel: "info",
		Level:    0.95,
		Prior:    domain.DefaultModel(),
		Sampler:  domain.DefaultSamplerConfig(),
		Synth:    synth.DefaultParams(),
	}
}

// LoadConfig reads path over the defaults. An empty path or a missing file
// yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, err
		default:
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the whole config.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: config: %v", domain.ErrInvalidArgument, err)
	}
	if err := c.Prior.Validate(); err != nil {
		return fmt.Errorf("config prior: %w", err)
	}
	if err := c.Sampler.Validate(); err != nil {
		return fmt.Errorf("config sampler: %w", err)
	}
	if err := c.Synth.Validate(); err != nil {
		return fmt.Errorf("config synth: %w", err)
	}
	return nil
}

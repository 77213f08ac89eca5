// Package config loads campuswalk settings from YAML and validates them.
//
// Values come from Default(), overlaid by the YAML file if one is given,
// overlaid by command-line flags (applied by the caller).
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = validator.New()

// Config is the root configuration document.
type Config struct {
	// MapFile is the DOT edge-list describing the campus.
	MapFile string `yaml:"map_file" validate:"omitempty"`

	Log    LogConfig    `yaml:"log"`
	Server ServerConfig `yaml:"server"`
	Graph  GraphConfig  `yaml:"graph"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
	// AddSource adds file:line to every record.
	AddSource bool `yaml:"add_source"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr        string   `yaml:"addr" validate:"required,hostname_port"`
	CORSOrigins []string `yaml:"cors_origins" validate:"dive,required"`
	// Watch reloads the map file when it changes on disk.
	Watch bool `yaml:"watch"`
}

// GraphConfig tunes the in-memory graph.
type GraphConfig struct {
	InitialCapacity int `yaml:"initial_capacity" validate:"min=1"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Server: ServerConfig{
			Addr:        "127.0.0.1:8080",
			CORSOrigins: []string{"*"},
		},
		Graph: GraphConfig{
			InitialCapacity: 64,
		},
	}
}

// Load reads path over Default() and validates the result.
// An empty path returns the validated defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field against its constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// formatValidationError reports the first failing field in a readable form.
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	e := validationErrs[0]
	field := e.Namespace()
	switch e.Tag() {
	case "required":
		return fmt.Errorf("%w: %s: field is required", ErrInvalidConfig, field)
	case "min":
		return fmt.Errorf("%w: %s: must be at least %s", ErrInvalidConfig, field, e.Param())
	case "oneof":
		return fmt.Errorf("%w: %s: must be one of [%s], got %q", ErrInvalidConfig, field, e.Param(), e.Value())
	case "hostname_port":
		return fmt.Errorf("%w: %s: must be host:port, got %q", ErrInvalidConfig, field, e.Value())
	default:
		return fmt.Errorf("%w: %s: validation failed (%s)", ErrInvalidConfig, field, e.Tag())
	}
}

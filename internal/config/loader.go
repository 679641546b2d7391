package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/JonMunkholm/TireFlyer/internal/core"
)

// Load reads configuration from environment variables, applies defaults
// for unset values and validates the result.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := loadStruct(reflect.ValueOf(cfg).Elem()); err != nil {
		return nil, fmt.Errorf("config load: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration and panics on error.
// Use this only in main() where early termination is desired.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}
	return cfg
}

// loadStruct recursively populates struct fields from environment variables.
func loadStruct(v reflect.Value) error {
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldVal := v.Field(i)

		if !fieldVal.CanSet() {
			continue
		}

		if field.Type.Kind() == reflect.Struct {
			if err := loadStruct(fieldVal); err != nil {
				return err
			}
			continue
		}

		envName := field.Tag.Get("env")
		if envName == "" {
			continue
		}

		value, ok := os.LookupEnv(envName)
		if !ok || value == "" {
			value = field.Tag.Get("default")
		}
		if value == "" {
			continue
		}

		if err := setField(fieldVal, value); err != nil {
			return fmt.Errorf("invalid value for %s=%q: %w", envName, value, err)
		}
	}

	return nil
}

// setField sets a reflect.Value from a string based on its type.
func setField(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(strings.TrimSpace(value))

	case reflect.Int, reflect.Int64:
		if field.Type() == reflect.TypeOf(time.Duration(0)) {
			d, err := time.ParseDuration(value)
			if err != nil {
				return fmt.Errorf("invalid duration: %w", err)
			}
			field.SetInt(int64(d))
			return nil
		}
		i, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer: %w", err)
		}
		field.SetInt(i)

	default:
		return fmt.Errorf("unsupported field type: %s", field.Kind())
	}

	return nil
}

// Validate checks that the configuration is valid.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	var errs []string

	if c.Flyer.InputPath == "" {
		errs = append(errs, "FLYER_INPUT_PATH must not be empty")
	}
	if c.Flyer.OutputPath == "" {
		errs = append(errs, "FLYER_OUTPUT_PATH must not be empty")
	}
	if c.Flyer.MinDiscount < 0 || c.Flyer.MinDiscount > 100 {
		errs = append(errs, fmt.Sprintf("FLYER_MIN_DISCOUNT (%d) must be 0-100", c.Flyer.MinDiscount))
	}
	switch core.DuplicatePolicy(strings.ToLower(c.Flyer.DuplicateHeaders)) {
	case core.DuplicateLastWins, core.DuplicateReject:
	default:
		errs = append(errs, fmt.Sprintf("FLYER_DUPLICATE_HEADERS (%q) must be one of: last, reject", c.Flyer.DuplicateHeaders))
	}

	if c.Preview.Port <= 0 || c.Preview.Port > 65535 {
		errs = append(errs, fmt.Sprintf("PREVIEW_PORT (%d) must be 1-65535", c.Preview.Port))
	}
	if c.Preview.ReadTimeout < 0 {
		errs = append(errs, "PREVIEW_READ_TIMEOUT must be non-negative")
	}
	if c.Preview.ShutdownTimeout <= 0 {
		errs = append(errs, "PREVIEW_SHUTDOWN_TIMEOUT must be positive")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL (%q) must be one of: debug, info, warn, error", c.Logging.Level))
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, fmt.Sprintf("LOG_FORMAT (%q) must be one of: text, json", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// Options returns the normalizer options for the configured build.
func (c *Config) Options() core.Options {
	return core.Options{
		MinDiscount: c.Flyer.MinDiscount,
		Duplicates:  core.DuplicatePolicy(strings.ToLower(c.Flyer.DuplicateHeaders)),
	}
}

// String returns a one-line representation of the config for logging.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Flyer: {Input: %q, Output: %q, MinDiscount: %d, Duplicates: %q}, "+
		"Preview: {Addr: %q}, Logging: {Level: %q, Format: %q}}",
		c.Flyer.InputPath, c.Flyer.OutputPath, c.Flyer.MinDiscount, c.Flyer.DuplicateHeaders,
		c.Preview.Addr(), c.Logging.Level, c.Logging.Format)
}

// Package config loads the flyer builder settings from environment
// variables. Every setting has a default, so a bare run reads
// FlyerData.csv and writes index.html in the working directory.
package config

import (
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Flyer   FlyerConfig
	Preview PreviewConfig
	Logging LoggingConfig
}

// FlyerConfig holds the build settings.
type FlyerConfig struct {
	// InputPath is the inventory CSV export (default: FlyerData.csv)
	InputPath string `env:"FLYER_INPUT_PATH" default:"FlyerData.csv"`

	// OutputPath is the generated page (default: index.html)
	OutputPath string `env:"FLYER_OUTPUT_PATH" default:"index.html"`

	// MinDiscount drops items below this discount percentage; 0 disables it (default: 0)
	MinDiscount int `env:"FLYER_MIN_DISCOUNT" default:"0"`

	// DuplicateHeaders is the duplicate column policy: last or reject (default: last)
	DuplicateHeaders string `env:"FLYER_DUPLICATE_HEADERS" default:"last"`

	// Title is the page heading (default: Tire Clearance Sale)
	Title string `env:"FLYER_TITLE" default:"Tire Clearance Sale"`

	// QuoteEndpoint receives quote requests from the cart form; empty hides the submit button
	QuoteEndpoint string `env:"FLYER_QUOTE_ENDPOINT"`
}

// PreviewConfig holds the preview server settings.
type PreviewConfig struct {
	// Host is the interface to bind to (default: 127.0.0.1)
	Host string `env:"PREVIEW_HOST" default:"127.0.0.1"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"PREVIEW_PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading a request (default: 15s)
	ReadTimeout time.Duration `env:"PREVIEW_READ_TIMEOUT" default:"15s"`

	// ShutdownTimeout bounds graceful shutdown (default: 10s)
	ShutdownTimeout time.Duration `env:"PREVIEW_SHUTDOWN_TIMEOUT" default:"10s"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the preview listen address in host:port format.
func (c *PreviewConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

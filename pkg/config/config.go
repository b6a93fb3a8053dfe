// Package config holds the runtime options of the auditor CLI.
// Detection patterns and score thresholds are fixed and are not options.
package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/user/token-auditor/pkg/engine"
	"github.com/user/token-auditor/pkg/logging"
)

// Options controls output rendering and logging for one invocation
type Options struct {
	File      string
	Format    string
	LogLevel  string
	LogFormat string
}

const (
	DefaultFormat    = engine.FormatJSON
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Default returns options with every field at its default value
func Default() *Options {
	return &Options{
		Format:    DefaultFormat,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// Normalize lower-cases and trims the enumerated fields
func (o *Options) Normalize() {
	o.Format = strings.ToLower(strings.TrimSpace(o.Format))
	o.LogLevel = strings.ToLower(strings.TrimSpace(o.LogLevel))
	o.LogFormat = strings.ToLower(strings.TrimSpace(o.LogFormat))
}

// Validate checks that all options hold supported values
func (o *Options) Validate() error {
	if strings.TrimSpace(o.File) == "" {
		return fmt.Errorf("contract file path is required")
	}
	if !slices.Contains(engine.Formats(), o.Format) {
		return fmt.Errorf("format must be one of %s, got %q", strings.Join(engine.Formats(), ", "), o.Format)
	}
	if !slices.Contains(logging.Levels, o.LogLevel) {
		return fmt.Errorf("log level must be one of %s, got %q", strings.Join(logging.Levels, ", "), o.LogLevel)
	}
	if o.LogFormat != "text" && o.LogFormat != "json" {
		return fmt.Errorf("log format must be text or json, got %q", o.LogFormat)
	}
	return nil
}

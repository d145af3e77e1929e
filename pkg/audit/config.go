package audit

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/taurusgroup/share-audit/pkg/document"
	"github.com/taurusgroup/share-audit/pkg/math/polynomial"
)

// Config holds the settings of a run.
type Config struct {
	// Input is the path of the JSON document, "-" for stdin.
	Input string
	// Mode is one of "auto", "single" or "multi", see document.Mode.
	Mode string
	// Arithmetic is "float" or "exact", see polynomial.Arithmetic.
	Arithmetic string
	// Archive is an optional path the CBOR encoded results are written to.
	Archive string
	// LogLevel is a zerolog level name.
	LogLevel string
}

// DefaultConfig reads a single document from stdin and prints results with float arithmetic.
func DefaultConfig() Config {
	return Config{
		Input:      "-",
		Mode:       document.ModeAuto.String(),
		Arithmetic: polynomial.Float.Name(),
		LogLevel:   zerolog.WarnLevel.String(),
	}
}

// Validate checks that every setting can be used.
func (c Config) Validate() error {
	if c.Input == "" {
		return errors.New("config: no input")
	}
	if _, err := document.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := polynomial.ArithmeticByName(c.Arithmetic); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// DocumentMode returns the parsed Mode.
func (c Config) DocumentMode() document.Mode {
	m, _ := document.ParseMode(c.Mode)
	return m
}

// Level returns the parsed log level.
func (c Config) Level() zerolog.Level {
	l, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.WarnLevel
	}
	return l
}

// NewRunner returns a Runner using the configured arithmetic.
func (c Config) NewRunner(logger zerolog.Logger) (*Runner, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	a, _ := polynomial.ArithmeticByName(c.Arithmetic)
	return NewRunner(a, logger), nil
}

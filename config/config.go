// Package config loads the minij configuration file.
//
// The file is TOML. Keys are the Go field names of Config, and unknown keys
// are rejected:
//
//	[Parser]
//	StartLine = 1
//
//	[Output]
//	Format = "text"
//	Color = "auto"
//
//	[Log]
//	Verbosity = 0
package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"
	"slices"
	"strings"

	"github.com/naoina/toml"

	"github.com/dhamidi/minij/format"
)

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

type Config struct {
	Parser ParserConfig
	Output OutputConfig
	Log    LogConfig
}

type ParserConfig struct {
	// StartLine is the line number reported for the first line of input.
	StartLine int
}

type OutputConfig struct {
	// Format is the tree format of "minij parse": text, json or dump.
	Format string
	// Color is auto, always or never.
	Color string
	// Positions adds spans to text output.
	Positions bool
	// MaxErrors limits the diagnostics "minij check" prints per file.
	// Zero means no limit.
	MaxErrors int
}

type LogConfig struct {
	// Verbosity is the commonlog verbosity; 2 and above include debug output.
	Verbosity int
	// File sends log output to a file instead of stderr.
	File string `toml:",omitempty"`
}

var Defaults = Config{
	Parser: ParserConfig{StartLine: 1},
	Output: OutputConfig{Format: "text", Color: "auto"},
}

var (
	ErrStartLine = errors.New("Parser.StartLine must be at least 1")
	ErrFormat    = errors.New("Output.Format must be one of " + strings.Join(format.Names, ", "))
	ErrColor     = errors.New(`Output.Color must be "auto", "always" or "never"`)
	ErrMaxErrors = errors.New("Output.MaxErrors must not be negative")
)

// Load decodes file into cfg. Fields missing from the file keep the values
// cfg already has.
func Load(file string, cfg *Config) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		return fmt.Errorf("%s, %w", file, err)
	}
	if err != nil {
		return fmt.Errorf("decode config %s: %w", file, err)
	}
	return cfg.Validate()
}

func (c *Config) Validate() error {
	if c.Parser.StartLine < 1 {
		return ErrStartLine
	}
	if !slices.Contains(format.Names, c.Output.Format) {
		return ErrFormat
	}
	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		return ErrColor
	}
	if c.Output.MaxErrors < 0 {
		return ErrMaxErrors
	}
	return nil
}

// Marshal renders cfg in the format Load reads.
func Marshal(cfg *Config) ([]byte, error) {
	return tomlSettings.Marshal(cfg)
}

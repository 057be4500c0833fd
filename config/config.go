// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/viper"
)

const (
	// EnvPrefix is prepended to every setting read from the environment,
	// ex: CLONECHECK_MISMATCHES=2
	EnvPrefix = "CLONECHECK"

	// SummaryJSON writes the run summary as JSON
	SummaryJSON = "json"

	// SummaryYAML writes the run summary as YAML
	SummaryYAML = "yaml"
)

// ErrInvalidSetting is returned by Validate for an unusable setting.
var ErrInvalidSetting = errors.New("invalid setting")

// Config is the root-level settings struct and is a mix
// of settings available in a settings file, the environment,
// and those available from the command line
type Config struct {
	// Mismatches is the summed allele distance a genotype may have
	// from a clone and still be considered the same clone
	Mismatches int `mapstructure:"mismatches" yaml:"mismatches"`

	// Missing is the allele code for an unreadable locus
	Missing string `mapstructure:"missing" yaml:"missing"`

	// Delimiter between fields of the input and output files
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`

	// Header is whether the first row of each input is column names
	Header bool `mapstructure:"header" yaml:"header"`

	// SkipInvalid logs and skips bad rows instead of failing
	SkipInvalid bool `mapstructure:"skip-invalid" yaml:"skip-invalid"`

	// Out is the directory to write outputs to. Empty means next to the input
	Out string `mapstructure:"out" yaml:"out"`

	// Summary is the format of the run summary file. Empty disables it
	Summary string `mapstructure:"summary" yaml:"summary"`

	// Jobs is the number of input files clustered at once
	Jobs int `mapstructure:"jobs" yaml:"jobs"`

	// Verbose is whether to log progress to stdout
	Verbose bool `mapstructure:"verbose" yaml:"verbose"`
}

// SetDefaults registers every setting's default on a viper instance.
// Keys need a default for viper to read them from the environment.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("mismatches", 0)
	v.SetDefault("missing", "0")
	v.SetDefault("delimiter", ",")
	v.SetDefault("header", false)
	v.SetDefault("skip-invalid", false)
	v.SetDefault("out", "")
	v.SetDefault("summary", "")
	v.SetDefault("jobs", 1)
	v.SetDefault("verbose", false)
}

// BindEnv makes viper read CLONECHECK_ prefixed environment variables,
// with dashes in keys replaced by underscores.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// New returns a new Config struct populated by the global Viper
// settings (the settings file, environment, and/or command line arguments).
func New() (*Config, error) {
	return FromViper(viper.GetViper())
}

// FromViper unmarshals and validates the settings of a viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks settings before any genotypes are read.
func (c *Config) Validate() error {
	if c.Mismatches < 0 {
		return fmt.Errorf("%w: mismatches must be zero or more, got %d", ErrInvalidSetting, c.Mismatches)
	}

	if strings.TrimSpace(c.Missing) == "" {
		return fmt.Errorf("%w: missing allele code is empty", ErrInvalidSetting)
	}

	if !ValidDelimiter(c.Delimiter) {
		return fmt.Errorf("%w: delimiter must be a single character other than a quote or line break, got %q", ErrInvalidSetting, c.Delimiter)
	}

	if c.Jobs < 1 {
		return fmt.Errorf("%w: jobs must be at least 1, got %d", ErrInvalidSetting, c.Jobs)
	}

	switch strings.ToLower(c.Summary) {
	case "", SummaryJSON, SummaryYAML:
	default:
		return fmt.Errorf("%w: unknown summary format %q (json, yaml)", ErrInvalidSetting, c.Summary)
	}

	return nil
}

// ValidDelimiter reports whether s is one character that can separate
// CSV fields. Quotes and line breaks can't.
func ValidDelimiter(s string) bool {
	if utf8.RuneCountInString(s) != 1 {
		return false
	}

	r, _ := utf8.DecodeRuneInString(s)
	switch r {
	case '"', '\r', '\n', utf8.RuneError:
		return false
	}
	return true
}

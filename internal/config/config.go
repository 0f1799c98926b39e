package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	DefaultExtension = "svg"
	DefaultDPI       = 300
	DefaultDuration  = 750
	DefaultLoop      = 0
)

// Sort orders.
const (
	SortNumeric = "numeric"
	SortLexical = "lexical"
)

// Unnumbered file policies for numeric sorting.
const (
	UnnumberedExclude = "exclude"
	UnnumberedLast    = "last"
	UnnumberedError   = "error"
)

// Single frame duration policies.
const (
	SingleCompound = "compound"
	SingleFirst    = "first"
	SingleLast     = "last"
)

type Config struct {
	Directory    string `yaml:"directory"`
	Output       string `yaml:"output"`
	Extension    string `yaml:"extension"`
	DPI          int    `yaml:"dpi"`
	Duration     int    `yaml:"duration"` // base frame duration in milliseconds
	Loop         int    `yaml:"loop"`     // 0 loops forever
	Sort         string `yaml:"sort"`
	Unnumbered   string `yaml:"unnumbered"`
	SingleFrame  string `yaml:"single_frame"`
	ManifestPath string `yaml:"manifest"`
	ShowStats    bool   `yaml:"stats"`
}

// Default returns a Config holding the default values for every optional field.
func Default() Config {
	return Config{
		Extension:   DefaultExtension,
		DPI:         DefaultDPI,
		Duration:    DefaultDuration,
		Loop:        DefaultLoop,
		Sort:        SortNumeric,
		Unnumbered:  UnnumberedExclude,
		SingleFrame: SingleLast,
	}
}

// SortByNumbers reports whether files are ordered by their embedded number.
func (c *Config) SortByNumbers() bool {
	return c.Sort != SortLexical
}

// Validate checks the config and returns all problems found joined together.
func (c *Config) Validate() error {
	var errs []error
	if c.Directory == "" {
		errs = append(errs, errors.New("directory is required"))
	}
	if c.Output == "" {
		errs = append(errs, errors.New("output is required"))
	}
	c.Extension = strings.TrimPrefix(c.Extension, ".")
	if c.Extension == "" {
		errs = append(errs, errors.New("extension must not be empty"))
	}
	if c.DPI <= 0 {
		errs = append(errs, fmt.Errorf("dpi must be positive: %d", c.DPI))
	}
	if c.Duration <= 0 {
		errs = append(errs, fmt.Errorf("duration must be positive: %d", c.Duration))
	}
	if c.Loop < 0 {
		errs = append(errs, fmt.Errorf("loop must not be negative: %d", c.Loop))
	} else if c.Loop > 0xffff {
		errs = append(errs, fmt.Errorf("loop too large: %d", c.Loop))
	}
	if !oneOf(c.Sort, SortNumeric, SortLexical) {
		errs = append(errs, fmt.Errorf("unknown sort order: %q", c.Sort))
	}
	if !oneOf(c.Unnumbered, UnnumberedExclude, UnnumberedLast, UnnumberedError) {
		errs = append(errs, fmt.Errorf("unknown unnumbered policy: %q", c.Unnumbered))
	}
	if !oneOf(c.SingleFrame, SingleCompound, SingleFirst, SingleLast) {
		errs = append(errs, fmt.Errorf("unknown single frame policy: %q", c.SingleFrame))
	}
	return errors.Join(errs...)
}

func oneOf(s string, opts ...string) bool {
	for _, o := range opts {
		if s == o {
			return true
		}
	}
	return false
}

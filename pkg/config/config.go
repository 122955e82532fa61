package config

import (
	"fmt"

	"github.com/vivienm/nominal/pkg/errors"
	"github.com/vivienm/nominal/pkg/rename"
	"github.com/vivienm/nominal/pkg/ui"
)

// Config is the complete nominal configuration
type Config struct {
	Sort    Sort    `koanf:"sort"`
	Output  Output  `koanf:"output"`
	Confirm Confirm `koanf:"confirm"`
}

// Sort controls the order of planned renames
type Sort struct {
	Natural bool   `koanf:"natural"`
	Locale  string `koanf:"locale"`
}

// Output controls how plans are printed
type Output struct {
	Color  string `koanf:"color"`
	Format string `koanf:"format"`
}

// Confirm controls the confirmation prompt
type Confirm struct {
	Enabled bool `koanf:"enabled"`
}

// Collation returns the ordering strategy for the renamer
func (c *Config) Collation() rename.Collation {
	return rename.CollationFor(c.Sort.Natural, c.Sort.Locale)
}

// ColorMode returns the parsed output.color setting
func (c *Config) ColorMode() ui.ColorMode {
	mode, _ := ui.ParseColorMode(c.Output.Color)
	return mode
}

// Format returns the parsed output.format setting
func (c *Config) Format() ui.Format {
	format, _ := ui.ParseFormat(c.Output.Format)
	return format
}

// Validate checks the enumerated settings
func (c *Config) Validate() error {
	if _, err := ui.ParseColorMode(c.Output.Color); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid output.color").
			WithDetail("value", c.Output.Color)
	}
	if _, err := ui.ParseFormat(c.Output.Format); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid output.format").
			WithDetail("value", c.Output.Format)
	}
	return nil
}

// String returns a debug representation of cfg
func (c *Config) String() string {
	return fmt.Sprintf("sort.natural=%t sort.locale=%q output.color=%s output.format=%s confirm.enabled=%t",
		c.Sort.Natural, c.Sort.Locale, c.Output.Color, c.Output.Format, c.Confirm.Enabled)
}

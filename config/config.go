// Package config handles the marina configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/Rhymond/go-money"
	"github.com/etnz/marina"
	"github.com/shopspring/decimal"
)

// Config holds the marina settings.
type Config struct {
	File     string             `toml:"file"`     // inventory file, used when none is given on the command line
	Capacity int                `toml:"capacity"` // maximum number of boats
	Currency string             `toml:"currency"` // ISO code of the balances
	Rates    map[string]float64 `toml:"rates"`    // monthly rate per foot, by kind name
}

// Default returns the configuration used when there is no file.
func Default() *Config {
	return &Config{
		Capacity: marina.DefaultCapacity,
		Currency: marina.DefaultCurrency,
	}
}

// Load reads the TOML configuration file at path on top of the defaults.
//
// A missing file is not an error, the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	meta, err := toml.DecodeFile(path, cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown keys in config %q: %v", path, undecoded)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("capacity must be positive, got %d", c.Capacity)
	}
	if money.GetCurrency(c.Currency) == nil {
		return fmt.Errorf("unknown currency %q", c.Currency)
	}
	for name, rate := range c.Rates {
		if !isKind(name) {
			return fmt.Errorf("unknown kind %q in rates", name)
		}
		if rate < 0 {
			return fmt.Errorf("negative rate for %s: %v", name, rate)
		}
	}
	return nil
}

// isKind reports whether name is the exact name of a kind.
// ParseKind reads unknown names as storage, which would hide typos here.
func isKind(name string) bool {
	for _, k := range marina.Kinds {
		if k.String() == name {
			return true
		}
	}
	return false
}

// MarinaRates returns the default rates overridden by the configured ones.
func (c *Config) MarinaRates() marina.Rates {
	rates := marina.DefaultRates(c.Currency)
	for name, rate := range c.Rates {
		rates[marina.ParseKind(name)] = marina.M(decimal.NewFromFloat(rate), c.Currency)
	}
	return rates
}

// Options returns the inventory options matching this configuration.
func (c *Config) Options() []marina.Option {
	return []marina.Option{
		marina.WithCapacity(c.Capacity),
		marina.WithCurrency(c.Currency),
		marina.WithRates(c.MarinaRates()),
	}
}

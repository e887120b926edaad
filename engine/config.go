package engine

import (
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/restyle/style"
	"gopkg.in/yaml.v3"
)

// Config configures a Context.
//
// A configuration may be loaded from YAML:
//
//	match_cache_capacity: 64
//	defaults:
//	  color: "#202020"
//	  font-family: Inter
type Config struct {
	MatchCacheCapacity int               `yaml:"match_cache_capacity"`
	Defaults           map[string]string `yaml:"defaults"`
}

// DefaultMatchCacheCapacity is the number of entries the matched-rule cache
// holds per sibling group.
const DefaultMatchCacheCapacity = 50

// DefaultConfig returns the configuration used if clients do not provide one.
func DefaultConfig() Config {
	return Config{MatchCacheCapacity: DefaultMatchCacheCapacity}
}

// LoadConfig reads a YAML configuration. Settings missing from the input keep
// their default values.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("cannot read engine configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks a configuration for invalid settings.
func (cfg Config) Validate() error {
	if cfg.MatchCacheCapacity < 1 {
		return fmt.Errorf("match cache capacity must be positive, is %d", cfg.MatchCacheCapacity)
	}
	for key := range cfg.Defaults {
		if _, ok := style.Lookup(key); !ok {
			return fmt.Errorf("configuration of defaults: unknown property '%s'", key)
		}
	}
	return nil
}

func (cfg Config) defaults() (*style.Defaults, error) {
	d := style.NewDefaults()
	for key, value := range cfg.Defaults {
		if err := d.Override(key, style.Normalize(value)); err != nil {
			return nil, err
		}
	}
	return d, nil
}

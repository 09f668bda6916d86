package config

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownPreset = errors.New("config: unknown preset")

// Presets adjust the field parameters of the default configuration.
var Presets = map[string]func(*Config){
	"default": func(c *Config) {},
	"sparse": func(c *Config) {
		c.Field.Density = 30000
		c.Field.LinkDistance = 140
	},
	"dense": func(c *Config) {
		c.Field.Density = 7500
		c.Field.LinkDistance = 80
	},
	"calm": func(c *Config) {
		c.Field.Speed = 0.1
		c.Field.PointerForce = 0.005
		c.Field.Friction = 0.98
	},
	"lively": func(c *Config) {
		c.Field.Speed = 0.6
		c.Field.PointerRadius = 160
		c.Field.PointerForce = 0.03
		c.Field.Friction = 0.995
	},
}

// GetPreset returns a fresh configuration with the named preset applied.
func GetPreset(name string) (*Config, error) {
	apply, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg, nil
}

// ApplyPreset modifies cfg in place.
func ApplyPreset(cfg *Config, name string) error {
	apply, ok := Presets[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPreset, name)
	}
	apply(cfg)
	return nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

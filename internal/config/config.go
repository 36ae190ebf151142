// Package config handles configuration loading and shared data structures.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the root configuration file structure. Every field is
// optional; compiled defaults apply when a section is absent.
type Config struct {
	Region *Region `yaml:"region,omitempty"`
	Map    Map     `yaml:"map,omitempty"`
}

// Region overrides the bounding box used to disambiguate coordinate order.
// Defaults to the extents of Chile.
type Region struct {
	MinLat float64 `yaml:"min_lat"`
	MaxLat float64 `yaml:"max_lat"`
	MinLon float64 `yaml:"min_lon"`
	MaxLon float64 `yaml:"max_lon"`
}

// Map configures the viewport and labels of rendered map pages. The numeric
// fields are pointers so a configured zero (equator, zoom 0) is
// distinguishable from an absent value.
type Map struct {
	Title     string   `yaml:"title,omitempty"`
	Layer     string   `yaml:"layer,omitempty"`
	CenterLat *float64 `yaml:"center_lat,omitempty"`
	CenterLon *float64 `yaml:"center_lon,omitempty"`
	Zoom      *int     `yaml:"zoom,omitempty"`
}

// Load reads and parses the YAML configuration file from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.Region != nil {
		if cfg.Region.MinLat > cfg.Region.MaxLat || cfg.Region.MinLon > cfg.Region.MaxLon {
			return nil, fmt.Errorf("region bounds inverted in %s", path)
		}
	}

	return &cfg, nil
}

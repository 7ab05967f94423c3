// Package config loads gridscad settings from a TOML file.
//
// The file is optional. When no path is given, [Load] looks for
// $XDG_CONFIG_HOME/gridscad/config.toml (or ~/.config/gridscad/config.toml)
// and falls back to the built-in defaults if it does not exist.
//
//	[cell]
//	width = 10
//	height = 10
//
//	[output]
//	formats = ["scad", "svg"]
//	newline = true
//
//	[[shape]]
//	name = "pillar"
//	size = [2, 2, 8]
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/gridscad/pkg/errors"
	"github.com/matzehuels/gridscad/pkg/scad"
)

const (
	appName  = "gridscad"
	fileName = "config.toml"
)

// Config holds user settings.
type Config struct {
	Cell   Cell    `toml:"cell"`
	Output Output  `toml:"output"`
	Shapes []Shape `toml:"shape"`

	// Path is the file the config was read from; empty for defaults.
	Path string `toml:"-"`
}

// Cell sets the spacing between grid cells in output units.
type Cell struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Output sets default conversion outputs.
type Output struct {
	Formats []string `toml:"formats"`
	Newline bool     `toml:"newline"`
}

// Shape declares an extra cuboid shape.
type Shape struct {
	Name string     `toml:"name"`
	Size [3]float64 `toml:"size"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Cell: Cell{Width: scad.CellWidth, Height: scad.CellHeight},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads the config at path. An empty path means [DefaultPath], and a
// missing default file yields [Default]. A missing explicit path is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !explicit {
		return Default(), nil
	}
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read config %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", path)
	}
	cfg.Path = path
	return cfg, nil
}

// Parse decodes TOML data on top of [Default] and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown key %q", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges. Shape names are checked by [Config.Registry].
func (c *Config) Validate() error {
	if c.Cell.Width <= 0 || c.Cell.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig,
			"cell dimensions must be positive (got %gx%g)", c.Cell.Width, c.Cell.Height)
	}
	for _, s := range c.Shapes {
		for _, v := range s.Size {
			if v <= 0 {
				return errors.New(errors.ErrCodeInvalidConfig, "shape %q: size must be positive", s.Name)
			}
		}
	}
	return nil
}

// Registry returns the default shape registry extended with the configured
// shapes. Redefining a built-in shape is an error.
func (c *Config) Registry() (*scad.Registry, error) {
	reg := scad.DefaultRegistry()
	for _, s := range c.Shapes {
		if err := reg.Register(s.Name, scad.Cuboid(s.Size[0], s.Size[1], s.Size[2])); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "shape %q", s.Name)
		}
	}
	return reg, nil
}

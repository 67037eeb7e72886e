// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// struct for the disc tool, and its file IO.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/disc/base/errors"
	"cogentcore.org/disc/base/randx"
	"cogentcore.org/disc/math32"
	"cogentcore.org/disc/shape"
	"github.com/jinzhu/copier"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config is the main config struct
// that contains all of the configuration
// options for the disc tool
type Config struct {

	// number of angular subdivisions (default 32)
	Slices int `toml:"slices" yaml:"slices"`

	// angular span in degrees; 360 or more is a full turn (default 360)
	Span float32 `toml:"span" yaml:"span"`

	// radius of the outer ring (default 1)
	OuterRadius float32 `toml:"outer_radius" yaml:"outer_radius"`

	// radius of the inner ring; 0 makes a solid disc
	InnerRadius float32 `toml:"inner_radius" yaml:"inner_radius"`

	// seed for the vertex colors; 0 uses the global random source
	Seed int64 `toml:"seed" yaml:"seed"`

	// draw the normal lines instead of the triangles
	DrawNormals bool `toml:"draw_normals" yaml:"draw_normals"`
}

// Defaults sets the default values: a full unit disc of 32 slices.
// Fields not named here default to zero.
func (cfg *Config) Defaults() {
	*cfg = Config{Slices: 32, Span: 360, OuterRadius: 1}
}

// SpanRadians returns the span in radians. A magnitude of 360 degrees or
// more is exactly one full turn, so that the closed sweep is selected.
func (cfg *Config) SpanRadians() float32 {
	if math32.Abs(cfg.Span) >= 360 {
		return math32.FullTurn
	}
	return math32.DegToRad(cfg.Span)
}

// NewDisc returns a new disc for the config. If Seed is set,
// the vertex colors come from a random source with that seed.
func (cfg *Config) NewDisc() (*shape.Disc, error) {
	ds, err := shape.NewDisc(cfg.Slices, cfg.SpanRadians(), cfg.OuterRadius, cfg.InnerRadius)
	if err != nil {
		return nil, err
	}
	if cfg.Seed != 0 {
		rnd := randx.NewSysRand(cfg.Seed)
		ds.ColorFunc = func(base math32.Vector4, low, high float32) math32.Vector4 {
			return randx.RandomColor(base, low, high, rnd)
		}
	}
	return ds, nil
}

// Overrides are config values set on the command line.
// Nil fields are left as they are by [Merge].
type Overrides struct {
	Slices      *int
	Span        *float32
	OuterRadius *float32
	InnerRadius *float32
	Seed        *int64
	DrawNormals *bool
}

// Merge sets the non-nil override values on cfg.
func Merge(cfg *Config, ov *Overrides) error {
	return copier.CopyWithOption(cfg, ov, copier.Option{IgnoreEmpty: true})
}

// Format is a config file encoding.
type Format int32

const (
	// TOML is the default.
	TOML Format = iota

	YAML
)

// FormatForFile returns the format for the file extension.
func FormatForFile(file string) (Format, error) {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return TOML, errors.Errorf("config: unsupported file type %q (must be .toml, .yaml or .yml)", file)
}

// Open reads the config from the given file, in the format
// given by its extension. Fields not in the file are unchanged.
// A leading ~ in file is the home directory.
func Open(cfg *Config, file string) error {
	file, ft, err := resolve(file)
	if err != nil {
		return err
	}
	b, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	if ft == YAML {
		err = yaml.Unmarshal(b, cfg)
	} else {
		err = toml.Unmarshal(b, cfg)
	}
	if err != nil {
		return errors.Errorf("config: %s: %w", file, err)
	}
	return nil
}

// Save writes the config to the given file, in the format
// given by its extension. A leading ~ in file is the home directory.
func Save(cfg *Config, file string) error {
	file, ft, err := resolve(file)
	if err != nil {
		return err
	}
	var b []byte
	if ft == YAML {
		b, err = yaml.Marshal(cfg)
	} else {
		b, err = toml.Marshal(cfg)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(file, b, 0666)
}

// resolve expands the home directory in file and returns its format.
func resolve(file string) (string, Format, error) {
	ft, err := FormatForFile(file)
	if err != nil {
		return file, ft, err
	}
	file, err = homedir.Expand(file)
	return file, ft, err
}

// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/disc/base/errors"
	"cogentcore.org/disc/math32"
	"cogentcore.org/disc/shape"
	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := &Config{Seed: 9, InnerRadius: 3}
	cfg.Defaults()
	assert.Equal(t, Config{Slices: 32, Span: 360, OuterRadius: 1}, *cfg)
	assert.Equal(t, math32.FullTurn, cfg.SpanRadians())
}

func TestSpanRadians(t *testing.T) {
	cfg := &Config{Span: 720}
	assert.Equal(t, math32.FullTurn, cfg.SpanRadians())
	cfg.Span = -360
	assert.Equal(t, math32.FullTurn, cfg.SpanRadians())
	cfg.Span = 180
	assert.InDelta(t, math32.Pi, cfg.SpanRadians(), 1e-6)
}

func TestOpenSave(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"disc.toml", "disc.yaml", "disc.yml"} {
		t.Run(name, func(t *testing.T) {
			file := filepath.Join(dir, name)
			cfg := &Config{Slices: 6, Span: 90, OuterRadius: 2, InnerRadius: 0.5, Seed: 7, DrawNormals: true}
			require.NoError(t, Save(cfg, file))

			got := &Config{}
			got.Defaults()
			require.NoError(t, Open(got, file))
			assert.Equal(t, cfg, got)
		})
	}
}

func TestOpenPartial(t *testing.T) {
	file := filepath.Join(t.TempDir(), "disc.toml")
	require.NoError(t, os.WriteFile(file, []byte("slices = 5\ninner_radius = 0.25\n"), 0666))
	cfg := &Config{}
	cfg.Defaults()
	require.NoError(t, Open(cfg, file))
	assert.Equal(t, Config{Slices: 5, Span: 360, OuterRadius: 1, InnerRadius: 0.25}, *cfg)

	yfile := filepath.Join(t.TempDir(), "disc.yaml")
	require.NoError(t, os.WriteFile(yfile, []byte("span: 180\nseed: 3\n"), 0666))
	require.NoError(t, Open(cfg, yfile))
	assert.Equal(t, float32(180), cfg.Span)
	assert.Equal(t, int64(3), cfg.Seed)
	assert.Equal(t, 5, cfg.Slices)
}

func TestOpenErrors(t *testing.T) {
	cfg := &Config{}
	err := Open(cfg, "disc.json")
	assert.ErrorContains(t, err, "unsupported file type")
	assert.Error(t, Save(cfg, "disc.ini"))

	err = Open(cfg, filepath.Join(t.TempDir(), "missing.toml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	bad := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("slices = \"many\"\n"), 0666))
	assert.ErrorContains(t, Open(cfg, bad), "bad.toml")
}

func TestHomeDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })

	cfg := &Config{Slices: 9, Span: 45, OuterRadius: 3}
	require.NoError(t, Save(cfg, "~/disc.toml"))
	assert.FileExists(t, filepath.Join(dir, "disc.toml"))

	got := &Config{}
	require.NoError(t, Open(got, "~/disc.toml"))
	assert.Equal(t, cfg, got)

	assert.Error(t, Open(got, "~someone/disc.toml"))
}

func TestMerge(t *testing.T) {
	cfg := &Config{}
	cfg.Defaults()
	slices := 12
	inner := float32(0)
	normals := true
	require.NoError(t, Merge(cfg, &Overrides{Slices: &slices, InnerRadius: &inner, DrawNormals: &normals}))
	assert.Equal(t, Config{Slices: 12, Span: 360, OuterRadius: 1, DrawNormals: true}, *cfg)

	span := float32(90)
	require.NoError(t, Merge(cfg, &Overrides{Span: &span}))
	assert.Equal(t, float32(90), cfg.Span)
	assert.Equal(t, 12, cfg.Slices)
}

func TestNewDisc(t *testing.T) {
	cfg := &Config{Slices: 4, Span: 180, OuterRadius: 1, Seed: 42}
	a, err := cfg.NewDisc()
	require.NoError(t, err)
	b, err := cfg.NewDisc()
	require.NoError(t, err)
	a.Generate()
	b.Generate()
	assert.Equal(t, a.Color, b.Color)
	assert.Equal(t, shape.OpenSweep, a.Params().Sweep())
	assert.Len(t, a.Vertex, 6)

	cfg.Span = 0
	_, err = cfg.NewDisc()
	var se *shape.InvalidSpanError
	assert.True(t, errors.As(err, &se))
}

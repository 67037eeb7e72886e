// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cogentcore.org/disc/base/errors"
	"cogentcore.org/disc/config"
	"cogentcore.org/disc/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var b bytes.Buffer
	root := newRootCmd(&b)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append(args, "-q"))
	err := root.Execute()
	return b.String(), err
}

func TestInfo(t *testing.T) {
	out, err := run(t, "info", "--slices", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "topology:  TriangleFan\n")
	assert.Contains(t, out, "sweep:     ClosedSweep\n")
	assert.Contains(t, out, "vertices:  5\n")
	assert.Contains(t, out, "indices:   6\n")
	assert.Contains(t, out, "triangles: 4\n")
	assert.NotContains(t, out, "warning")

	out, err = run(t, "info", "--slices", "3", "--outer", "2", "--inner", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "topology:  TriangleList\n")
	assert.Contains(t, out, "vertices:  6\n")
	assert.Contains(t, out, "indices:   18\n")
	assert.Contains(t, out, "triangles: 6\n")

	out, err = run(t, "info", "--slices", "0", "--span", "90")
	require.NoError(t, err)
	assert.Contains(t, out, "sweep:     OpenSweep\n")
	assert.Contains(t, out, "warning:   shape: degenerate disc geometry")
}

func TestInfoInvalidSpan(t *testing.T) {
	_, err := run(t, "info", "--span", "0")
	var se *shape.InvalidSpanError
	assert.True(t, errors.As(err, &se))
}

func TestNormals(t *testing.T) {
	out, err := run(t, "normals", "--slices", "4", "--span", "180")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "0: ("))
	assert.True(t, strings.HasPrefix(lines[5], "5: ("))
}

func TestDraw(t *testing.T) {
	out, err := run(t, "draw", "--slices", "4")
	require.NoError(t, err)
	assert.Equal(t, "upload disc\nfront-face CCW\nelements TriangleFan 6\nfront-face CCW\n", out)

	out, err = run(t, "draw", "--normals", "--slices", "4")
	require.NoError(t, err)
	assert.Equal(t, "upload disc\nlines 10\n", out)

	out, err = run(t, "draw", "--slices", "2", "--inner", "0.5")
	require.NoError(t, err)
	assert.Equal(t, "upload annulus\nelements TriangleList 12\n", out)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "disc.toml")
	require.NoError(t, os.WriteFile(file, []byte("slices = 6\nspan = 90.0\n"), 0666))

	out, err := run(t, "--config", file, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "slices:    6\n")
	assert.Contains(t, out, "samples:   7\n")

	// flags override the file
	saved := filepath.Join(dir, "saved.yaml")
	out, err = run(t, "--config", file, "--write-config", saved, "info", "--slices", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "slices:    5\n")

	cfg := &config.Config{}
	require.NoError(t, config.Open(cfg, saved))
	assert.Equal(t, config.Config{Slices: 5, Span: 90, OuterRadius: 1}, *cfg)

	_, err = run(t, "--config", filepath.Join(dir, "disc.json"), "info")
	assert.ErrorContains(t, err, "unsupported file type")
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "disc.toml")
	require.NoError(t, os.WriteFile(file, []byte("slices = 3\n"), 0666))

	ctx, cancel := context.WithCancel(context.Background())
	changed := make(chan struct{}, 1)
	done := make(chan error, 1)
	go func() {
		done <- watch(ctx, file, func() {
			select {
			case changed <- struct{}{}:
			default:
			}
		})
	}()

	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	timeout := time.After(5 * time.Second)
wait:
	for {
		select {
		case <-changed:
			break wait
		case <-tick.C:
			require.NoError(t, os.WriteFile(file, []byte("slices = 4\n"), 0666))
		case <-timeout:
			t.Fatal("no change seen")
		}
	}
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestReload(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "disc.yaml")
	require.NoError(t, os.WriteFile(file, []byte("slices: 3\ninner_radius: 0.5\n"), 0666))

	var b bytes.Buffer
	root := newRootCmd(&b)
	root.SetArgs([]string{"info", "-q"})
	require.NoError(t, root.Execute())

	a := &app{out: &b, file: file, flags: root.PersistentFlags()}
	b.Reset()
	require.NoError(t, a.reload())
	assert.Contains(t, b.String(), "topology:  TriangleList\n")
	assert.Contains(t, b.String(), "vertices:  6\n")
}

// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandler(t *testing.T) {
	var buf bytes.Buffer
	lg := slog.New(NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	lg.Debug("hidden")
	lg.Info("generated", "vertices", 5)
	lg.With("shape", "disc").WithGroup("mesh").Warn("degenerate", "slices", 0)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "generated vertices=5")
	assert.Contains(t, out, "degenerate shape=disc mesh.slices=0")
}

func TestHandlerUserLevel(t *testing.T) {
	prev := UserLevel
	t.Cleanup(func() { UserLevel = prev })

	var buf bytes.Buffer
	lg := slog.New(NewHandler(&buf, nil))
	UserLevel = slog.LevelError
	lg.Warn("quiet")
	assert.Empty(t, buf.String())

	UserLevel = LevelFromFlags(true, false, false)
	lg.Debug("loud")
	assert.Contains(t, buf.String(), "loud")
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"testing"

	"cogentcore.org/disc/math32"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestSysRandSeeded(t *testing.T) {
	a := NewSysRand(42)
	b := NewSysRand(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
		assert.Equal(t, a.Intn(100), b.Intn(100))
	}

	g := NewGlobalRand()
	v := g.Float32()
	assert.GreaterOrEqual(t, v, float32(0))
	assert.Less(t, v, float32(1))
}

func TestUniformRange(t *testing.T) {
	rnd := NewSysRand(1)
	for i := 0; i < 1000; i++ {
		v := UniformRange(-0.3, 0.3, rnd)
		assert.GreaterOrEqual(t, v, float32(-0.3))
		assert.Less(t, v, float32(0.3))
	}
}

func TestRandomColor(t *testing.T) {
	gray := math32.Vec4(0.5, 0.5, 0.5, 1)
	assert.Equal(t, RandomColor(gray, -0.3, 0.3, NewSysRand(7)), RandomColor(gray, -0.3, 0.3, NewSysRand(7)))
	assert.Equal(t, gray, RandomColor(gray, 0, 0, NewSysRand(7)))

	rapid.Check(t, func(t *rapid.T) {
		base := math32.Vec4(
			rapid.Float32Range(0, 1).Draw(t, "r"),
			rapid.Float32Range(0, 1).Draw(t, "g"),
			rapid.Float32Range(0, 1).Draw(t, "b"),
			rapid.Float32Range(0, 1).Draw(t, "a"),
		)
		c := RandomColor(base, -2, 2, NewSysRand(rapid.Int64().Draw(t, "seed")))
		for i, v := range []float32{c.X, c.Y, c.Z} {
			if v < 0 || v > 1 {
				t.Fatalf("component %d out of range: %v", i, c)
			}
		}
		if c.W != base.W {
			t.Fatalf("alpha changed: %v -> %v", base.W, c.W)
		}
	})
}

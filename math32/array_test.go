// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArrayF32(t *testing.T) {
	b := NewArrayF32(9, 9)
	b.SetVector3(0, Vec3(1, 2, 3))
	b.SetVector2(3, Vec2(4, 5))
	b.SetVector4(5, Vec4(6, 7, 8, 9))
	assert.Equal(t, ArrayF32{1, 2, 3, 4, 5, 6, 7, 8, 9}, b)

	var v Vector3
	v.FromSlice(b, 3)
	assert.Equal(t, Vec3(4, 5, 6), v)
}

func TestArrayU32(t *testing.T) {
	a := NewArrayU32(4, 4)
	a.Set(1, 7, 8, 9)
	assert.Equal(t, ArrayU32{0, 7, 8, 9}, a)
}

func TestBox3(t *testing.T) {
	bb := B3Empty()
	assert.True(t, bb.IsEmpty())
	bb.ExpandByPoint(Vec3(-1, 2, 0))
	bb.ExpandByPoint(Vec3(1, -2, 0))
	assert.False(t, bb.IsEmpty())
	assert.Equal(t, Box3{Min: Vec3(-1, -2, 0), Max: Vec3(1, 2, 0)}, bb)

	bb.SetFromPoints([]Vector3{Vec3(3, 3, 3), Vec3(0, 1, 2)})
	assert.Equal(t, Box3{Min: Vec3(0, 1, 2), Max: Vec3(3, 3, 3)}, bb)

	bb.SetFromPoints(nil)
	assert.True(t, bb.IsEmpty())
}

func TestVector4Clamp(t *testing.T) {
	c := Vec4(1.2, -0.2, 0.75, 1)
	c.Clamp(Vector4Scalar(0), Vector4Scalar(1))
	assert.Equal(t, Vec4(1, 0, 0.75, 1), c)
}

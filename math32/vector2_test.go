// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector2(t *testing.T) {
	assert.Equal(t, Vector2{5, 10}, Vec2(5, 10))
	// texture mapping of a point at radius 2 on a disc of outer radius 2
	assert.Equal(t, Vec2(1, 0.5), Vec2(2, 0).DivScalar(4).AddScalar(0.5))
	assert.Equal(t, Vec2(6, 8), Vec2(3, 4).MulScalar(2))
	assert.Equal(t, Vector2{}, Vec2(3, 4).DivScalar(0))
}

// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

// Vector2 is a 2D vector/point with X and Y components,
// used for points in the disc plane and for texture coordinates.
type Vector2 struct {
	X float32
	Y float32
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float32) Vector2 {
	return Vector2{x, y}
}

// AddScalar returns v with s added to each component.
func (v Vector2) AddScalar(s float32) Vector2 {
	return Vec2(v.X+s, v.Y+s)
}

// MulScalar returns v with each component multiplied by s.
func (v Vector2) MulScalar(s float32) Vector2 {
	return Vec2(v.X*s, v.Y*s)
}

// DivScalar returns v with each component divided by s.
// Dividing by zero gives the zero vector.
func (v Vector2) DivScalar(s float32) Vector2 {
	if s != 0 {
		return v.MulScalar(1 / s)
	}
	return Vector2{}
}

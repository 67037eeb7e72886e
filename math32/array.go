// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// ArrayF32 is flat float32 vertex data, laid out for GPU upload:
// 2, 3, or 4 consecutive values per vertex depending on the attribute.
type ArrayF32 []float32

// NewArrayF32 returns an ArrayF32 with the given length and capacity.
func NewArrayF32(size, capacity int) ArrayF32 {
	return make([]float32, size, capacity)
}

// SetVector2 writes v at pos.
func (a ArrayF32) SetVector2(pos int, v Vector2) {
	a[pos] = v.X
	a[pos+1] = v.Y
}

// SetVector3 writes v at pos.
func (a ArrayF32) SetVector3(pos int, v Vector3) {
	a[pos] = v.X
	a[pos+1] = v.Y
	a[pos+2] = v.Z
}

// SetVector4 writes v at pos.
func (a ArrayF32) SetVector4(pos int, v Vector4) {
	a[pos] = v.X
	a[pos+1] = v.Y
	a[pos+2] = v.Z
	a[pos+3] = v.W
}

// ArrayU32 is flat vertex index data.
type ArrayU32 []uint32

// NewArrayU32 returns an ArrayU32 with the given length and capacity.
func NewArrayU32(size, capacity int) ArrayU32 {
	return make([]uint32, size, capacity)
}

// Set copies v into the array starting at pos.
func (a ArrayU32) Set(pos int, v ...uint32) {
	copy(a[pos:], v)
}

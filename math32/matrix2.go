// Copyright 2021 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Matrix2 is a 3x2 affine matrix in the XY plane.
// [XX YX]
// [XY YY]
// [X0 Y0]
// Meshes accumulate ring rotations in it, one step per sample.
type Matrix2 struct {
	XX, YX, XY, YY, X0, Y0 float32
}

// Identity2 returns the identity [Matrix2].
func Identity2() Matrix2 {
	return Matrix2{
		1, 0,
		0, 1,
		0, 0,
	}
}

// Rotate2D returns a rotation by angle radians. Positive angles
// rotate counter-clockwise about the +Z axis.
func Rotate2D(angle float32) Matrix2 {
	c := Cos(angle)
	s := Sin(angle)
	return Matrix2{
		c, s,
		-s, c,
		0, 0,
	}
}

// Mul returns a*b, which applies b first and then a.
func (a Matrix2) Mul(b Matrix2) Matrix2 {
	return Matrix2{
		XX: a.XX*b.XX + a.XY*b.YX,
		YX: a.YX*b.XX + a.YY*b.YX,
		XY: a.XX*b.XY + a.XY*b.YY,
		YY: a.YX*b.XY + a.YY*b.YY,
		X0: a.XX*b.X0 + a.XY*b.Y0 + a.X0,
		Y0: a.YX*b.X0 + a.YY*b.Y0 + a.Y0,
	}
}

// MulVector2AsPoint transforms v as a point, including the translation.
func (a Matrix2) MulVector2AsPoint(v Vector2) Vector2 {
	tx := a.XX*v.X + a.XY*v.Y + a.X0
	ty := a.YX*v.X + a.YY*v.Y + a.Y0
	return Vec2(tx, ty)
}

// MulVector3AsPoint transforms the X, Y components of the given point,
// leaving Z unchanged: the matrix acts about the +Z axis.
func (a Matrix2) MulVector3AsPoint(v Vector3) Vector3 {
	return Vector3FromVector2(a.MulVector2AsPoint(v.XY()), v.Z)
}

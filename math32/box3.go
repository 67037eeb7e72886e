// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Box3 is an axis-aligned 3D bounding box given by its minimum
// and maximum corners.
type Box3 struct {
	Min Vector3
	Max Vector3
}

// B3Empty returns an empty [Box3], ready to be expanded by points.
func B3Empty() Box3 {
	bx := Box3{}
	bx.SetEmpty()
	return bx
}

// SetEmpty makes the box empty: Min is +Infinity and Max is -Infinity,
// so that the first expanded point becomes both corners.
func (b *Box3) SetEmpty() {
	b.Min.SetScalar(Infinity)
	b.Max.SetScalar(-Infinity)
}

// IsEmpty returns true if Max is below Min on any axis.
func (b Box3) IsEmpty() bool {
	return (b.Max.X < b.Min.X) || (b.Max.Y < b.Min.Y) || (b.Max.Z < b.Min.Z)
}

// SetFromPoints sets the box to the bounds of the given points.
// No points gives an empty box.
func (b *Box3) SetFromPoints(points []Vector3) {
	b.SetEmpty()
	for _, p := range points {
		b.ExpandByPoint(p)
	}
}

// ExpandByPoint grows the box to include the point.
func (b *Box3) ExpandByPoint(point Vector3) {
	b.Min.SetMin(point)
	b.Max.SetMax(point)
}

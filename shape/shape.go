// Copyright 2022 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "cogentcore.org/disc/math32"

// Mesh is an interface for all shape-constructing elements.
// All Meshes must know in advance the number of vertex and index points
// they require, and the Set method writes the mesh data to arrays of
// appropriate vector data.
type Mesh interface {
	// MeshSize returns number of vertex, index points in this shape element,
	// and whether it has per-vertex color values.
	MeshSize() (numVertex, numIndex int, hasColor bool)

	// Offsets returns starting offset for vertices, indexes in full shape array,
	// in terms of points, not floats.
	Offsets() (vtxOffset, idxOffset int)

	// SetOffsets sets starting offset for vertices, indexes in full shape array,
	// in terms of points, not floats.
	SetOffsets(vtxOffset, idxOffset int)

	// Set sets points in given allocated arrays.
	Set(vertex, normal, texcoord, clrs math32.ArrayF32, index math32.ArrayU32)

	// MeshBBox returns the bounding box for the shape, typically centered around 0.
	// This is only valid after Set has been called.
	MeshBBox() math32.Box3

	// Topology returns how the index list is to be assembled into primitives.
	Topology() Topologies
}

// ShapeBase is the base shape element
type ShapeBase struct {

	// vertex offset, in points
	VertexOffset int

	// index offset, in points
	IndexOffset int

	// cubic bounding box in local coords
	CBBox math32.Box3
}

// Offsets returns starting offset for vertices, indexes in full shape array,
// in terms of points, not floats
func (sb *ShapeBase) Offsets() (vtxOffset, idxOffset int) {
	return sb.VertexOffset, sb.IndexOffset
}

// SetOffsets sets starting offsets for vertices, indexes in full shape array
func (sb *ShapeBase) SetOffsets(vtxOffset, idxOffset int) {
	sb.VertexOffset, sb.IndexOffset = vtxOffset, idxOffset
}

// MeshBBox returns the bounding box for the shape, typically centered around 0
// This is only valid after Set has been called.
func (sb *ShapeBase) MeshBBox() math32.Box3 {
	return sb.CBBox
}

// Topologies are the different ways an index list can be
// assembled into primitives by the renderer.
type Topologies int32

const (
	// TriangleList takes each successive three indexes as one triangle.
	TriangleList Topologies = iota

	// TriangleFan shares the first index as the apex of every triangle,
	// with each further index forming a triangle with its predecessor.
	TriangleFan

	// LineList takes each successive two points as one line segment.
	LineList
)

func (tp Topologies) String() string {
	switch tp {
	case TriangleList:
		return "TriangleList"
	case TriangleFan:
		return "TriangleFan"
	case LineList:
		return "LineList"
	}
	return "Topologies(?)"
}

// BBoxFromVtxs returns the bounding box updated from the range of vertex points
func BBoxFromVtxs(vtxAry math32.ArrayF32, vtxOff int, nvtxs int) math32.Box3 {
	bb := math32.B3Empty()
	vidx := vtxOff * 3
	var vtx math32.Vector3
	for vi := 0; vi < nvtxs; vi++ {
		vtx.FromSlice(vtxAry, vidx+vi*3)
		bb.ExpandByPoint(vtx)
	}
	return bb
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"log/slog"

	"cogentcore.org/disc/base/randx"
	"cogentcore.org/disc/base/slicesx"
	"cogentcore.org/disc/math32"
)

// Gray is the base color that vertex colors are jittered around.
var Gray = math32.Vec4(0.5, 0.5, 0.5, 1)

// Jitter bounds for the outer ring colors. The center vertex and
// the inner ring use the randx defaults.
const (
	OuterJitterLow  = float32(-0.3)
	OuterJitterHigh = float32(0.3)
)

// ColorFunc returns a per-vertex color jittered around base.
type ColorFunc func(base math32.Vector4, low, high float32) math32.Vector4

// Disc is a flat disc in the XY plane, facing +Z, swept counter-clockwise
// from the +X axis. With a zero inner radius it is a triangle fan around
// a center vertex. Otherwise it is an annulus of paired triangles between
// an outer and an inner ring. A span of less than a full turn leaves an
// open seam.
//
// The mesh is generated once, on the first call to [Disc.Generate].
// Afterward only the normals and normal lines change, via
// [Disc.RecomputeNormals], unless the vertices are deformed or restored.
type Disc struct {
	ShapeBase

	// ColorFunc sets the vertex colors; uses [randx.RandomColor] if nil.
	ColorFunc ColorFunc

	// vertex positions: outer ring first for an annulus, center first for a fan
	Vertex []math32.Vector3

	// per-vertex normals
	Normal []math32.Vector3

	// per-vertex texture coordinates
	TexCoord []math32.Vector2

	// per-vertex colors
	Color []math32.Vector4

	// triangle indexes, interpreted according to [Disc.Topology]
	Index []uint32

	// normal visualization: (vertex, vertex + scaled normal) per vertex
	Lines []math32.Vector3

	params   Params
	snapshot []math32.Vector3
}

// NewDisc returns a new disc with given slices, span in radians, and
// outer and inner radius. It returns an [*InvalidSpanError] if span is zero.
// The mesh is not generated until [Disc.Generate] is called.
func NewDisc(slices int, span, outerRadius, innerRadius float32) (*Disc, error) {
	p, err := NewParams(slices, span, outerRadius, innerRadius)
	if err != nil {
		return nil, err
	}
	return &Disc{params: p}, nil
}

// Params returns the sanitized construction parameters.
func (ds *Disc) Params() Params {
	return ds.params
}

// Topology returns how the indexes are assembled into triangles.
func (ds *Disc) Topology() Topologies {
	return ds.params.Topology()
}

// Degenerate returns a [*DegenerateGeometryWarning] if the disc
// geometry is degenerate, or nil.
func (ds *Disc) Degenerate() error {
	return ds.params.Degenerate()
}

// IsEmpty returns true if the mesh has not been generated.
func (ds *Disc) IsEmpty() bool {
	return len(ds.Vertex) == 0
}

// Generate generates the mesh if it has not been generated yet,
// and returns true if it did so.
func (ds *Disc) Generate() bool {
	if !ds.IsEmpty() {
		return false
	}
	p := ds.params
	ly := p.Layout()
	theta := p.Theta()
	nv := ly.NumVertex()
	ds.Vertex = make([]math32.Vector3, 0, nv)
	ds.TexCoord = make([]math32.Vector2, 0, nv)
	ds.Color = make([]math32.Vector4, 0, nv)

	if ly.Fan {
		ds.addVertex(math32.Vector3{}, randx.DefaultJitterLow, randx.DefaultJitterHigh)
		ds.addRing(p.OuterRadius, theta, ly.Samples, OuterJitterLow, OuterJitterHigh)
		ds.Index = make([]uint32, 0, p.NumIndex())
		for i := range nv {
			ds.Index = append(ds.Index, uint32(i))
		}
		if ly.Sweep.Wraps() && ly.Samples > 0 {
			ds.Index = append(ds.Index, uint32(ly.Outer(0)))
		}
	} else {
		ds.addRing(p.OuterRadius, theta, ly.Samples, OuterJitterLow, OuterJitterHigh)
		ds.addRing(p.InnerRadius, theta, ly.Samples, randx.DefaultJitterLow, randx.DefaultJitterHigh)
		n := ly.Samples
		ds.Index = make([]uint32, 0, p.NumIndex())
		for i := range p.Slices {
			j := (i + 1) % n
			o0, o1 := uint32(ly.Outer(i)), uint32(ly.Outer(j))
			i0, i1 := uint32(ly.Inner(i)), uint32(ly.Inner(j))
			ds.Index = append(ds.Index, o0, i0, o1, o1, i0, i1)
		}
	}

	ds.Normal = make([]math32.Vector3, len(ds.Vertex))
	for i := range ds.Normal {
		ds.Normal[i] = math32.Vec3(0, 0, 1)
	}
	ds.Lines = NormalLines(ds.Vertex, ds.Normal)
	ds.snapshot = slicesx.CopyFrom(ds.snapshot, ds.Vertex)
	ds.CBBox.SetFromPoints(ds.Vertex)

	if err := p.Degenerate(); err != nil {
		slog.Warn("degenerate", "shape", "disc", "err", err)
	} else {
		slog.Debug("generated", "shape", "disc", "topology", p.Topology(), "sweep", p.Sweep(), "vertices", len(ds.Vertex), "indices", len(ds.Index))
	}
	return true
}

func (ds *Disc) addVertex(pos math32.Vector3, low, high float32) {
	outer := ds.params.OuterRadius
	ds.Vertex = append(ds.Vertex, pos)
	ds.TexCoord = append(ds.TexCoord, pos.XY().DivScalar(2*outer).AddScalar(0.5))
	ds.Color = append(ds.Color, ds.color(Gray, low, high))
}

// addRing adds n ring vertices at given radius, rotating the
// radius vector by theta about +Z for each successive sample.
func (ds *Disc) addRing(radius, theta float32, n int, low, high float32) {
	m := math32.Identity2()
	step := math32.Rotate2D(theta)
	r := math32.Vec3(radius, 0, 0)
	for range n {
		ds.addVertex(m.MulVector3AsPoint(r), low, high)
		m = m.Mul(step)
	}
}

func (ds *Disc) color(base math32.Vector4, low, high float32) math32.Vector4 {
	if ds.ColorFunc != nil {
		return ds.ColorFunc(base, low, high)
	}
	return randx.RandomColor(base, low, high)
}

// RecomputeNormals re-estimates the normals and normal lines from the
// current vertex positions. It can be called any number of times.
func (ds *Disc) RecomputeNormals() {
	ds.Normal, ds.Lines = EstimateNormals(ds.params.Layout(), ds.Vertex, ds.Normal)
}

// Deform applies fn to every vertex, then updates the bounding box
// and recomputes the normals. It generates the mesh first if needed.
func (ds *Disc) Deform(fn func(i int, v math32.Vector3) math32.Vector3) {
	ds.Generate()
	for i, v := range ds.Vertex {
		ds.Vertex[i] = fn(i, v)
	}
	ds.CBBox.SetFromPoints(ds.Vertex)
	ds.RecomputeNormals()
}

// Restore resets the vertices to the snapshot taken at generation
// and recomputes the normals. It does nothing before generation.
func (ds *Disc) Restore() {
	if ds.IsEmpty() {
		return
	}
	ds.Vertex = slicesx.CopyFrom(ds.Vertex, ds.snapshot)
	ds.CBBox.SetFromPoints(ds.Vertex)
	ds.RecomputeNormals()
}

// Snapshot returns a copy of the vertices as generated.
func (ds *Disc) Snapshot() []math32.Vector3 {
	return slicesx.CopyFrom(nil, ds.snapshot)
}

// NormalLines returns the normal visualization line points.
func (ds *Disc) NormalLines() []math32.Vector3 {
	return ds.Lines
}

// MeshSize returns number of vertex, index points in this shape element.
func (ds *Disc) MeshSize() (numVertex, numIndex int, hasColor bool) {
	return ds.params.Layout().NumVertex(), ds.params.NumIndex(), true
}

// Set sets points in given allocated arrays, at the vertex and index
// offsets, generating the mesh first if needed.
func (ds *Disc) Set(vertex, normal, texcoord, clrs math32.ArrayF32, index math32.ArrayU32) {
	ds.Generate()
	vo, io := ds.Offsets()
	for i, v := range ds.Vertex {
		vi := vo + i
		vertex.SetVector3(3*vi, v)
		normal.SetVector3(3*vi, ds.Normal[i])
		texcoord.SetVector2(2*vi, ds.TexCoord[i])
		if clrs != nil {
			clrs.SetVector4(4*vi, ds.Color[i])
		}
	}
	for i, x := range ds.Index {
		index.Set(io+i, uint32(vo)+x)
	}
	ds.CBBox = BBoxFromVtxs(vertex, vo, len(ds.Vertex))
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render draws [shape.Mesh] values through a [Driver],
// which is the boundary to the actual graphics system.
package render

import (
	"fmt"

	"cogentcore.org/disc/math32"
	"cogentcore.org/disc/shape"
)

// Winding is the vertex winding order that counts as a front face.
type Winding int32

const (
	// CCW is counter-clockwise winding, the default.
	CCW Winding = iota

	// CW is clockwise winding.
	CW
)

func (w Winding) String() string {
	if w == CW {
		return "CW"
	}
	return "CCW"
}

// Driver is the graphics system that shapes are drawn with.
// All methods are called from the single goroutine that owns the shape.
type Driver interface {
	// Upload makes the given mesh buffers current for subsequent draws.
	Upload(name string, bufs *Buffers)

	// FrontFace returns the current front face winding.
	FrontFace() Winding

	// SetFrontFace sets the front face winding.
	SetFrontFace(w Winding)

	// DrawElements draws count indexes from the current index buffer,
	// assembled according to topo.
	DrawElements(topo shape.Topologies, count int)

	// DrawLines draws count points from the current line buffer
	// as a line list.
	DrawLines(count int)

	// Err returns and clears the first error recorded by the driver
	// since the last call, or nil.
	Err() error
}

// Mesh is a [shape.Mesh] that is generated lazily and carries
// normal visualization lines.
type Mesh interface {
	shape.Mesh

	// Generate generates the mesh if needed, returning true if it did.
	Generate() bool

	// NormalLines returns (vertex, vertex + scaled normal) point pairs.
	NormalLines() []math32.Vector3
}

// Buffers are the flat arrays uploaded for a mesh.
type Buffers struct {
	Vertex, Normal, TexCoord, Color math32.ArrayF32
	Index                           math32.ArrayU32

	// Lines are the normal visualization line points, 3 floats per point.
	Lines math32.ArrayF32
}

// NLines returns the number of line points.
func (bf *Buffers) NLines() int {
	return len(bf.Lines) / 3
}

func (bf *Buffers) String() string {
	return fmt.Sprintf("vertex=%d index=%d lines=%d", len(bf.Vertex)/3, len(bf.Index), bf.NLines())
}

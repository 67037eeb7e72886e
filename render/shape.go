// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"log/slog"

	"cogentcore.org/disc/base/errors"
	"cogentcore.org/disc/base/slicesx"
	"cogentcore.org/disc/shape"
)

// Shape is a named mesh with its upload buffers.
type Shape struct {
	// Name is used for upload and in error reports.
	Name string

	// Mesh is the source of the mesh data.
	Mesh Mesh

	Buffers

	initialized bool

	// uploaded is false when the buffers changed since the last upload.
	uploaded bool
}

// NewShape returns a new Shape for the given mesh.
func NewShape(name string, mesh Mesh) *Shape {
	return &Shape{Name: name, Mesh: mesh}
}

// Init sizes the buffers for the mesh and fills them from it.
// The mesh is generated first if needed.
func (sh *Shape) Init() {
	sh.Mesh.Generate()
	nVertex, nIndex, hasColor := sh.Mesh.MeshSize()
	sh.Vertex = slicesx.SetLength(sh.Vertex, nVertex*3)
	sh.Normal = slicesx.SetLength(sh.Normal, nVertex*3)
	sh.TexCoord = slicesx.SetLength(sh.TexCoord, nVertex*2)
	if hasColor {
		sh.Color = slicesx.SetLength(sh.Color, nVertex*4)
	} else {
		sh.Color = nil
	}
	sh.Index = slicesx.SetLength(sh.Index, nIndex)
	sh.Mesh.SetOffsets(0, 0)
	sh.Mesh.Set(sh.Vertex, sh.Normal, sh.TexCoord, sh.Color, sh.Index)
	sh.setLines()
	sh.initialized = true
	sh.uploaded = false
	slog.Debug("init", "shape", sh.Name, "buffers", sh.Buffers.String())
}

// Refresh refills the buffers after the mesh changed in place,
// for example after its normals were recomputed.
// The next [Shape.Draw] uploads them again.
func (sh *Shape) Refresh() {
	if !sh.initialized {
		sh.Init()
		return
	}
	sh.Mesh.Set(sh.Vertex, sh.Normal, sh.TexCoord, sh.Color, sh.Index)
	sh.setLines()
	sh.uploaded = false
}

func (sh *Shape) setLines() {
	lines := sh.Mesh.NormalLines()
	sh.Lines = slicesx.SetLength(sh.Lines, len(lines)*3)
	for i, p := range lines {
		sh.Lines.SetVector3(3*i, p)
	}
}

// Draw draws the shape with the given driver: its normal lines if
// drawNormals is set, otherwise its triangles. The mesh is generated and
// uploaded on the first draw, and uploaded again after a [Shape.Refresh].
// A triangle fan is drawn with CCW front faces,
// restoring the previous winding afterward. Driver errors found before
// and after drawing are logged and returned, never corrected.
func (sh *Shape) Draw(drv Driver, drawNormals bool) error {
	errStart := sh.ReportError(drv, "before draw")
	if sh.Mesh.Generate() || !sh.initialized {
		sh.Init()
	}
	if !sh.uploaded {
		drv.Upload(sh.Name, &sh.Buffers)
		sh.uploaded = true
	}
	if drawNormals {
		drv.DrawLines(sh.NLines())
	} else {
		topo := sh.Mesh.Topology()
		if topo == shape.TriangleFan {
			prev := drv.FrontFace()
			drv.SetFrontFace(CCW)
			drv.DrawElements(topo, len(sh.Index))
			drv.SetFrontFace(prev)
		} else {
			drv.DrawElements(topo, len(sh.Index))
		}
	}
	errEnd := sh.ReportError(drv, "after draw")
	return errors.Join(errStart, errEnd)
}

// ReportError logs and returns any pending driver error,
// noting where it was found.
func (sh *Shape) ReportError(drv Driver, where string) error {
	err := drv.Err()
	if err == nil {
		return nil
	}
	return errors.Log(errors.Errorf("render: shape %q %s: %w", sh.Name, where, err))
}

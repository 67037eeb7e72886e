// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "cogentcore.org/disc/math32"

// NormalScale is the length of the normal visualization lines
// relative to a unit normal.
const NormalScale = float32(1) / 8

// EstimateNormals returns per-vertex shading normals for the given
// vertex positions, recovered from local wedges only, together with the
// normal visualization lines: a (vertex, vertex + normal*[NormalScale])
// pair per vertex. Neighbors come from the layout, never from a stored
// graph, so this can be run again after the vertices are deformed.
//
// Vertices that the estimator does not cover keep their current normal:
// that is every vertex of a closed annulus, and the inner ring of an
// open one. It does not modify its arguments.
func EstimateNormals(ly Layout, vertex, current []math32.Vector3) (normals, lines []math32.Vector3) {
	normals = make([]math32.Vector3, len(vertex))
	copy(normals, current)
	if ly.NumVertex() == len(vertex) {
		if ly.Fan {
			fanNormals(ly, vertex, normals)
		} else if !ly.Sweep.Wraps() {
			annulusNormals(ly, vertex, normals)
		}
	}
	lines = NormalLines(vertex, normals)
	return
}

// NormalLines returns the visualization segments for given normals.
func NormalLines(vertex, normals []math32.Vector3) []math32.Vector3 {
	lines := make([]math32.Vector3, 0, 2*len(vertex))
	for i, v := range vertex {
		lines = append(lines, v, v.Add(normals[i].MulScalar(NormalScale)))
	}
	return lines
}

// wedgeSum accumulates wedge normals, ignoring degenerate wedges.
type wedgeSum struct {
	sum math32.Vector3
	n   int
}

func (ws *wedgeSum) add(nrm math32.Vector3) {
	if nrm.IsNil() {
		return
	}
	ws.sum.SetAdd(nrm)
	ws.n++
}

// normal returns the negated average, or fallback if there were no
// usable wedges. Wedges are taken clockwise, so negation gives the
// outward side of a counter-clockwise sweep.
func (ws *wedgeSum) normal(fallback math32.Vector3) math32.Vector3 {
	if ws.n == 0 {
		return fallback
	}
	return ws.sum.DivScalar(float32(max(1, ws.n))).Negate()
}

func fanNormals(ly Layout, vertex, normals []math32.Vector3) {
	n := ly.Samples
	c := vertex[ly.Center()]

	var center wedgeSum
	for k := range ly.Sweep.Wedges(n) {
		nk, _ := ly.Sweep.Next(k, n)
		center.add(math32.EdgeNormal(c, vertex[ly.Outer(nk)], vertex[ly.Outer(k)]))
	}
	normals[ly.Center()] = center.normal(normals[ly.Center()])

	for k := range n {
		vi := ly.Outer(k)
		v := vertex[vi]
		var ws wedgeSum
		if nk, ok := ly.Sweep.Next(k, n); ok {
			ws.add(math32.EdgeNormal(v, c, vertex[ly.Outer(nk)]))
		}
		if pk, ok := ly.Sweep.Prev(k, n); ok {
			ws.add(math32.EdgeNormal(v, vertex[ly.Outer(pk)], c))
		}
		normals[vi] = ws.normal(normals[vi])
	}
}

// annulusNormals covers the outer ring of an open annulus. The seam
// vertex uses its first triangle alone. Every other outer vertex
// averages the two triangles of the slice before it.
func annulusNormals(ly Layout, vertex, normals []math32.Vector3) {
	n := ly.Samples
	for k := range n {
		vi := ly.Outer(k)
		v := vertex[vi]
		var ws wedgeSum
		if k == 0 {
			if n > 1 {
				ws.add(math32.EdgeNormal(v, vertex[ly.Inner(0)], vertex[ly.Outer(1)]))
			}
		} else {
			po, pi, ci := vertex[ly.Outer(k-1)], vertex[ly.Inner(k-1)], vertex[ly.Inner(k)]
			ws.add(math32.EdgeNormal(v, po, pi))
			ws.add(math32.EdgeNormal(v, pi, ci))
		}
		normals[vi] = ws.normal(normals[vi])
	}
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "cogentcore.org/disc/math32"

// Params are the fixed construction parameters of a disc.
// They are sanitized by [NewParams] and never change afterward.
type Params struct {

	// number of angular subdivisions
	Slices int

	// angular span in radians, in (0, [math32.FullTurn]]
	Span float32

	// radius of the outer ring
	OuterRadius float32

	// radius of the inner ring: 0 selects a fan, > 0 an annulus
	InnerRadius float32
}

// NewParams returns sanitized disc parameters. A zero or NaN span
// returns an [*InvalidSpanError]. All other inputs are made non-negative,
// and the span is clamped to one full turn.
func NewParams(slices int, span, outerRadius, innerRadius float32) (Params, error) {
	if span == 0 || math32.IsNaN(span) {
		return Params{}, &InvalidSpanError{Span: span}
	}
	if slices < 0 {
		slices = -slices
	}
	p := Params{
		Slices:      slices,
		Span:        math32.Min(math32.Abs(span), math32.FullTurn),
		OuterRadius: math32.Abs(outerRadius),
		InnerRadius: math32.Abs(innerRadius),
	}
	return p, nil
}

// IsFan returns true for the fan topology (no inner ring).
func (p Params) IsFan() bool {
	return p.InnerRadius == 0
}

// IsPartialSpan returns true when the span is less than a full turn.
func (p Params) IsPartialSpan() bool {
	return p.Span < math32.FullTurn
}

// Sweep returns the open or closed variant for the span.
func (p Params) Sweep() Sweep {
	if p.IsPartialSpan() {
		return OpenSweep
	}
	return ClosedSweep
}

// Samples returns the effective number of samples on each ring.
func (p Params) Samples() int {
	return p.Sweep().Samples(p.Slices)
}

// Theta returns the angular step between samples. The divisor is the
// slice count, so an open sweep covers exactly the span.
func (p Params) Theta() float32 {
	return p.Span / float32(max(1, p.Slices))
}

// Layout returns the vertex layout for these parameters.
func (p Params) Layout() Layout {
	return Layout{Sweep: p.Sweep(), Samples: p.Samples(), Fan: p.IsFan()}
}

// NumIndex returns the number of indexes generated.
func (p Params) NumIndex() int {
	if p.IsFan() {
		n := 1 + p.Samples()
		if !p.IsPartialSpan() && p.Samples() > 0 {
			n++
		}
		return n
	}
	return 6 * p.Slices
}

// Topology returns how the indexes are assembled into triangles.
func (p Params) Topology() Topologies {
	if p.IsFan() {
		return TriangleFan
	}
	return TriangleList
}

// NumTriangles returns the number of triangles in the mesh.
func (p Params) NumTriangles() int {
	if p.IsFan() {
		return max(0, p.NumIndex()-2)
	}
	return 2 * p.Slices
}

// Degenerate returns a [*DegenerateGeometryWarning] if the parameters
// produce degenerate geometry, or nil.
func (p Params) Degenerate() error {
	reason := ""
	switch {
	case p.Slices == 0:
		reason = "zero slices"
	case p.OuterRadius == 0:
		reason = "zero outer radius"
	case !p.IsFan() && p.InnerRadius == p.OuterRadius:
		reason = "zero width annulus"
	default:
		return nil
	}
	return &DegenerateGeometryWarning{Slices: p.Slices, OuterRadius: p.OuterRadius, InnerRadius: p.InnerRadius, Reason: reason}
}

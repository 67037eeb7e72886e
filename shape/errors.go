// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "fmt"

// InvalidSpanError is returned when a disc is constructed with a zero
// (or NaN) angular span. No shape is created.
type InvalidSpanError struct {
	Span float32
}

func (e *InvalidSpanError) Error() string {
	return fmt.Sprintf("shape: invalid disc span %v: must be non-zero", e.Span)
}

// DegenerateGeometryWarning describes parameters that produce well defined
// but degenerate geometry, such as zero slices or zero-length rings.
// It is never fatal: the mesh is still generated.
type DegenerateGeometryWarning struct {
	Slices      int
	OuterRadius float32
	InnerRadius float32

	// Reason is a short description of what is degenerate.
	Reason string
}

func (w *DegenerateGeometryWarning) Error() string {
	return fmt.Sprintf("shape: degenerate disc geometry (slices=%d outer=%v inner=%v): %s", w.Slices, w.OuterRadius, w.InnerRadius, w.Reason)
}

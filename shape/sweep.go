// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

// Sweep is the angular extent variant of a ring of samples.
// A ClosedSweep covers a full turn, so the last sample is the angular
// neighbor of the first. An OpenSweep covers less than a full turn and
// carries one extra sample to place the far edge of the open seam.
type Sweep int32

const (
	// ClosedSweep is a full turn, with wraparound between the last and
	// first samples.
	ClosedSweep Sweep = iota

	// OpenSweep is a partial turn: the first and last samples are
	// distinct seam vertices with no wraparound neighbor.
	OpenSweep
)

func (sw Sweep) String() string {
	if sw == OpenSweep {
		return "OpenSweep"
	}
	return "ClosedSweep"
}

// Wraps returns true if the last sample is a neighbor of the first.
func (sw Sweep) Wraps() bool {
	return sw == ClosedSweep
}

// Samples returns the number of ring samples needed for given slices.
func (sw Sweep) Samples(slices int) int {
	if sw == OpenSweep {
		return slices + 1
	}
	return slices
}

// Next returns the sample after i in a ring of n samples, and false
// if there is none (end of an open sweep, or a ring of one).
func (sw Sweep) Next(i, n int) (int, bool) {
	j := i + 1
	if j >= n {
		if !sw.Wraps() {
			return 0, false
		}
		j = 0
	}
	return j, j != i
}

// Prev returns the sample before i in a ring of n samples, and false
// if there is none (start of an open sweep, or a ring of one).
func (sw Sweep) Prev(i, n int) (int, bool) {
	j := i - 1
	if j < 0 {
		if !sw.Wraps() || n == 0 {
			return 0, false
		}
		j = n - 1
	}
	return j, j != i
}

// Wedges returns the number of wedges between consecutive samples
// of a ring of n samples.
func (sw Sweep) Wedges(n int) int {
	if n < 2 {
		return 0
	}
	if sw.Wraps() {
		return n
	}
	return n - 1
}

// Layout maps ring membership and angular sample index to a vertex
// index, using the same ordering as generation. It is the only
// adjacency there is: neighbors are derived from it by arithmetic.
type Layout struct {
	Sweep Sweep

	// Samples is the number of samples on each ring.
	Samples int

	// Fan is true for a single ring around a center vertex,
	// false for an outer ring followed by an inner ring.
	Fan bool
}

// Center returns the index of the fan center vertex.
func (ly Layout) Center() int {
	return 0
}

// Outer returns the vertex index of sample k on the outer ring.
func (ly Layout) Outer(k int) int {
	if ly.Fan {
		return 1 + k
	}
	return k
}

// Inner returns the vertex index of sample k on the inner ring.
// Only valid for an annulus.
func (ly Layout) Inner(k int) int {
	return ly.Samples + k
}

// NumVertex returns the total number of vertices.
func (ly Layout) NumVertex() int {
	if ly.Fan {
		return 1 + ly.Samples
	}
	return 2 * ly.Samples
}

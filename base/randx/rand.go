// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package randx provides random number sources and the color
// jitter used to give generated meshes per-vertex colors.
package randx

import "math/rand"

// Rand provides an interface with the subset of the standard
// rand.Rand methods used here, to support the use of either the
// global rand generator or a separate Rand source.
type Rand interface {
	// Float64 returns, as a float64, a pseudo-random number in the half-open interval [0.0,1.0).
	Float64() float64

	// Float32 returns, as a float32, a pseudo-random number in the half-open interval [0.0,1.0).
	Float32() float32

	// Intn returns, as an int, a non-negative pseudo-random number in the half-open interval [0,n).
	// It panics if n <= 0.
	Intn(n int) int
}

// SysRand supports the system random number generator
// for either a separate rand.Rand source, or, if that
// is nil, the global rand stream.
type SysRand struct {

	// if non-nil, use this random number source instead of the global default one
	Rand *rand.Rand `display:"-"`
}

// NewGlobalRand returns a new SysRand that implements the
// randx.Rand interface, with the system global rand source.
func NewGlobalRand() *SysRand {
	r := &SysRand{}
	return r
}

// NewSysRand returns a new SysRand with a new
// rand.Rand random source with given initial seed.
func NewSysRand(seed int64) *SysRand {
	r := &SysRand{}
	r.NewRand(seed)
	return r
}

// NewRand sets Rand to a new rand.Rand source using given seed.
func (r *SysRand) NewRand(seed int64) {
	r.Rand = rand.New(rand.NewSource(seed))
}

// Float64 returns, as a float64, a pseudo-random number in the half-open interval [0.0,1.0).
func (r *SysRand) Float64() float64 {
	if r.Rand == nil {
		return rand.Float64()
	}
	return r.Rand.Float64()
}

// Float32 returns, as a float32, a pseudo-random number in the half-open interval [0.0,1.0).
func (r *SysRand) Float32() float32 {
	if r.Rand == nil {
		return rand.Float32()
	}
	return r.Rand.Float32()
}

// Intn returns, as an int, a non-negative pseudo-random number in the half-open interval [0,n).
// It panics if n <= 0.
func (r *SysRand) Intn(n int) int {
	if r.Rand == nil {
		return rand.Intn(n)
	}
	return r.Rand.Intn(n)
}

// optRand returns the first of the optional Rand arguments,
// or the global source if there are none.
func optRand(randOpt []Rand) Rand {
	if len(randOpt) == 0 || randOpt[0] == nil {
		return NewGlobalRand()
	}
	return randOpt[0]
}

// UniformRange returns a uniformly distributed value in [low, high).
// Optionally can pass a single Rand interface to use --
// otherwise uses system global Rand source.
func UniformRange(low, high float32, randOpt ...Rand) float32 {
	rnd := optRand(randOpt)
	return low + rnd.Float32()*(high-low)
}

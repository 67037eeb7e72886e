// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import "cogentcore.org/disc/math32"

// Default jitter bounds used by [RandomColor] callers that do not
// need a particular spread.
const (
	DefaultJitterLow  = float32(-0.1)
	DefaultJitterHigh = float32(0.1)
)

// RandomColor returns the base RGBA color with each of the R, G, B
// components offset by an independent uniform value in [low, high),
// clamped to [0, 1]. Alpha is kept from base.
// Optionally can pass a single Rand interface to use --
// otherwise uses system global Rand source.
func RandomColor(base math32.Vector4, low, high float32, randOpt ...Rand) math32.Vector4 {
	rnd := optRand(randOpt)
	c := base
	c.X += UniformRange(low, high, rnd)
	c.Y += UniformRange(low, high, rnd)
	c.Z += UniformRange(low, high, rnd)
	c.Clamp(math32.Vector4Scalar(0), math32.Vector4Scalar(1))
	c.W = base.W
	return c
}

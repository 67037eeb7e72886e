// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// EdgeNormal returns the unit normal of the wedge spanned by the edges
// from apex to a and from apex to b, as normalize(â × b̂).
// Each edge is normalized before the cross product, so long and short
// edges weigh the same. Collinear or zero-length edges give the zero vector.
func EdgeNormal(apex, a, b Vector3) Vector3 {
	ea := a.Sub(apex).Normal()
	eb := b.Sub(apex).Normal()
	return ea.Cross(eb).Normal()
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"io"

	"cogentcore.org/disc/shape"
)

// Call is one recorded [Driver] call.
type Call struct {
	Op    string
	Name  string
	Topo  shape.Topologies
	Count int
	Face  Winding
}

func (c Call) String() string {
	switch c.Op {
	case "upload":
		return fmt.Sprintf("upload %s", c.Name)
	case "front-face":
		return fmt.Sprintf("front-face %v", c.Face)
	case "elements":
		return fmt.Sprintf("elements %v %d", c.Topo, c.Count)
	case "lines":
		return fmt.Sprintf("lines %d", c.Count)
	}
	return c.Op
}

// Recorder is a [Driver] that records the calls made to it,
// for testing and for printing what a draw would do.
type Recorder struct {
	Calls []Call

	// Uploaded is the last uploaded buffers.
	Uploaded *Buffers

	// Fail, if set, is returned once by the next call to Err.
	Fail error

	face Winding
}

func (rc *Recorder) Upload(name string, bufs *Buffers) {
	rc.Uploaded = bufs
	rc.Calls = append(rc.Calls, Call{Op: "upload", Name: name})
}

func (rc *Recorder) FrontFace() Winding {
	return rc.face
}

func (rc *Recorder) SetFrontFace(w Winding) {
	rc.face = w
	rc.Calls = append(rc.Calls, Call{Op: "front-face", Face: w})
}

func (rc *Recorder) DrawElements(topo shape.Topologies, count int) {
	rc.Calls = append(rc.Calls, Call{Op: "elements", Topo: topo, Count: count, Face: rc.face})
}

func (rc *Recorder) DrawLines(count int) {
	rc.Calls = append(rc.Calls, Call{Op: "lines", Topo: shape.LineList, Count: count, Face: rc.face})
}

func (rc *Recorder) Err() error {
	err := rc.Fail
	rc.Fail = nil
	return err
}

// Reset clears the recorded calls.
func (rc *Recorder) Reset() {
	rc.Calls = nil
}

// WriteTo writes the recorded calls, one per line.
func (rc *Recorder) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, c := range rc.Calls {
		m, err := fmt.Fprintln(w, c)
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"cogentcore.org/disc/config"
	"cogentcore.org/disc/render"
	"cogentcore.org/disc/shape"
	"github.com/spf13/cobra"
)

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the topology and sizes of the mesh",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeInfo(a.out, &a.cfg)
		},
	}
}

func (a *app) normalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normals",
		Short: "Recompute and print the vertex normals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeNormals(a.out, &a.cfg)
		},
	}
}

func (a *app) drawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Draw the mesh with a recording driver and print the calls",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeDraw(a.out, &a.cfg)
		},
	}
	cmd.Flags().BoolVarP(&a.normals, "normals", "n", false, "draw the normal lines")
	return cmd
}

func writeInfo(w io.Writer, cfg *config.Config) error {
	ds, err := cfg.NewDisc()
	if err != nil {
		return err
	}
	ds.Generate()
	p := ds.Params()
	nv, ni, _ := ds.MeshSize()
	bb := ds.MeshBBox()
	fmt.Fprintf(w, "topology:  %v\n", p.Topology())
	fmt.Fprintf(w, "sweep:     %v\n", p.Sweep())
	fmt.Fprintf(w, "slices:    %d\n", p.Slices)
	fmt.Fprintf(w, "samples:   %d\n", p.Samples())
	fmt.Fprintf(w, "vertices:  %d\n", nv)
	fmt.Fprintf(w, "indices:   %d\n", ni)
	fmt.Fprintf(w, "triangles: %d\n", p.NumTriangles())
	if !bb.IsEmpty() {
		fmt.Fprintf(w, "bbox:      %v %v\n", bb.Min, bb.Max)
	}
	if dg := ds.Degenerate(); dg != nil {
		fmt.Fprintf(w, "warning:   %v\n", dg)
	}
	return nil
}

func writeNormals(w io.Writer, cfg *config.Config) error {
	ds, err := cfg.NewDisc()
	if err != nil {
		return err
	}
	ds.Generate()
	ds.RecomputeNormals()
	for i, n := range ds.Normal {
		fmt.Fprintf(w, "%d: %v\n", i, n)
	}
	return nil
}

func writeDraw(w io.Writer, cfg *config.Config) error {
	ds, err := cfg.NewDisc()
	if err != nil {
		return err
	}
	sh := render.NewShape(discName(ds), ds)
	rc := &render.Recorder{}
	err = sh.Draw(rc, cfg.DrawNormals)
	if _, werr := rc.WriteTo(w); werr != nil {
		return werr
	}
	return err
}

func discName(ds *shape.Disc) string {
	if ds.Params().IsFan() {
		return "disc"
	}
	return "annulus"
}

// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"log/slog"

	"cogentcore.org/disc/base/logx"
	"cogentcore.org/disc/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// app holds the state shared by all commands.
type app struct {
	out io.Writer
	cfg config.Config

	// config file to open, if any
	file string

	// file to save the resolved config to, if any
	writeConfig string

	slices             int
	span, outer, inner float32
	seed               int64
	normals            bool

	verbose, veryVerbose, quiet bool

	// flags is the persistent flag set, for checking which were given
	flags *pflag.FlagSet
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}
	root := &cobra.Command{
		Use:          "disc",
		Short:        "Generate disc and annulus meshes",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logx.UserLevel = logx.LevelFromFlags(a.veryVerbose, a.verbose, a.quiet)
			logx.SetDefaultLogger()
			if err := a.load(); err != nil {
				return err
			}
			if a.writeConfig != "" {
				if err := config.Save(&a.cfg, a.writeConfig); err != nil {
					return err
				}
				slog.Info("wrote config", "file", a.writeConfig)
			}
			return nil
		},
	}
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.StringVarP(&a.file, "config", "c", "", "config file to open (.toml, .yaml or .yml)")
	pf.StringVar(&a.writeConfig, "write-config", "", "save the resolved config to this file")
	pf.IntVarP(&a.slices, "slices", "s", 32, "number of angular subdivisions")
	pf.Float32Var(&a.span, "span", 360, "angular span in degrees")
	pf.Float32Var(&a.outer, "outer", 1, "outer radius")
	pf.Float32Var(&a.inner, "inner", 0, "inner radius; 0 makes a solid disc")
	pf.Int64Var(&a.seed, "seed", 0, "seed for the vertex colors; 0 is random")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "show info messages")
	pf.BoolVar(&a.veryVerbose, "vv", false, "show debug messages")
	pf.BoolVarP(&a.quiet, "quiet", "q", false, "only show errors")
	a.flags = pf

	root.AddCommand(a.infoCmd(), a.normalsCmd(), a.drawCmd(), a.watchCmd())
	return root
}

// load resolves the config: defaults, then the config file,
// then any flags given on the command line.
func (a *app) load() error {
	a.cfg.Defaults()
	if a.file != "" {
		if err := config.Open(&a.cfg, a.file); err != nil {
			return err
		}
	}
	return config.Merge(&a.cfg, a.overrides())
}

func (a *app) overrides() *config.Overrides {
	ov := &config.Overrides{}
	changed := a.flags.Changed
	if changed("slices") {
		ov.Slices = &a.slices
	}
	if changed("span") {
		ov.Span = &a.span
	}
	if changed("outer") {
		ov.OuterRadius = &a.outer
	}
	if changed("inner") {
		ov.InnerRadius = &a.inner
	}
	if changed("seed") {
		ov.Seed = &a.seed
	}
	if a.normals {
		ov.DrawNormals = &a.normals
	}
	return ov
}

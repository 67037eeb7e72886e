// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"log/slog"
	"path/filepath"

	"cogentcore.org/disc/base/errors"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func (a *app) watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <file>",
		Short: "Print the mesh info each time the given config file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.file = args[0]
			if err := a.reload(); err != nil {
				return err
			}
			return watch(cmd.Context(), a.file, func() {
				errors.Log(a.reload())
			})
		},
	}
}

// reload reopens the config and prints the info.
func (a *app) reload() error {
	if err := a.load(); err != nil {
		return err
	}
	return writeInfo(a.out, &a.cfg)
}

// watch calls onChange each time the given file is written or
// replaced, until ctx is done. The directory is watched rather than
// the file, so that editors that replace the file are followed.
func watch(ctx context.Context, file string, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	file = filepath.Clean(file)
	if err := watcher.Add(filepath.Dir(file)); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != file {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				slog.Debug("config changed", "file", file, "op", event.Op)
				onChange()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}

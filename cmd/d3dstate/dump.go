// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"io"
	"os"

	"github.com/dromanov/apitrace/core/data/jsonw"
	"github.com/dromanov/apitrace/core/log"
	"github.com/dromanov/apitrace/gapis/api/d3d11"
	"github.com/dromanov/apitrace/gapis/api/d3d11/scene"
	"github.com/spf13/cobra"
)

type dumpVerb struct {
	Scene string
	Out   string
}

func init() {
	verb := &dumpVerb{}
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Build a scene and dump its bound textures and framebuffer as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return verb.Run(appCtx, cfg)
		},
	}
	cmd.Flags().StringVar(&verb.Scene, "scene", "", "scene file (default is the scene of the config)")
	cmd.Flags().StringVarP(&verb.Out, "out", "o", "", "output file (default is stdout)")
	rootCmd.AddCommand(cmd)
}

func (verb *dumpVerb) loadScene(ctx context.Context, c *Config) (*scene.Scene, error) {
	if verb.Scene == "" {
		return &c.Scene, nil
	}
	f, err := os.Open(verb.Scene)
	if err != nil {
		return nil, log.Errf(ctx, err, "Opening scene %v", verb.Scene)
	}
	defer f.Close()
	return scene.Load(f)
}

func (verb *dumpVerb) Run(ctx context.Context, c *Config) error {
	ctx = log.Enter(ctx, "dump")
	opts, err := c.Dump.Options()
	if err != nil {
		return err
	}
	s, err := verb.loadScene(ctx, c)
	if err != nil {
		return err
	}

	dc, release, err := openDevice(ctx, c)
	if err != nil {
		return err
	}
	defer release()

	state, err := scene.Build(ctx, dc, s)
	if err != nil {
		return log.Err(ctx, err, "Building scene")
	}
	defer state.Release()

	var stats d3d11.Stats
	err = writeOutput(ctx, verb.Out, func(out io.Writer) error {
		stats, err = writeDump(ctx, out, dc, opts, c.Dump.Indent)
		return err
	})
	if err != nil {
		return err
	}
	for _, e := range stats.Skipped {
		log.W(ctx, "Skipped %v", e)
	}
	log.I(ctx, "Dumped %d images", stats.Images)
	return nil
}

// writeOutput calls write with the file at path, or with stdout if path is
// empty. The file is closed before returning.
func writeOutput(ctx context.Context, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return log.Errf(ctx, err, "Creating %v", path)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return log.Errf(ctx, err, "Closing %v", path)
	}
	return nil
}

// writeDump writes the JSON dump of the state bound to dc to out.
func writeDump(ctx context.Context, out io.Writer, dc d3d11.DeviceContext, opts d3d11.DumpOptions, indent string) (d3d11.Stats, error) {
	w := jsonw.New(out, indent)
	stats := d3d11.DumpState(ctx, w, dc, opts)
	if err := w.Close(); err != nil {
		return stats, log.Err(ctx, err, "Writing dump")
	}
	return stats, nil
}

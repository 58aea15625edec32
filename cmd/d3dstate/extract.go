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
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/dromanov/apitrace/core/log"
	"github.com/spf13/cobra"
)

type extractVerb struct {
	Dir       string
	Only      string
	Thumbnail int
}

func init() {
	verb := &extractVerb{}
	cmd := &cobra.Command{
		Use:   "extract <dump.json>",
		Short: "Write the images of a state dump to PNG files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("thumbnail") {
				verb.Thumbnail = cfg.Thumbnail
			}
			return verb.Run(appCtx, args[0])
		},
	}
	cmd.Flags().StringVarP(&verb.Dir, "dir", "d", ".", "output directory")
	cmd.Flags().StringVar(&verb.Only, "only", "", "only extract images whose path contains this text")
	cmd.Flags().IntVar(&verb.Thumbnail, "thumbnail", 0, "shrink images to fit this size (default is the thumbnail of the config)")
	rootCmd.AddCommand(cmd)
}

func (verb *extractVerb) Run(ctx context.Context, file string) error {
	ctx = log.Enter(ctx, "extract")
	f, err := os.Open(file)
	if err != nil {
		return log.Errf(ctx, err, "Opening %v", file)
	}
	defer f.Close()
	images, err := readDump(f)
	if err != nil {
		return log.Errf(ctx, err, "Reading %v", file)
	}
	if err := os.MkdirAll(verb.Dir, 0755); err != nil {
		return log.Errf(ctx, err, "Creating %v", verb.Dir)
	}
	count := 0
	for _, i := range images {
		if verb.Only != "" && !strings.Contains(i.Path, verb.Only) {
			continue
		}
		fn := filepath.Join(verb.Dir, i.FileName())
		if err := verb.write(i, fn); err != nil {
			return log.Errf(ctx, err, "Writing %v", fn)
		}
		log.D(ctx, "Wrote %v", fn)
		count++
	}
	log.I(ctx, "Extracted %d of %d images", count, len(images))
	return nil
}

func (verb *extractVerb) write(i dumpedImage, fn string) error {
	img, err := i.Image(verb.Thumbnail)
	if err != nil {
		return err
	}
	out, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer out.Close()
	return png.Encode(out, img)
}

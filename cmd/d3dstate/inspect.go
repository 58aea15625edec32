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

	"github.com/dromanov/apitrace/core/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type inspectVerb struct{}

func init() {
	verb := &inspectVerb{}
	rootCmd.AddCommand(&cobra.Command{
		Use:   "inspect <dump.json>",
		Short: "List the images of a state dump as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return verb.Run(appCtx, cmd.OutOrStdout(), args[0])
		},
	})
}

// summary is the YAML document written by inspect.
type summary struct {
	Count  int           `yaml:"count"`
	Images []dumpedImage `yaml:"images"`
}

func (verb *inspectVerb) Run(ctx context.Context, out io.Writer, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return log.Errf(ctx, err, "Opening %v", file)
	}
	defer f.Close()
	images, err := readDump(f)
	if err != nil {
		return log.Errf(ctx, err, "Reading %v", file)
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(summary{Count: len(images), Images: images}); err != nil {
		return err
	}
	return enc.Close()
}

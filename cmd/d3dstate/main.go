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

// The d3dstate command builds D3D11 pipeline state from a scene description,
// dumps the bound textures and framebuffer attachments as JSON, and
// inspects or extracts the images of such dumps.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	profiling string
	cfg       *Config
	appCtx    = context.Background()
	stopProf  interface{ Stop() }
)

var rootCmd = &cobra.Command{
	Use:           "d3dstate",
	Short:         "Dump and inspect D3D11 pipeline state images",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := LoadConfig(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}
		ctx, err := c.Log.context(context.Background())
		if err != nil {
			return err
		}
		cfg, appCtx = c, ctx
		return startProfile(profiling)
	},
}

func startProfile(mode string) error {
	switch mode {
	case "":
	case "cpu":
		stopProf = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet)
	case "mem":
		stopProf = profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet)
	default:
		return errors.Errorf("Unknown profile mode '%s'", mode)
	}
	return nil
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./d3dstate.yaml)")
	flags.String("log-style", "normal", "log style: raw, brief, normal or detailed")
	flags.String("log-level", "info", "minimum severity of the logged messages")
	flags.StringVar(&profiling, "profile", "", "write a cpu or mem profile to the working directory")
}

func main() {
	err := rootCmd.Execute()
	if stopProf != nil {
		stopProf.Stop()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

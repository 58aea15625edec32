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
	"strings"

	"github.com/dromanov/apitrace/core/log"
	"github.com/dromanov/apitrace/gapis/api/d3d11"
	"github.com/dromanov/apitrace/gapis/api/d3d11/scene"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is the configuration of the d3dstate command.
type Config struct {
	// Device is the device the scene is built on: "soft" or "native".
	Device string `mapstructure:"device"`
	// Driver selects the native driver: "hardware", "warp" or "reference".
	Driver string      `mapstructure:"driver"`
	Log    LogConfig   `mapstructure:"log"`
	Dump   DumpConfig  `mapstructure:"dump"`
	Scene  scene.Scene `mapstructure:"scene"`
	// Thumbnail is the size extracted images are shrunk to. 0 keeps the
	// original size.
	Thumbnail int `mapstructure:"thumbnail"`
}

// LogConfig selects how messages are logged.
type LogConfig struct {
	Style string `mapstructure:"style"`
	Level string `mapstructure:"level"`
}

// DumpConfig controls which bindings are dumped.
type DumpConfig struct {
	Stages             []string `mapstructure:"stages"`
	MaxShaderResources uint32   `mapstructure:"max_shader_resources"`
	MaxRenderTargets   uint32   `mapstructure:"max_render_targets"`
	Indent             string   `mapstructure:"indent"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("device", "soft")
	v.SetDefault("driver", "hardware")
	v.SetDefault("log.style", log.Normal.Name)
	v.SetDefault("log.level", "info")
	v.SetDefault("dump.stages", []string{})
	v.SetDefault("dump.max_shader_resources", d3d11.SamplerSlotCount)
	v.SetDefault("dump.max_render_targets", d3d11.SimultaneousRenderTargetCount)
	v.SetDefault("dump.indent", "  ")
	v.SetDefault("thumbnail", 0)
}

// LoadConfig reads the configuration from file, or from d3dstate.yaml in the
// working directory when file is empty. Environment variables prefixed with
// D3DSTATE_ and the log flags of flags override the file.
func LoadConfig(file string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("d3dstate")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix("D3DSTATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range map[string]string{"log.style": "log-style", "log.level": "log-level"} {
			if f := flags.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Wrap(err, "Reading config")
		}
	}
	out := &Config{}
	if err := v.Unmarshal(out); err != nil {
		return nil, errors.Wrap(err, "Decoding config")
	}
	return out, nil
}

func (c LogConfig) context(ctx context.Context) (context.Context, error) {
	style, err := log.StyleByName(c.Style)
	if err != nil {
		return nil, err
	}
	severity, err := log.ParseSeverity(c.Level)
	if err != nil {
		return nil, err
	}
	ctx = log.PutHandler(ctx, style.Handler(log.Std()))
	ctx = log.PutFilter(ctx, log.SeverityFilter(severity))
	return ctx, nil
}

// Options returns the dump options of c.
func (c DumpConfig) Options() (d3d11.DumpOptions, error) {
	out := d3d11.DumpOptions{
		MaxShaderResources: c.MaxShaderResources,
		MaxRenderTargets:   c.MaxRenderTargets,
	}
	for _, name := range c.Stages {
		s, err := d3d11.ParseStage(name)
		if err != nil {
			return d3d11.DumpOptions{}, err
		}
		out.Stages = append(out.Stages, s)
	}
	if out.MaxShaderResources > d3d11.SamplerSlotCount {
		return d3d11.DumpOptions{}, errors.Errorf("max_shader_resources of %d exceeds %d", out.MaxShaderResources, d3d11.SamplerSlotCount)
	}
	if out.MaxRenderTargets > d3d11.SimultaneousRenderTargetCount {
		return d3d11.DumpOptions{}, errors.Errorf("max_render_targets of %d exceeds %d", out.MaxRenderTargets, d3d11.SimultaneousRenderTargetCount)
	}
	return out, nil
}

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

	"github.com/dromanov/apitrace/core/fault"
	"github.com/dromanov/apitrace/core/log"
	"github.com/dromanov/apitrace/gapis/api/d3d11"
	"github.com/dromanov/apitrace/gapis/api/d3d11/soft"
	"github.com/pkg/errors"
)

// ErrNoDevice is returned when the configured device is not available.
const ErrNoDevice = fault.Const("Device not available")

// openDevice returns the immediate context of a new device of the configured
// kind, and the function that releases it.
func openDevice(ctx context.Context, c *Config) (d3d11.DeviceContext, func(), error) {
	log.D(ctx, "Opening %s device", c.Device)
	switch c.Device {
	case "soft", "":
		dev, dc := soft.New()
		return dc, func() {
			dc.Release()
			dev.Release()
		}, nil
	case "native":
		return openNative(ctx, c.Driver)
	}
	return nil, nil, errors.Wrapf(ErrNoDevice, "Unknown device %q", c.Device)
}

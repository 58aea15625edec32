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

//go:build windows

package main

import (
	"context"

	"github.com/dromanov/apitrace/core/log"
	"github.com/dromanov/apitrace/gapis/api/d3d11"
	"github.com/dromanov/apitrace/gapis/api/d3d11/native"
	"github.com/pkg/errors"
)

var drivers = map[string]native.DriverType{
	"hardware":  native.DriverHardware,
	"warp":      native.DriverWARP,
	"reference": native.DriverReference,
}

func openNative(ctx context.Context, driver string) (d3d11.DeviceContext, func(), error) {
	t, ok := drivers[driver]
	if !ok {
		return nil, nil, errors.Wrapf(ErrNoDevice, "Unknown driver %q", driver)
	}
	filter := log.GetFilter(ctx)
	debug := filter != nil && filter.ShowSeverity(log.Debug)
	dev, dc, err := native.New(native.Options{Driver: t, Debug: debug})
	if err != nil {
		return nil, nil, errors.Wrap(ErrNoDevice, err.Error())
	}
	return dc, func() {
		dc.Release()
		dev.Release()
	}, nil
}

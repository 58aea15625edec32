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

//go:build !windows

package main

import (
	"context"

	"github.com/dromanov/apitrace/gapis/api/d3d11"
	"github.com/pkg/errors"
)

func openNative(ctx context.Context, driver string) (d3d11.DeviceContext, func(), error) {
	return nil, nil, errors.Wrap(ErrNoDevice, "Native devices require Windows")
}

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

package log_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/dromanov/apitrace/core/assert"
	"github.com/dromanov/apitrace/core/log"
)

// testHost records what a TestHandler reports to its test.
type testHost struct {
	fatal, errors, logs []string
}

func (h *testHost) Fatal(args ...interface{}) { h.fatal = append(h.fatal, fmt.Sprint(args...)) }
func (h *testHost) Error(args ...interface{}) { h.errors = append(h.errors, fmt.Sprint(args...)) }
func (h *testHost) Log(args ...interface{})   { h.logs = append(h.logs, fmt.Sprint(args...)) }

func TestTestHandlerSeverities(t *testing.T) {
	ctx := assert.To(t)
	host := &testHost{}
	lctx := log.PutHandler(context.Background(), log.TestHandler(host, log.Raw))
	log.I(lctx, "extracted %d", 2)
	log.W(lctx, "skipped")
	log.E(lctx, "failed")
	log.F(lctx, false, "stopped")
	ctx.For("logs").ThatSlice(host.logs).Equals([]string{"extracted 2", "skipped"})
	ctx.For("errors").ThatSlice(host.errors).Equals([]string{"failed"})
	ctx.For("fatal").ThatSlice(host.fatal).Equals([]string{"stopped"})
}

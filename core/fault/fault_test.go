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

package fault_test

import (
	"fmt"
	"testing"

	"github.com/dromanov/apitrace/core/assert"
	"github.com/dromanov/apitrace/core/fault"
	"github.com/pkg/errors"
)

const (
	errorMessage = "Some message"
	anError      = fault.Const(errorMessage)
	anotherError = fault.Const("another")
)

func TestConst(t *testing.T) {
	assert.To(t).For("message").ThatString(anError.Error()).Equals(errorMessage)
	wrapped := errors.Wrap(anError, "while staging")
	assert.To(t).For("wrapped").ThatError(wrapped).HasCause(anError)
}

func TestList(t *testing.T) {
	ctx := assert.To(t)
	list := fault.List{}
	ctx.For("empty first").ThatError(list.First()).Succeeded()
	ctx.For("empty err").ThatError(list.Err()).Succeeded()
	list.Collect(nil)
	ctx.For("nil ignored").ThatSlice(list).IsEmpty()
	list.Collect(anError)
	list.Collect(fmt.Errorf("formatted %d", 2))
	list.Collect(anotherError)
	ctx.For("length").ThatSlice(list).IsLength(3)
	ctx.For("first").ThatError(list.First()).Equals(anError)
	ctx.For("joined").ThatError(list.Err()).HasMessage("Some message\nformatted 2\nanother")
}

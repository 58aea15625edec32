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
	"testing"

	"github.com/dromanov/apitrace/core/assert"
	"github.com/dromanov/apitrace/core/log"
)

func TestStyles(t *testing.T) {
	for _, test := range testMessages {
		for _, s := range []struct {
			style    log.Style
			expected string
		}{
			{log.Raw, test.raw},
			{log.Brief, test.brief},
			{log.Normal, test.normal},
			{log.Detailed, test.detailed},
		} {
			w, buf := log.Buffer()
			test.send(s.style.Handler(w))
			assert.To(t).
				For("%s(%s)", s.style.Name, test.msg).
				ThatString(buf.String()).Equals(s.expected)
		}
	}
}

func TestStyleByName(t *testing.T) {
	s, err := log.StyleByName("brief")
	assert.To(t).For("brief").ThatError(err).Succeeded()
	assert.To(t).For("brief").ThatString(s.Name).Equals("brief")
	_, err = log.StyleByName("fancy")
	assert.To(t).For("fancy").ThatError(err).Failed()
}

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

package assert

import "github.com/pkg/errors"

// OnError is the result of calling ThatError on an Assertion.
type OnError struct {
	*Assertion
	err error
}

// ThatError returns an OnError for error assertions.
func (a *Assertion) ThatError(err error) OnError {
	return OnError{Assertion: a, err: err}
}

// Succeeded asserts that the error is nil.
func (o OnError) Succeeded() bool {
	return o.Compare(o.err, "", "success").Test(o.err == nil)
}

// Failed asserts that the error is not nil.
func (o OnError) Failed() bool {
	return o.Compare(o.err, "", "failure").Test(o.err != nil)
}

// Equals asserts that the error is == to expect.
func (o OnError) Equals(expect error) bool {
	return o.Compare(o.err, "==", expect).Test(o.err == expect)
}

// HasMessage asserts that the error is not nil and its message is expect.
func (o OnError) HasMessage(expect string) bool {
	msg := ""
	if o.err != nil {
		msg = o.err.Error()
	}
	return o.Compare(msg, "has message", expect).Test(o.err != nil && msg == expect)
}

// HasCause asserts that the root cause of the error, as returned by
// errors.Cause, is expect.
func (o OnError) HasCause(expect error) bool {
	cause := errors.Cause(o.err)
	return o.Add("Cause", cause).Compare(o.err, "caused by", expect).Test(cause == expect)
}

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

// Package fault holds the error primitives shared by the rest of the module.
package fault

import "strings"

// Const is the type for constant error values.
// Sentinel errors declared as a Const can be compared with == and survive
// being wrapped, as github.com/pkg/errors.Cause returns them unchanged.
type Const string

// Error implements error for Const returning the string value of the const.
func (e Const) Error() string { return string(e) }

// List collects errors in the order they were reported.
type List []error

// Collect adds err to the list. A nil err is ignored.
func (l *List) Collect(err error) {
	if err != nil {
		*l = append(*l, err)
	}
}

// First returns the first error collected, or nil if the list is empty.
func (l List) First() error {
	if len(l) == 0 {
		return nil
	}
	return l[0]
}

// Error joins the messages of all the collected errors.
func (l List) Error() string {
	msgs := make([]string, len(l))
	for i, err := range l {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

// Err returns the list as an error, or nil if nothing was collected.
func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

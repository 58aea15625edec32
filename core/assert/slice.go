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

import (
	"fmt"
	"reflect"
)

// OnSlice is the result of calling ThatSlice on an Assertion.
type OnSlice struct {
	*Assertion
	slice reflect.Value
}

// ThatSlice returns an OnSlice for assertions on slices and arrays.
func (a *Assertion) ThatSlice(slice interface{}) OnSlice {
	return OnSlice{Assertion: a, slice: reflect.ValueOf(slice)}
}

// IsEmpty asserts that the slice has no elements.
func (o OnSlice) IsEmpty() bool {
	return o.Compare(o.slice.Len(), "length ==", 0).Test(o.slice.Len() == 0)
}

// IsNotEmpty asserts that the slice has at least one element.
func (o OnSlice) IsNotEmpty() bool {
	return o.Compare(o.slice.Len(), "length >", 0).Test(o.slice.Len() > 0)
}

// IsLength asserts that the slice has length elements.
func (o OnSlice) IsLength(length int) bool {
	return o.Compare(o.slice.Len(), "length ==", length).Test(o.slice.Len() == length)
}

// Equals asserts that the slice has the same elements as expected, comparing
// each pair with reflect.DeepEqual. Differing elements are listed.
func (o OnSlice) Equals(expected interface{}) bool {
	es := reflect.ValueOf(expected)
	glen, elen := o.slice.Len(), es.Len()
	equal := glen == elen
	for i := 0; i < glen || i < elen; i++ {
		switch {
		case i >= glen:
			o.Add(fmt.Sprintf("-%d", i), es.Index(i).Interface())
		case i >= elen:
			o.Add(fmt.Sprintf("+%d", i), o.slice.Index(i).Interface())
		default:
			g, e := o.slice.Index(i).Interface(), es.Index(i).Interface()
			if !reflect.DeepEqual(g, e) {
				o.Compare(g, fmt.Sprintf("[%d] ==", i), e)
				equal = false
			}
		}
	}
	return o.Test(equal)
}

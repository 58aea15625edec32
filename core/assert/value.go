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
	"reflect"
	"strings"
)

// OnValue is the result of calling That on an Assertion.
type OnValue struct {
	*Assertion
	value interface{}
}

// That returns an OnValue for comparing arbitrary values.
func (a *Assertion) That(value interface{}) OnValue {
	return OnValue{Assertion: a, value: value}
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Ptr, reflect.Interface, reflect.Slice:
		return v.IsNil()
	}
	return false
}

// IsNil asserts that the value is nil or a nil reference.
func (o OnValue) IsNil() bool {
	return o.Compare(o.value, "==", "nil").Test(isNil(o.value))
}

// IsNotNil asserts that the value is not nil.
func (o OnValue) IsNotNil() bool {
	return o.Compare(o.value, "!=", "nil").Test(!isNil(o.value))
}

// Equals asserts that the value is == to expect.
func (o OnValue) Equals(expect interface{}) bool {
	return o.Compare(o.value, "==", expect).Test(o.value == expect)
}

// NotEquals asserts that the value is != to test.
func (o OnValue) NotEquals(test interface{}) bool {
	return o.Compare(o.value, "!=", test).Test(o.value != test)
}

// DeepEquals asserts that the value is equal to expect using reflect.DeepEqual.
func (o OnValue) DeepEquals(expect interface{}) bool {
	return o.Compare(o.value, "deep ==", expect).Test(reflect.DeepEqual(o.value, expect))
}

// DeepNotEquals asserts that the value differs from test using reflect.DeepEqual.
func (o OnValue) DeepNotEquals(test interface{}) bool {
	return o.Compare(o.value, "deep !=", test).Test(!reflect.DeepEqual(o.value, test))
}

// OnBoolean is the result of calling ThatBoolean on an Assertion.
type OnBoolean struct {
	*Assertion
	value bool
}

// ThatBoolean returns an OnBoolean for boolean assertions.
func (a *Assertion) ThatBoolean(value bool) OnBoolean {
	return OnBoolean{Assertion: a, value: value}
}

// Equals asserts that the value is expect.
func (o OnBoolean) Equals(expect bool) bool {
	return o.Compare(o.value, "==", expect).Test(o.value == expect)
}

// IsTrue asserts that the value is true.
func (o OnBoolean) IsTrue() bool { return o.Equals(true) }

// IsFalse asserts that the value is false.
func (o OnBoolean) IsFalse() bool { return o.Equals(false) }

// OnInteger is the result of calling ThatInteger on an Assertion.
type OnInteger struct {
	*Assertion
	value int
}

// ThatInteger returns an OnInteger for integer comparisons.
func (a *Assertion) ThatInteger(value int) OnInteger {
	return OnInteger{Assertion: a, value: value}
}

// Equals asserts that the value is == to expect.
func (o OnInteger) Equals(expect int) bool {
	return o.Compare(o.value, "==", expect).Test(o.value == expect)
}

// IsAtLeast asserts that the value is >= min.
func (o OnInteger) IsAtLeast(min int) bool {
	return o.Compare(o.value, ">=", min).Test(o.value >= min)
}

// IsAtMost asserts that the value is <= max.
func (o OnInteger) IsAtMost(max int) bool {
	return o.Compare(o.value, "<=", max).Test(o.value <= max)
}

// OnFloat is the result of calling ThatFloat on an Assertion.
type OnFloat struct {
	*Assertion
	value float64
}

// ThatFloat returns an OnFloat for floating point comparisons.
func (a *Assertion) ThatFloat(value float64) OnFloat {
	return OnFloat{Assertion: a, value: value}
}

// Equals asserts that the value is within tolerance of v.
func (o OnFloat) Equals(v, tolerance float64) bool {
	min, max := v-tolerance, v+tolerance
	return o.Compare(o.value, "in", min, max).Test(o.value >= min && o.value <= max)
}

// OnString is the result of calling ThatString on an Assertion.
type OnString struct {
	*Assertion
	value string
}

// ThatString returns an OnString for string comparisons.
func (a *Assertion) ThatString(value string) OnString {
	return OnString{Assertion: a, value: value}
}

// Equals asserts that the string is expect.
func (o OnString) Equals(expect string) bool {
	return o.Compare(o.value, "==", expect).Test(o.value == expect)
}

// Contains asserts that the string contains substr.
func (o OnString) Contains(substr string) bool {
	return o.Compare(o.value, "contains", substr).Test(strings.Contains(o.value, substr))
}

// HasPrefix asserts that the string starts with prefix.
func (o OnString) HasPrefix(prefix string) bool {
	return o.Compare(o.value, "starts with", prefix).Test(strings.HasPrefix(o.value, prefix))
}

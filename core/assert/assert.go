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

// Package assert is a fluent assertion library for tests.
//
// An assertion starts from To(t).For("description") and ends with a test
// method on the typed wrapper returned by one of the That methods:
//
//	assert.To(t).For("width").That(desc.Width).Equals(uint32(4))
//
// Failed assertions are reported as an aligned Got/Expect table through the
// Output they were constructed with.
package assert

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"unicode"

	"github.com/dromanov/apitrace/core/log"
)

// Output matches the logging methods of the test host types.
type Output interface {
	Fatal(...interface{})
	Error(...interface{})
	Log(...interface{})
}

// Manager builds assertions that report to a single Output.
type Manager struct {
	out Output
}

// To returns a Manager for t, which may be a testing.T, a context.Context (in
// which case failures are logged) or nil (failures are printed to stdout).
func To(t interface{}) Manager {
	switch t := t.(type) {
	case nil:
		return Manager{stdOutput{}}
	case context.Context:
		return Manager{ctxOutput{t}}
	case Output:
		return Manager{t}
	default:
		panic(fmt.Errorf("Unsupported assertion target type %T", t))
	}
}

// For is shorthand for To(t).For(msg, args...).
func For(t interface{}, msg string, args ...interface{}) *Assertion {
	return To(t).For(msg, args...)
}

// For starts a new assertion with the printf-style description.
func (m Manager) For(msg string, args ...interface{}) *Assertion {
	a := &Assertion{to: m.out, out: &bytes.Buffer{}, level: Error}
	fmt.Fprintf(a.out, msg, args...)
	a.newline()
	return a
}

type level int

const (
	// Log is the informational level.
	Log = level(iota)
	// Error is used for failures that do not stop the test.
	Error
	// Fatal is used for failures that stop the running test immediately.
	Fatal
)

func (l level) String() string {
	switch l {
	case Log:
		return "Info"
	case Error:
		return "Error"
	case Fatal:
		return "Critical"
	default:
		return "Unknown"
	}
}

// Assertion accumulates the text of a single assertion.
type Assertion struct {
	level level
	out   *bytes.Buffer
	to    Output
}

// Critical makes a failure of this assertion fatal.
func (a *Assertion) Critical() *Assertion {
	a.level = Fatal
	return a
}

// Log commits the assertion text plus args at informational level.
func (a *Assertion) Log(args ...interface{}) { a.commitAt(Log, args) }

// Error commits the assertion text plus args as a failure.
func (a *Assertion) Error(args ...interface{}) { a.commitAt(Error, args) }

// Fatal commits the assertion text plus args as a fatal failure.
func (a *Assertion) Fatal(args ...interface{}) { a.commitAt(Fatal, args) }

func (a *Assertion) commitAt(l level, args []interface{}) {
	fmt.Fprint(a.out, args...)
	a.level = l
	a.commit()
}

func (a *Assertion) newline() { a.out.WriteString("\n    ") }

func (a *Assertion) pretty(value interface{}) {
	switch value := value.(type) {
	case error:
		fmt.Fprintf(a.out, "`%v`", value)
	case string:
		fmt.Fprintf(a.out, "`%s`", value)
	default:
		fmt.Fprint(a.out, value)
	}
}

func (a *Assertion) row(key, op string, values ...interface{}) *Assertion {
	a.out.WriteString(key)
	a.out.WriteString("\t")
	a.out.WriteString(op)
	a.out.WriteString("\t")
	for i, v := range values {
		if i != 0 {
			a.out.WriteString("\t")
		}
		a.pretty(v)
	}
	a.newline()
	return a
}

// Compare adds the Got and Expect rows for a comparison using op.
func (a *Assertion) Compare(value interface{}, op string, expect ...interface{}) *Assertion {
	return a.row("Got", "", value).row("Expect", op, expect...)
}

// Add adds a named row of values.
func (a *Assertion) Add(key string, values ...interface{}) *Assertion {
	return a.row(key, "", values...)
}

// Test commits the assertion as a failure if condition is false.
func (a *Assertion) Test(condition bool) bool {
	if !condition {
		if a.level < Error {
			a.level = Error
		}
		a.commit()
	}
	return condition
}

func (a *Assertion) commit() {
	buf := &bytes.Buffer{}
	tabs := tabwriter.NewWriter(buf, 1, 4, 1, ' ', tabwriter.StripEscape)
	tabs.Write(a.out.Bytes())
	tabs.Flush()
	message := a.level.String() + ":" + strings.TrimRightFunc(buf.String(), unicode.IsSpace)
	switch a.level {
	case Error:
		a.to.Error(message)
	case Fatal:
		a.to.Fatal(message)
	default:
		a.to.Log(message)
	}
}

type ctxOutput struct{ ctx context.Context }

func (o ctxOutput) Fatal(args ...interface{}) { log.F(o.ctx, true, "%v", fmt.Sprint(args...)) }
func (o ctxOutput) Error(args ...interface{}) { log.E(o.ctx, "%v", fmt.Sprint(args...)) }
func (o ctxOutput) Log(args ...interface{})   { log.I(o.ctx, "%v", fmt.Sprint(args...)) }

type stdOutput struct{}

func (stdOutput) Fatal(args ...interface{}) {
	fmt.Fprintln(os.Stdout, args...)
	panic("Fatal error without test context")
}
func (stdOutput) Error(args ...interface{}) { fmt.Fprintln(os.Stdout, args...) }
func (stdOutput) Log(args ...interface{})   { fmt.Fprintln(os.Stdout, args...) }

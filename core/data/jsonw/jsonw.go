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

// Package jsonw implements a streaming JSON writer for state dumps.
//
// Objects, arrays and members are opened and closed explicitly so that large
// dumps are written as they are produced. Write errors are sticky: after the
// first failure all writes are dropped and Err returns the failure.
package jsonw

import (
	"bufio"
	"encoding/base64"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/dromanov/apitrace/core/fault"
	"github.com/dromanov/apitrace/core/image"
)

// ErrUnbalanced is returned by Close when objects, arrays or members are
// still open.
const ErrUnbalanced = fault.Const("Unbalanced JSON nesting")

type scope struct {
	array bool
	count int
}

// Writer writes a single JSON document.
type Writer struct {
	out    *bufio.Writer
	indent string
	scopes []scope
	member bool
	err    error
}

// New returns a Writer writing to w. Nested values are placed on their own
// lines and indented with indent. An empty indent writes compact JSON.
func New(w io.Writer, indent string) *Writer {
	return &Writer{out: bufio.NewWriter(w), indent: indent}
}

func (w *Writer) write(s string) {
	if w.err == nil {
		_, w.err = w.out.WriteString(s)
	}
}

func (w *Writer) newline() {
	if w.indent == "" {
		return
	}
	w.write("\n")
	w.write(strings.Repeat(w.indent, len(w.scopes)))
}

func (w *Writer) top() *scope {
	if len(w.scopes) == 0 {
		return nil
	}
	return &w.scopes[len(w.scopes)-1]
}

// beginValue emits the separator required before a value.
func (w *Writer) beginValue() {
	if w.member {
		w.member = false
		return
	}
	if s := w.top(); s != nil && s.array {
		if s.count > 0 {
			w.write(",")
		}
		s.count++
		w.newline()
	}
}

// BeginObject starts a JSON object.
func (w *Writer) BeginObject() {
	w.beginValue()
	w.write("{")
	w.scopes = append(w.scopes, scope{})
}

// EndObject ends the innermost JSON object.
func (w *Writer) EndObject() { w.end("}") }

// BeginArray starts a JSON array.
func (w *Writer) BeginArray() {
	w.beginValue()
	w.write("[")
	w.scopes = append(w.scopes, scope{array: true})
}

// EndArray ends the innermost JSON array.
func (w *Writer) EndArray() { w.end("]") }

func (w *Writer) end(close string) {
	s := w.top()
	if s == nil {
		w.fail()
		return
	}
	count := s.count
	w.scopes = w.scopes[:len(w.scopes)-1]
	if count > 0 {
		w.newline()
	}
	w.write(close)
}

// BeginMember starts a member of the innermost object. It must be followed by
// exactly one value.
func (w *Writer) BeginMember(name string) {
	s := w.top()
	if s == nil || s.array || w.member {
		w.fail()
		return
	}
	if s.count > 0 {
		w.write(",")
	}
	s.count++
	w.newline()
	w.writeString(name)
	if w.indent == "" {
		w.write(":")
	} else {
		w.write(": ")
	}
	w.member = true
}

// EndMember ends the current member.
func (w *Writer) EndMember() {
	if w.member {
		// The member was never given a value.
		w.fail()
	}
}

func (w *Writer) fail() {
	if w.err == nil {
		w.err = ErrUnbalanced
	}
}

func (w *Writer) writeString(s string) {
	b, err := json.Marshal(s)
	if err != nil {
		w.err = err
		return
	}
	w.write(string(b))
}

// WriteString writes a string value.
func (w *Writer) WriteString(s string) {
	w.beginValue()
	w.writeString(s)
}

// WriteInt writes an integer value.
func (w *Writer) WriteInt(v int64) {
	w.beginValue()
	w.write(strconv.FormatInt(v, 10))
}

// WriteUint writes an unsigned integer value.
func (w *Writer) WriteUint(v uint64) {
	w.beginValue()
	w.write(strconv.FormatUint(v, 10))
}

// WriteBool writes a boolean value.
func (w *Writer) WriteBool(v bool) {
	w.beginValue()
	w.write(strconv.FormatBool(v))
}

// WriteNull writes a null value.
func (w *Writer) WriteNull() {
	w.beginValue()
	w.write("null")
}

// Image member names.
const (
	ClassMember  = "__class__"
	WidthMember  = "__width__"
	HeightMember = "__height__"
	DepthMember  = "__depth__"
	FormatMember = "__format__"
	DataMember   = "__data__"
	ImageClass   = "image"
)

// WriteImage writes img as an image object holding the PNG encoded pixels.
// format is recorded as the image's format label.
// An image that cannot be encoded is written as null.
func (w *Writer) WriteImage(img *image.Image, format string) {
	data, err := img.PNG()
	if err != nil {
		w.WriteNull()
		return
	}
	w.BeginObject()
	w.Member(ClassMember, func() { w.WriteString(ImageClass) })
	w.Member(WidthMember, func() { w.WriteUint(uint64(img.Width)) })
	w.Member(HeightMember, func() { w.WriteUint(uint64(img.Height)) })
	w.Member(DepthMember, func() { w.WriteInt(1) })
	w.Member(FormatMember, func() { w.WriteString(format) })
	w.Member(DataMember, func() { w.WriteString(base64.StdEncoding.EncodeToString(data)) })
	w.EndObject()
}

// Member writes a complete member whose value is written by value.
func (w *Writer) Member(name string, value func()) {
	w.BeginMember(name)
	value()
	w.EndMember()
}

// Err returns the first error encountered while writing.
func (w *Writer) Err() error { return w.err }

// Close flushes the document to the underlying writer. It fails if any
// object, array or member is still open.
func (w *Writer) Close() error {
	if len(w.scopes) > 0 || w.member {
		w.fail()
	}
	if w.indent != "" {
		w.write("\n")
	}
	if w.err != nil {
		return w.err
	}
	return w.out.Flush()
}

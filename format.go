// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"
)

// builderPool provides reusable [strings.Builder] instances for the
// line-oriented sinks.
var builderPool = sync.Pool{
	New: func() any {
		return &strings.Builder{}
	},
}

// appendValue formats a property value into the builder.
//
// fmt.Sprint is used as a catch-all for types without specialized formatting.
func appendValue(b *strings.Builder, v any) {
	switch v := v.(type) {
	case string:
		b.WriteString(v)
	case int:
		b.WriteString(strconv.Itoa(v))
	case int64:
		b.WriteString(strconv.FormatInt(v, 10))
	case bool:
		b.WriteString(strconv.FormatBool(v))
	case time.Duration:
		b.WriteString(v.String())
	case time.Time:
		b.WriteString(v.Format(time.RFC3339))
	case float64:
		b.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	case float32:
		b.WriteString(strconv.FormatFloat(float64(v), 'f', -1, 32))
	case int8:
		b.WriteString(strconv.FormatInt(int64(v), 10))
	case int16:
		b.WriteString(strconv.FormatInt(int64(v), 10))
	case int32:
		b.WriteString(strconv.FormatInt(int64(v), 10))
	case uint:
		b.WriteString(strconv.FormatUint(uint64(v), 10))
	case uint8:
		b.WriteString(strconv.FormatUint(uint64(v), 10))
	case uint16:
		b.WriteString(strconv.FormatUint(uint64(v), 10))
	case uint32:
		b.WriteString(strconv.FormatUint(uint64(v), 10))
	case uint64:
		b.WriteString(strconv.FormatUint(v, 10))
	case error:
		b.WriteString(v.Error())
	case fmt.Stringer:
		b.WriteString(v.String())
	case nil:
		b.WriteString("<nil>")
	default:
		// Only use fmt.Sprint as last resort
		b.WriteString(fmt.Sprint(v))
	}
}

// formatValue returns appendValue's output as a string.
func formatValue(v any) string {
	b := builderPool.Get().(*strings.Builder)
	b.Reset()
	defer builderPool.Put(b)
	appendValue(b, v)
	return b.String()
}

// jsonRecord is the wire shape shared by JSONSink and FileSink. Properties
// are destructured into a JSON object; ordering is not preserved in JSON.
type jsonRecord struct {
	Time       time.Time      `json:"time"`
	Level      Level          `json:"level"`
	Component  string         `json:"component,omitempty"`
	Message    string         `json:"msg"`
	Template   string         `json:"template,omitempty"`
	Properties map[string]any `json:"properties,omitempty"`
	Scope      map[string]any `json:"scope,omitempty"`
}

// encodeJSONRecord renders a record as one newline-terminated JSON object.
// The raw template is included only when it differs from the rendered
// message, i.e. when it actually contained placeholders.
func encodeJSONRecord(rec Record) ([]byte, error) {
	msg := rec.Message()
	tmpl := rec.Template
	if tmpl == msg {
		tmpl = ""
	}
	return json.Marshal(jsonRecord{
		Time:       rec.Time,
		Level:      rec.Level,
		Component:  rec.Component,
		Message:    msg,
		Template:   tmpl,
		Properties: rec.Properties.ToMap(),
		Scope:      rec.ScopeProperties.ToMap(),
	})
}

// JSONSink writes one JSON object per record, one record per line.
// This is the recommended destination for production log aggregation.
//
// Thread-safe: writes are serialized so concurrent records never interleave.
type JSONSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewJSONSink creates a JSON line sink writing to w.
func NewJSONSink(w io.Writer) *JSONSink {
	return &JSONSink{w: w}
}

// Write implements [Sink].
func (s *JSONSink) Write(rec Record) error {
	data, err := encodeJSONRecord(rec)
	if err != nil {
		return err
	}
	data = append(data, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = s.w.Write(data)
	return err
}

// TextSink writes one key=value line per record.
//
// Thread-safe: writes are serialized so concurrent records never interleave.
type TextSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewTextSink creates a key=value line sink writing to w.
func NewTextSink(w io.Writer) *TextSink {
	return &TextSink{w: w}
}

// Write implements [Sink]. Scope properties are prefixed with "scope." to
// keep them distinguishable from call-site properties.
func (s *TextSink) Write(rec Record) error {
	b := builderPool.Get().(*strings.Builder)
	b.Reset()
	defer builderPool.Put(b)

	b.WriteString("time=")
	b.WriteString(rec.Time.Format(time.RFC3339Nano))
	b.WriteString(" level=")
	b.WriteString(rec.Level.String())
	if rec.Component != "" {
		b.WriteString(" component=")
		b.WriteString(rec.Component)
	}
	b.WriteString(" msg=")
	b.WriteString(strconv.Quote(rec.Message()))
	for _, prop := range rec.Properties {
		b.WriteString(" ")
		b.WriteString(prop.Key)
		b.WriteString("=")
		appendValue(b, prop.Value)
	}
	for _, prop := range rec.ScopeProperties {
		b.WriteString(" scope.")
		b.WriteString(prop.Key)
		b.WriteString("=")
		appendValue(b, prop.Value)
	}
	b.WriteString("\n")

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := io.WriteString(s.w, b.String())
	return err
}

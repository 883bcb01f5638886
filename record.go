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
	"fmt"
	"strings"
	"time"
)

// missingValue is paired with a dangling key when a call site passes an odd
// number of key/value arguments.
const missingValue = "(MISSING)"

// Property is a single named value attached to a record.
type Property struct {
	Key   string
	Value any
}

// Properties is an ordered list of properties. Keys are unique within a
// list; setting an existing key replaces its value in place, preserving the
// original position.
type Properties []Property

// Get returns the value for key and whether it is present.
func (p Properties) Get(key string) (any, bool) {
	for i := range p {
		if p[i].Key == key {
			return p[i].Value, true
		}
	}
	return nil, false
}

// ToMap returns the properties as a plain map. Order is lost; intended for
// sinks that destructure into formats without ordering (JSON objects).
func (p Properties) ToMap() map[string]any {
	if len(p) == 0 {
		return nil
	}
	m := make(map[string]any, len(p))
	for i := range p {
		m[p[i].Key] = p[i].Value
	}
	return m
}

// set replaces the value for key if present, otherwise appends.
// The receiver must be owned by the caller: set mutates in place.
func (p Properties) set(key string, value any) Properties {
	for i := range p {
		if p[i].Key == key {
			p[i].Value = value
			return p
		}
	}
	return append(p, Property{Key: key, Value: value})
}

// clone returns an independent copy of p.
func (p Properties) clone() Properties {
	if len(p) == 0 {
		return nil
	}
	out := make(Properties, len(p))
	copy(out, p)
	return out
}

// with returns a copy of p extended with alternating key/value args.
// Later keys override earlier ones without changing their position.
func (p Properties) with(args ...any) Properties {
	more := propertiesFromArgs(args)
	if len(p) == 0 {
		return more
	}
	out := make(Properties, len(p), len(p)+len(more))
	copy(out, p)
	for i := range more {
		out = out.set(more[i].Key, more[i].Value)
	}
	return out
}

// propertiesFromArgs converts alternating key/value arguments into an
// ordered property list. A [Property] value may be passed directly in place
// of a pair. Non-string keys are stringified; a dangling key is paired with
// the missingValue marker rather than panicking — logging must never crash
// the caller.
func propertiesFromArgs(args []any) Properties {
	if len(args) == 0 {
		return nil
	}
	out := make(Properties, 0, (len(args)+1)/2)
	for i := 0; i < len(args); {
		if prop, ok := args[i].(Property); ok {
			out = out.set(prop.Key, prop.Value)
			i++
			continue
		}
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprint(args[i])
		}
		if i+1 >= len(args) {
			out = out.set(key, missingValue)
			break
		}
		out = out.set(key, args[i+1])
		i += 2
	}
	return out
}

// Record is the structured event delivered to sinks.
//
// A record is immutable once constructed: the facade never modifies it
// after dispatch begins, enrichment produces extended copies via
// [Record.WithProperty], and sinks must treat the property slices as
// read-only views.
type Record struct {
	// Time is when the record was emitted.
	Time time.Time

	// Level is the severity of the record.
	Level Level

	// Component identifies the logger that emitted the record.
	Component string

	// Template is the message template with {name} placeholders.
	Template string

	// Properties are the call-site properties, in call order.
	// Placeholders in Template resolve against these.
	Properties Properties

	// ScopeProperties are merged in from the scopes open at emission time,
	// in root-to-innermost application order, innermost-wins.
	ScopeProperties Properties
}

// WithProperty returns a copy of the record with the property set.
// Intended for enrichers; the original record is left untouched.
func (r Record) WithProperty(key string, value any) Record {
	r.Properties = r.Properties.clone().set(key, value)
	return r
}

// Message renders the template against the record's properties.
// A {name} placeholder with no matching property renders as the literal
// token, which is not an error.
func (r Record) Message() string {
	tmpl := r.Template
	if !strings.Contains(tmpl, "{") {
		return tmpl
	}

	var b strings.Builder
	b.Grow(len(tmpl) + 16)
	for {
		open := strings.IndexByte(tmpl, '{')
		if open < 0 {
			b.WriteString(tmpl)
			break
		}
		b.WriteString(tmpl[:open])
		tmpl = tmpl[open:]

		closing := strings.IndexByte(tmpl, '}')
		if closing < 0 {
			b.WriteString(tmpl)
			break
		}

		name := tmpl[1:closing]
		if value, ok := r.Properties.Get(name); ok && placeholderName(name) {
			appendValue(&b, value)
		} else {
			b.WriteString(tmpl[:closing+1])
		}
		tmpl = tmpl[closing+1:]
	}
	return b.String()
}

// placeholderName reports whether s is a well-formed placeholder name:
// non-empty letters, digits or underscores.
func placeholderName(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_':
		default:
			return false
		}
	}
	return true
}

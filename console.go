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
	"io"
	"strings"
	"sync"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorGray   = "\033[37m"
	colorWhite  = "\033[97m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

// ConsoleSink writes human-readable colored output.
//
// Design rationale:
//   - Designed for human readability during development
//   - ANSI colors help distinguish levels at a glance
//   - Compact format reduces visual clutter vs JSON
//   - Not recommended for production log aggregation (use [JSONSink])
//
// Thread-safe: writes are serialized so concurrent records never interleave.
type ConsoleSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsoleSink creates a console sink writing to w.
func NewConsoleSink(w io.Writer) *ConsoleSink {
	return &ConsoleSink{w: w}
}

// Write implements [Sink].
func (s *ConsoleSink) Write(rec Record) error {
	b := builderPool.Get().(*strings.Builder)
	b.Reset()
	defer builderPool.Put(b)

	// Timestamp
	b.WriteString(colorDim)
	b.WriteString(rec.Time.Format("15:04:05.000"))
	b.WriteString(colorReset)
	b.WriteString(" ")

	// Level with color
	b.WriteString(levelColor(rec.Level))
	b.WriteString(colorBold)
	fmt.Fprintf(b, "%-5s", rec.Level.String())
	b.WriteString(colorReset)
	b.WriteString(" ")

	// Component
	if rec.Component != "" {
		b.WriteString(colorGray)
		b.WriteString("[" + rec.Component + "]")
		b.WriteString(colorReset)
		b.WriteString(" ")
	}

	// Rendered message
	b.WriteString(colorWhite)
	b.WriteString(rec.Message())
	b.WriteString(colorReset)

	// Properties, then scope properties dimmed
	for _, prop := range rec.Properties {
		b.WriteString(" ")
		b.WriteString(prop.Key)
		b.WriteString("=")
		appendValue(b, prop.Value)
	}
	if len(rec.ScopeProperties) > 0 {
		b.WriteString(" ")
		b.WriteString(colorDim)
		for i, prop := range rec.ScopeProperties {
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteString(prop.Key)
			b.WriteString("=")
			appendValue(b, prop.Value)
		}
		b.WriteString(colorReset)
	}

	b.WriteString("\n")

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := io.WriteString(s.w, b.String())
	return err
}

// levelColor returns the ANSI color code for a log level.
func levelColor(level Level) string {
	switch {
	case level >= LevelError:
		return colorRed
	case level >= LevelWarn:
		return colorYellow
	case level >= LevelInfo:
		return colorGreen
	default:
		return colorBlue
	}
}

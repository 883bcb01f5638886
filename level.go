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
)

// Level represents the severity of a log record.
//
// Levels are totally ordered: LevelTrace < LevelDebug < LevelInfo <
// LevelWarn < LevelError < LevelCritical. A sink registered with a minimum
// level receives only records at or above that level.
type Level int

const (
	// LevelTrace is the most verbose level, for fine-grained diagnostics.
	LevelTrace Level = iota
	// LevelDebug is for information useful while debugging.
	LevelDebug
	// LevelInfo is for routine operational messages (default minimum).
	LevelInfo
	// LevelWarn is for conditions that deserve attention but are handled.
	LevelWarn
	// LevelError is for failures of an operation.
	LevelError
	// LevelCritical is for failures that threaten the whole process.
	LevelCritical
)

// String returns the upper-case name of the level.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelCritical:
		return "CRITICAL"
	default:
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
}

// valid reports whether l is one of the defined levels.
func (l Level) valid() bool {
	return l >= LevelTrace && l <= LevelCritical
}

// MarshalText implements [encoding.TextMarshaler].
// Levels marshal as their lower-case name ("info", "critical").
func (l Level) MarshalText() ([]byte, error) {
	if !l.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevel, int(l))
	}
	return []byte(strings.ToLower(l.String())), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLevel parses a level name, case-insensitively.
// The aliases "warning", "information" and "fatal" are accepted for
// compatibility with configuration written against other logging stacks.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info", "information":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "critical", "fatal":
		return LevelCritical, nil
	default:
		return LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
}

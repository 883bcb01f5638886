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

import "context"

// Logger is the per-component handle call sites log through. It carries a
// component name and optional bound properties, and shares its registry's
// dispatcher with every other handle — no logger owns the dispatcher.
//
// Logging is fire-and-forget: no method returns an error, sink failures
// are isolated inside the dispatcher, and a logger whose registry is not
// running drops records silently. Handles are safe for concurrent use.
type Logger struct {
	registry  *Registry
	component string
	bound     Properties
}

// Component returns the component name the logger is bound to.
func (l *Logger) Component() string {
	return l.component
}

// With returns a logger that attaches the given properties to every
// record it emits. Call-site properties override bound ones on collision.
func (l *Logger) With(args ...any) *Logger {
	if len(args) == 0 {
		return l
	}
	return &Logger{
		registry:  l.registry,
		component: l.component,
		bound:     l.bound.with(args...),
	}
}

// named returns a logger whose component name is extended with a
// dot-separated suffix. Used by the logr bridge.
func (l *Logger) named(name string) *Logger {
	component := name
	if l.component != "" {
		component = l.component + "." + name
	}
	return &Logger{registry: l.registry, component: component, bound: l.bound}
}

// Enabled reports whether a record at the given level would currently be
// delivered to at least one sink. Use it to guard expensive argument
// construction:
//
//	if log.Enabled(logging.LevelTrace) {
//	    log.Trace(ctx, "state dump: {state}", "state", expensiveDump())
//	}
func (l *Logger) Enabled(level Level) bool {
	return l.registry.dispatcherFor(level) != nil
}

// Log emits a record at the given level. The template may reference
// properties by name with {name} placeholders; args are alternating
// key/value pairs, exactly as in log/slog.
//
// When level is below every registered sink's minimum, Log returns before
// constructing a record — the call costs two atomic loads and a compare.
// Scopes open on ctx are merged into the record's ScopeProperties.
func (l *Logger) Log(ctx context.Context, level Level, template string, args ...any) {
	d := l.registry.dispatcherFor(level)
	if d == nil {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}

	rec := Record{
		Time:            d.clock(),
		Level:           level,
		Component:       l.component,
		Template:        template,
		Properties:      l.bound.with(args...),
		ScopeProperties: CurrentScope(ctx),
	}
	d.dispatch(ctx, rec)
}

// Trace logs at LevelTrace.
func (l *Logger) Trace(ctx context.Context, template string, args ...any) {
	l.Log(ctx, LevelTrace, template, args...)
}

// Debug logs at LevelDebug.
func (l *Logger) Debug(ctx context.Context, template string, args ...any) {
	l.Log(ctx, LevelDebug, template, args...)
}

// Info logs at LevelInfo.
func (l *Logger) Info(ctx context.Context, template string, args ...any) {
	l.Log(ctx, LevelInfo, template, args...)
}

// Warn logs at LevelWarn.
func (l *Logger) Warn(ctx context.Context, template string, args ...any) {
	l.Log(ctx, LevelWarn, template, args...)
}

// Error logs at LevelError.
func (l *Logger) Error(ctx context.Context, template string, args ...any) {
	l.Log(ctx, LevelError, template, args...)
}

// Critical logs at LevelCritical.
func (l *Logger) Critical(ctx context.Context, template string, args ...any) {
	l.Log(ctx, LevelCritical, template, args...)
}

// LogError logs an error at LevelError with the error message attached as
// the "error" property, ahead of any extra properties.
func (l *Logger) LogError(ctx context.Context, err error, template string, args ...any) {
	if err == nil {
		l.Log(ctx, LevelError, template, args...)
		return
	}
	merged := make([]any, 0, len(args)+2)
	merged = append(merged, "error", err.Error())
	merged = append(merged, args...)
	l.Log(ctx, LevelError, template, merged...)
}

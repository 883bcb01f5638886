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
	"os"
	"time"
)

// Option is a functional option for [Registry.Initialize].
type Option func(*registryConfig)

// registryConfig collects everything Initialize needs before it builds the
// immutable dispatcher.
type registryConfig struct {
	sinks            []sinkRegistration
	enrichers        []Enricher
	minLevel         Level
	selfDiagnostics  io.Writer
	clock            func() time.Time
	defaultComponent string
}

func defaultRegistryConfig() *registryConfig {
	return &registryConfig{
		minLevel:        LevelTrace,
		selfDiagnostics: os.Stderr,
		clock:           time.Now,
	}
}

// validate checks the collected configuration. All violations are
// programmer errors surfaced synchronously from Initialize.
func (c *registryConfig) validate() error {
	for i, reg := range c.sinks {
		if reg.sink == nil {
			return fmt.Errorf("%w: sink %d is nil", ErrInvalidConfig, i)
		}
		if !reg.min.valid() {
			return fmt.Errorf("%w: sink %d minimum %d", ErrInvalidLevel, i, int(reg.min))
		}
	}
	for i, enrich := range c.enrichers {
		if enrich == nil {
			return fmt.Errorf("%w: enricher %d is nil", ErrInvalidConfig, i)
		}
	}
	if !c.minLevel.valid() {
		return fmt.Errorf("%w: global minimum %d", ErrInvalidLevel, int(c.minLevel))
	}
	if c.selfDiagnostics == nil {
		return fmt.Errorf("%w: self-diagnostics writer is nil", ErrInvalidConfig)
	}
	if c.clock == nil {
		return fmt.Errorf("%w: clock is nil", ErrInvalidConfig)
	}
	return nil
}

// WithSink registers a sink that receives every record (minimum
// LevelTrace, subject to the global floor).
func WithSink(s Sink) Option {
	return WithSinkAt(s, LevelTrace)
}

// WithSinkAt registers a sink with its own minimum level. Records below
// min never reach this sink.
func WithSinkAt(s Sink, min Level) Option {
	return func(c *registryConfig) {
		c.sinks = append(c.sinks, sinkRegistration{sink: s, min: min})
	}
}

// WithMinimumLevel sets the global minimum level. It is a floor applied on
// top of each sink's own minimum; a sink may be stricter but never looser.
func WithMinimumLevel(min Level) Option {
	return func(c *registryConfig) { c.minLevel = min }
}

// WithEnricher appends an enricher applied to every record, in
// registration order, before per-sink level filtering.
func WithEnricher(enrich Enricher) Option {
	return func(c *registryConfig) { c.enrichers = append(c.enrichers, enrich) }
}

// WithSelfDiagnostics redirects the last-resort diagnostic stream that
// receives sink failures and shutdown warnings. Defaults to stderr.
func WithSelfDiagnostics(w io.Writer) Option {
	return func(c *registryConfig) { c.selfDiagnostics = w }
}

// WithDefaultComponent sets the component name used by
// [Registry.GetLogger] when called with an empty name.
func WithDefaultComponent(name string) Option {
	return func(c *registryConfig) { c.defaultComponent = name }
}

// WithClock overrides the record timestamp source. Intended for tests that
// need deterministic timestamps.
func WithClock(clock func() time.Time) Option {
	return func(c *registryConfig) { c.clock = clock }
}

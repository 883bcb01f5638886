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
	"context"

	"go.opentelemetry.io/otel/trace"
)

// Semantic convention field names for trace correlation.
const (
	fieldTraceID = "trace_id"
	fieldSpanID  = "span_id"
)

// Enricher transforms a record before it is filtered and dispatched.
// Enrichers run in registration order on the caller's goroutine; each
// receives the emitting call's context, so context-derived data (trace
// spans, request metadata) can be attached without touching call sites.
//
// Enrichers must not mutate the record in place — use
// [Record.WithProperty], which returns an extended copy.
type Enricher func(ctx context.Context, rec Record) Record

// TraceEnricher attaches OpenTelemetry trace correlation to every record
// emitted under an active span: the trace_id and span_id properties.
//
// Why this exists:
//   - Distributed tracing requires trace/span IDs in logs to correlate requests
//   - Manually passing trace IDs to every log call is error-prone and verbose
//
// Records emitted without a valid span context pass through unchanged.
func TraceEnricher() Enricher {
	return func(ctx context.Context, rec Record) Record {
		span := trace.SpanFromContext(ctx)
		sc := span.SpanContext()
		if !sc.IsValid() {
			return rec
		}
		return rec.
			WithProperty(fieldTraceID, sc.TraceID().String()).
			WithProperty(fieldSpanID, sc.SpanID().String())
	}
}

// StaticEnricher attaches fixed properties to every record — typically
// service identity:
//
//	logging.WithEnricher(logging.StaticEnricher(
//	    "service", "checkout",
//	    "version", build.Version,
//	    "environment", "production",
//	))
//
// Record properties with the same key win over static ones.
func StaticEnricher(args ...any) Enricher {
	static := propertiesFromArgs(args)
	return func(_ context.Context, rec Record) Record {
		for _, prop := range static {
			if _, ok := rec.Properties.Get(prop.Key); ok {
				continue
			}
			rec = rec.WithProperty(prop.Key, prop.Value)
		}
		return rec
	}
}

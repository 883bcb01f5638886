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
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func TestEnrichers_RunInRegistrationOrder(t *testing.T) {
	t.Parallel()

	th := NewTestHelper(t,
		WithEnricher(func(_ context.Context, rec Record) Record {
			return rec.WithProperty("order", "first")
		}),
		WithEnricher(func(_ context.Context, rec Record) Record {
			return rec.WithProperty("order", "second")
		}),
	)

	th.Registry.GetLogger("svc").Info(context.Background(), "enriched")

	rec := th.LastRecord()
	require.NotNil(t, rec)
	order, ok := rec.Properties.Get("order")
	require.True(t, ok)
	assert.Equal(t, "second", order, "later enricher sees and overrides the earlier one")
}

func TestEnricher_PanicIsIsolated(t *testing.T) {
	t.Parallel()

	selflog := &bytes.Buffer{}
	sink := NewCaptureSink()

	reg := NewRegistry()
	require.NoError(t, reg.Initialize(
		WithSink(sink),
		WithSelfDiagnostics(selflog),
		WithEnricher(func(_ context.Context, rec Record) Record {
			return rec.WithProperty("kept", true)
		}),
		WithEnricher(func(context.Context, Record) Record {
			panic("enricher exploded")
		}),
	))
	t.Cleanup(func() { _ = reg.Shutdown(context.Background()) })

	require.NotPanics(t, func() {
		reg.GetLogger("svc").Info(context.Background(), "still delivered")
	})

	require.Equal(t, 1, sink.Len())
	_, ok := sink.Records()[0].Properties.Get("kept")
	assert.True(t, ok, "earlier enrichment survives a later enricher's panic")
	assert.Contains(t, selflog.String(), "enricher panicked")
}

func TestTraceEnricher(t *testing.T) {
	t.Parallel()

	th := NewTestHelper(t, WithEnricher(TraceEnricher()))
	log := th.Registry.GetLogger("svc")

	// Without a span: records pass through untouched.
	log.Info(context.Background(), "no span")
	rec := th.LastRecord()
	require.NotNil(t, rec)
	_, ok := rec.Properties.Get(fieldTraceID)
	assert.False(t, ok)

	// With a valid span context: trace and span IDs are attached.
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: trace.TraceID{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10},
		SpanID:  trace.SpanID{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08},
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	log.Info(ctx, "traced")
	rec = th.LastRecord()
	require.NotNil(t, rec)

	traceID, ok := rec.Properties.Get(fieldTraceID)
	require.True(t, ok)
	assert.Equal(t, sc.TraceID().String(), traceID)

	spanID, ok := rec.Properties.Get(fieldSpanID)
	require.True(t, ok)
	assert.Equal(t, sc.SpanID().String(), spanID)
}

func TestStaticEnricher(t *testing.T) {
	t.Parallel()

	th := NewTestHelper(t, WithEnricher(StaticEnricher(
		"service", "checkout",
		"version", "v1.2.3",
	)))
	log := th.Registry.GetLogger("svc")

	log.Info(context.Background(), "identity attached")
	rec := th.LastRecord()
	require.NotNil(t, rec)

	service, ok := rec.Properties.Get("service")
	require.True(t, ok)
	assert.Equal(t, "checkout", service)

	// A record property with the same key wins over the static one.
	log.Info(context.Background(), "override", "service", "billing")
	service, _ = th.LastRecord().Properties.Get("service")
	assert.Equal(t, "billing", service)
}

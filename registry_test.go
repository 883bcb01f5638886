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
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// orderedSink records the order in which sinks are drained at shutdown.
type orderedSink struct {
	name  string
	mu    *sync.Mutex
	order *[]string
}

func (s *orderedSink) Write(Record) error { return nil }

func (s *orderedSink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	*s.order = append(*s.order, s.name)
	return nil
}

// slowSink blocks on Flush to exercise the shutdown deadline.
type slowSink struct {
	delay time.Duration
}

func (s *slowSink) Write(Record) error { return nil }

func (s *slowSink) Flush() error {
	time.Sleep(s.delay)
	return nil
}

func TestRegistry_InitializeTwiceFails(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	require.NoError(t, reg.Initialize(WithSink(NewCaptureSink())))
	assert.True(t, reg.Initialized())

	err := reg.Initialize(WithSink(NewCaptureSink()))
	require.ErrorIs(t, err, ErrAlreadyInitialized)

	require.NoError(t, reg.Shutdown(context.Background()))
}

func TestRegistry_ShutdownTwiceIsNoop(t *testing.T) {
	t.Parallel()

	sink := NewCaptureSink()
	reg := NewRegistry()
	require.NoError(t, reg.Initialize(WithSink(sink)))

	require.NoError(t, reg.Shutdown(context.Background()))
	require.NoError(t, reg.Shutdown(context.Background()), "second shutdown is a no-op")
	assert.Equal(t, 1, sink.Flushed())
	assert.Equal(t, 1, sink.Closed())
}

func TestRegistry_ShutdownWithoutInitializeIsNoop(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	require.NoError(t, reg.Shutdown(context.Background()))
}

func TestRegistry_ReinitializeAfterShutdown(t *testing.T) {
	t.Parallel()

	first := NewCaptureSink()
	second := NewCaptureSink()

	reg := NewRegistry()
	require.NoError(t, reg.Initialize(WithSink(first)))
	reg.GetLogger("svc").Info(context.Background(), "one")
	require.NoError(t, reg.Shutdown(context.Background()))

	require.NoError(t, reg.Initialize(WithSink(second)))
	t.Cleanup(func() { _ = reg.Shutdown(context.Background()) })
	reg.GetLogger("svc").Info(context.Background(), "two")

	assert.Equal(t, 1, first.Len())
	assert.Equal(t, 1, second.Len())
}

func TestRegistry_LoggingAfterShutdownIsDropped(t *testing.T) {
	t.Parallel()

	sink := NewCaptureSink()
	reg := NewRegistry()
	require.NoError(t, reg.Initialize(WithSink(sink)))

	log := reg.GetLogger("svc")
	log.Info(context.Background(), "before")
	require.NoError(t, reg.Shutdown(context.Background()))

	require.NotPanics(t, func() {
		log.Info(context.Background(), "after")
	})
	assert.Equal(t, 1, sink.Len())
}

func TestRegistry_ShutdownFlushesLIFO(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var order []string

	reg := NewRegistry()
	require.NoError(t, reg.Initialize(
		WithSink(&orderedSink{name: "first", mu: &mu, order: &order}),
		WithSink(&orderedSink{name: "second", mu: &mu, order: &order}),
		WithSink(&orderedSink{name: "third", mu: &mu, order: &order}),
	))

	require.NoError(t, reg.Shutdown(context.Background()))
	assert.Equal(t, []string{"third", "second", "first"}, order)
}

func TestRegistry_ShutdownTimeout(t *testing.T) {
	t.Parallel()

	selflog := &bytes.Buffer{}
	fast := NewCaptureSink()

	reg := NewRegistry()
	// LIFO drain: the fast sink registered last is drained first, while
	// the deadline is still alive; the slow one is then abandoned.
	require.NoError(t, reg.Initialize(
		WithSink(&slowSink{delay: 2 * time.Second}),
		WithSink(fast),
		WithSelfDiagnostics(selflog),
	))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := reg.Shutdown(ctx)
	require.ErrorIs(t, err, ErrShutdownTimeout)
	assert.Less(t, time.Since(start), time.Second, "shutdown must not wait out the slow sink")

	assert.False(t, reg.Initialized(), "shutdown completes despite the timeout")
	assert.Equal(t, 1, fast.Flushed(), "fast sink drained before the deadline expired")
	assert.Contains(t, selflog.String(), "abandoned")
}

func TestRegistry_Flush(t *testing.T) {
	t.Parallel()

	sink := NewCaptureSink()
	reg := NewRegistry()

	require.ErrorIs(t, reg.Flush(context.Background()), ErrNotInitialized)

	require.NoError(t, reg.Initialize(WithSink(sink)))
	t.Cleanup(func() { _ = reg.Shutdown(context.Background()) })

	require.NoError(t, reg.Flush(context.Background()))
	assert.Equal(t, 1, sink.Flushed())
	assert.Zero(t, sink.Closed(), "flush must not close sinks")

	reg.GetLogger("svc").Info(context.Background(), "still running")
	assert.Equal(t, 1, sink.Len())
}

func TestRegistry_InitializeValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    []Option
		wantErr error
	}{
		{
			name:    "nil sink",
			opts:    []Option{WithSink(nil)},
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "invalid sink minimum",
			opts:    []Option{WithSinkAt(NewCaptureSink(), Level(99))},
			wantErr: ErrInvalidLevel,
		},
		{
			name:    "invalid global minimum",
			opts:    []Option{WithSink(NewCaptureSink()), WithMinimumLevel(Level(-3))},
			wantErr: ErrInvalidLevel,
		},
		{
			name:    "nil enricher",
			opts:    []Option{WithSink(NewCaptureSink()), WithEnricher(nil)},
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "nil self-diagnostics writer",
			opts:    []Option{WithSink(NewCaptureSink()), WithSelfDiagnostics(nil)},
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "nil clock",
			opts:    []Option{WithSink(NewCaptureSink()), WithClock(nil)},
			wantErr: ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			reg := NewRegistry()
			err := reg.Initialize(tt.opts...)
			require.ErrorIs(t, err, tt.wantErr)
			assert.False(t, reg.Initialized(), "failed initialization leaves the registry stopped")
		})
	}
}

func TestRegistry_GlobalMinimumIsAFloor(t *testing.T) {
	t.Parallel()

	loose := NewCaptureSink()
	strict := NewCaptureSink()

	reg := NewRegistry()
	require.NoError(t, reg.Initialize(
		WithSinkAt(loose, LevelTrace),
		WithSinkAt(strict, LevelError),
		WithMinimumLevel(LevelInfo),
	))
	t.Cleanup(func() { _ = reg.Shutdown(context.Background()) })

	log := reg.GetLogger("svc")
	log.Debug(context.Background(), "below the floor")
	log.Info(context.Background(), "at the floor")
	log.Error(context.Background(), "above everything")

	assert.Equal(t, 2, loose.Len(), "floor raises the loose sink's minimum to info")
	assert.Equal(t, 1, strict.Len(), "floor never loosens a stricter sink")
}

func TestRegistry_DefaultComponent(t *testing.T) {
	t.Parallel()

	sink := NewCaptureSink()
	reg := NewRegistry()
	require.NoError(t, reg.Initialize(WithSink(sink), WithDefaultComponent("app")))
	t.Cleanup(func() { _ = reg.Shutdown(context.Background()) })

	reg.GetLogger("").Info(context.Background(), "unnamed")
	require.Equal(t, 1, sink.Len())
	assert.Equal(t, "app", sink.Records()[0].Component)
}

func TestRegistry_FixedClock(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	th := NewTestHelper(t, WithClock(func() time.Time { return at }))

	th.Registry.GetLogger("svc").Info(context.Background(), "stamped")
	require.NotNil(t, th.LastRecord())
	assert.Equal(t, at, th.LastRecord().Time)
}

func TestRegistry_ConcurrentLogging(t *testing.T) {
	t.Parallel()

	th := NewTestHelper(t)
	log := th.Registry.GetLogger("svc")

	var wg sync.WaitGroup
	const goroutines, perGoroutine = 8, 50
	for g := 0; g < goroutines; g++ {
		g := g
		wg.Add(1)
		go func() {
			defer wg.Done()
			ctx, scope := BeginScope(context.Background(), "goroutine", g)
			defer scope.End()
			for i := 0; i < perGoroutine; i++ {
				log.Info(ctx, "concurrent {i}", "i", i)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, goroutines*perGoroutine, th.Sink.Len())
}

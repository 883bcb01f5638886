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
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// CaptureSink is an in-memory sink for tests. It records every delivered
// record and its flush/close lifecycle, and can be made to fail on demand
// to exercise failure isolation.
//
// Thread-safe: safe for concurrent writes.
type CaptureSink struct {
	mu       sync.Mutex
	records  []Record
	writeErr error
	flushed  int
	closed   int
}

// NewCaptureSink returns an empty capture sink.
func NewCaptureSink() *CaptureSink {
	return &CaptureSink{}
}

// Write implements [Sink]. When a failure has been injected with
// [CaptureSink.FailWith], the record is dropped and the error returned.
func (s *CaptureSink) Write(rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writeErr != nil {
		return s.writeErr
	}
	s.records = append(s.records, rec)
	return nil
}

// FailWith makes subsequent writes fail with err. Pass nil to heal.
func (s *CaptureSink) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeErr = err
}

// Records returns a copy of all captured records.
func (s *CaptureSink) Records() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of captured records.
func (s *CaptureSink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Reset discards all captured records.
func (s *CaptureSink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = s.records[:0]
}

// Flush implements the optional sink lifecycle.
func (s *CaptureSink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flushed++
	return nil
}

// Close implements the optional sink lifecycle.
func (s *CaptureSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed++
	return nil
}

// Flushed returns how many times Flush was called.
func (s *CaptureSink) Flushed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flushed
}

// Closed returns how many times Close was called.
func (s *CaptureSink) Closed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// TestHelper wires a registry to a capture sink for tests. The registry is
// shut down automatically via t.Cleanup.
type TestHelper struct {
	Registry *Registry
	Sink     *CaptureSink
}

// NewTestHelper creates an initialized registry capturing every record
// from LevelTrace up. Additional [Option] values customize the registry;
// extra sinks registered through them coexist with the capture sink.
func NewTestHelper(t *testing.T, opts ...Option) *TestHelper {
	t.Helper()

	sink := NewCaptureSink()
	reg := NewRegistry()
	defaultOpts := []Option{WithSink(sink)}
	defaultOpts = append(defaultOpts, opts...)
	require.NoError(t, reg.Initialize(defaultOpts...))

	t.Cleanup(func() {
		_ = reg.Shutdown(context.Background())
	})

	return &TestHelper{Registry: reg, Sink: sink}
}

// Records returns all captured records.
func (th *TestHelper) Records() []Record {
	return th.Sink.Records()
}

// LastRecord returns the most recent record, or nil when none were captured.
func (th *TestHelper) LastRecord() *Record {
	records := th.Sink.Records()
	if len(records) == 0 {
		return nil
	}
	return &records[len(records)-1]
}

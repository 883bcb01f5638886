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
	"errors"
	"sync"
	"time"
)

// BatchSink accumulates records and forwards them to an inner sink in
// batches. Dispatch stays synchronous — batching is this sink's internal
// concern, invisible to the dispatcher.
//
// Trade-offs:
//   - Latency: records appear at the inner sink up to flushInterval late
//   - Memory: up to batchSize records are buffered
//   - Durability: a crash before flush loses buffered records
//
// Typical configuration:
//   - Batch size: 100-1000 records
//   - Flush interval: 1-5 seconds
//
// Thread-safe: safe to use concurrently by multiple goroutines.
type BatchSink struct {
	inner     Sink
	mu        sync.Mutex
	records   []Record
	batchSize int
	ticker    *time.Ticker
	done      chan struct{}
	closeOnce sync.Once
	closeErr  error
}

// NewBatchSink wraps inner with batching. A batch is forwarded when it
// reaches batchSize records, when flushInterval elapses, on [BatchSink.Flush],
// and on [BatchSink.Close].
//
// Always close the sink (Registry.Shutdown does this for registered sinks)
// or up to batchSize records are lost. Inner-sink errors during a
// timer-driven flush surface on the next Write, Flush or Close.
func NewBatchSink(inner Sink, batchSize int, flushInterval time.Duration) *BatchSink {
	if batchSize < 1 {
		batchSize = 1
	}
	s := &BatchSink{
		inner:     inner,
		records:   make([]Record, 0, batchSize),
		batchSize: batchSize,
		ticker:    time.NewTicker(flushInterval),
		done:      make(chan struct{}),
	}
	go s.flusher()
	return s
}

// Write implements [Sink]. The record is buffered; a full batch is
// forwarded immediately on the caller's goroutine.
func (s *BatchSink) Write(rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, rec)
	if len(s.records) >= s.batchSize {
		return s.flushLocked()
	}
	return s.takeDeferredErrLocked()
}

// flusher periodically drains the batch in the background.
func (s *BatchSink) flusher() {
	for {
		select {
		case <-s.ticker.C:
			s.mu.Lock()
			if err := s.flushLocked(); err != nil {
				s.closeErr = err // reported on the next foreground call
			}
			s.mu.Unlock()
		case <-s.done:
			return
		}
	}
}

// Flush forwards all buffered records to the inner sink and flushes it.
func (s *BatchSink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flushLocked()
}

// flushLocked drains the buffer (must be called with the lock held).
// Inner-sink write failures do not stop the drain; the remaining records
// are still attempted and the errors joined.
func (s *BatchSink) flushLocked() error {
	errs := []error{s.takeDeferredErrLocked()}
	for i := range s.records {
		if err := s.inner.Write(s.records[i]); err != nil {
			errs = append(errs, err)
		}
	}
	s.records = s.records[:0]
	if f, ok := s.inner.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// takeDeferredErrLocked returns and clears an error stashed by a
// background flush.
func (s *BatchSink) takeDeferredErrLocked() error {
	err := s.closeErr
	s.closeErr = nil
	return err
}

// Size returns the number of currently buffered records.
func (s *BatchSink) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Close stops the background flusher, drains the buffer and closes the
// inner sink if it supports closing. Idempotent.
func (s *BatchSink) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		s.ticker.Stop()

		var errs []error
		if flushErr := s.Flush(); flushErr != nil {
			errs = append(errs, flushErr)
		}
		if c, ok := s.inner.(interface{ Close() error }); ok {
			if closeErr := c.Close(); closeErr != nil {
				errs = append(errs, closeErr)
			}
		}
		err = errors.Join(errs...)
	})
	return err
}

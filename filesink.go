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
	"bufio"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/klauspost/compress/gzip"
)

// fileBufferSize is the bufio buffer in front of the file. Large enough to
// absorb bursts, small enough that Flush latency stays negligible.
const fileBufferSize = 32 * 1024

// FileSink writes JSON-line records to a file, optionally gzip-compressed.
//
// Writes are buffered; call Flush to force buffered records to disk.
// [Registry.Shutdown] does this automatically. Opening an existing
// compressed file appends a new gzip member, which standard decoders read
// as a single concatenated stream.
//
// Thread-safe: writes are serialized so concurrent records never interleave.
type FileSink struct {
	mu     sync.Mutex
	file   *os.File
	buf    *bufio.Writer
	gz     *gzip.Writer // nil when compression is off
	closed bool
}

// NewFileSink opens (or creates, append-mode) the file at path.
func NewFileSink(path string, compress bool) (*FileSink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	s := &FileSink{
		file: f,
		buf:  bufio.NewWriterSize(f, fileBufferSize),
	}
	if compress {
		s.gz = gzip.NewWriter(s.buf)
	}
	return s, nil
}

// Write implements [Sink].
func (s *FileSink) Write(rec Record) error {
	data, err := encodeJSONRecord(rec)
	if err != nil {
		return err
	}
	data = append(data, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return fmt.Errorf("file sink %s is closed", s.file.Name())
	}
	if s.gz != nil {
		_, err = s.gz.Write(data)
	} else {
		_, err = s.buf.Write(data)
	}
	return err
}

// Flush forces buffered records through the compressor and onto disk.
func (s *FileSink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flushLocked()
}

func (s *FileSink) flushLocked() error {
	if s.closed {
		return nil
	}
	if s.gz != nil {
		if err := s.gz.Flush(); err != nil {
			return err
		}
	}
	if err := s.buf.Flush(); err != nil {
		return err
	}
	return s.file.Sync()
}

// Close flushes and closes the file. Further writes fail.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}

	var errs []error
	if s.gz != nil {
		if err := s.gz.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := s.buf.Flush(); err != nil {
		errs = append(errs, err)
	}
	if err := s.file.Close(); err != nil {
		errs = append(errs, err)
	}
	s.closed = true
	return errors.Join(errs...)
}

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

import "errors"

// Sink is a backend destination for finished log records.
//
// Write is the only required operation. A sink may buffer internally and
// may fail; failures are isolated by the dispatcher and never reach the
// logging call site.
//
// Lifecycle is optional and discovered by type assertion: a sink may
// additionally implement
//
//	Flush() error
//	Close() error
//
// which [Registry.Shutdown] invokes, in that order, on every sink that
// supports them.
type Sink interface {
	Write(r Record) error
}

// sinkRegistration pairs a sink with its effective minimum level.
// The registered set is immutable after Initialize; dispatch reads it
// without locking.
type sinkRegistration struct {
	sink Sink
	min  Level
}

// drainSink flushes and closes a sink, invoking whichever lifecycle
// operations it supports.
func drainSink(s Sink) error {
	var errs []error
	if f, ok := s.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			errs = append(errs, err)
		}
	}
	if c, ok := s.(interface{ Close() error }); ok {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

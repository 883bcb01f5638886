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
	"time"
)

// dispatcher routes finished records to the registered sinks.
//
// The registration slice, enricher chain and clock are fixed at
// Initialize, so dispatch runs lock-free on the caller's goroutine.
// Thread-safety of the individual sinks is the sinks' own concern.
type dispatcher struct {
	regs      []sinkRegistration
	enrichers []Enricher
	selflog   *selfLog
	clock     func() time.Time

	// minLevel is the lowest effective minimum across all registrations.
	// Records below it are dropped before construction (see Logger.Log).
	minLevel Level
}

// dispatch applies the enricher chain, then forwards the record to every
// sink whose minimum level admits it. One sink's failure — error return or
// panic — never prevents delivery to the remaining sinks and never
// propagates to the caller.
func (d *dispatcher) dispatch(ctx context.Context, rec Record) {
	for _, enrich := range d.enrichers {
		rec = d.enrichOne(ctx, enrich, rec)
	}
	for i := range d.regs {
		if rec.Level < d.regs[i].min {
			continue
		}
		d.writeOne(d.regs[i].sink, rec)
	}
}

// enrichOne applies a single enricher, discarding its result if it panics.
func (d *dispatcher) enrichOne(ctx context.Context, enrich Enricher, rec Record) (out Record) {
	out = rec
	defer func() {
		if p := recover(); p != nil {
			out = rec
			d.selflog.reportf("enricher panicked: %v", p)
		}
	}()
	return enrich(ctx, rec)
}

// writeOne delivers a record to one sink, containing errors and panics.
func (d *dispatcher) writeOne(s Sink, rec Record) {
	defer func() {
		if p := recover(); p != nil {
			d.selflog.reportf("sink %T panicked writing record %q: %v", s, rec.Template, p)
		}
	}()
	if err := s.Write(rec); err != nil {
		d.selflog.reportf("sink %T failed writing record %q: %v", s, rec.Template, err)
	}
}

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
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
)

// Registry owns the sink dispatcher and the lifecycle of every registered
// sink. It is the only component that constructs a dispatcher.
//
// A registry is an explicit object rather than ambient global state so
// tests and embedded uses can run isolated instances side by side; a
// package-level default registry is provided for host integration (see
// [Initialize]).
//
// Thread-safety:
//   - Initialize/Shutdown are serialized by a mutex
//   - the hot logging path reads the dispatcher through an atomic pointer
//     and never locks
type Registry struct {
	mu          sync.Mutex
	initialized bool

	disp      atomic.Pointer[dispatcher]
	accepting atomic.Bool

	defaultComponent string
}

// NewRegistry returns an uninitialized registry. Loggers obtained before
// [Registry.Initialize] are valid handles whose log calls no-op until the
// registry starts.
func NewRegistry() *Registry {
	return &Registry{}
}

// Initialize validates the options, registers the configured sinks and
// enrichers, and constructs the dispatcher. It must complete before records
// flow.
//
// Calling Initialize on a running registry fails with
// [ErrAlreadyInitialized]; after [Registry.Shutdown] the registry may be
// initialized again. With no sinks configured, records go to a JSON sink
// on stdout.
func (r *Registry) Initialize(opts ...Option) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.initialized {
		return ErrAlreadyInitialized
	}

	cfg := defaultRegistryConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	if len(cfg.sinks) == 0 {
		cfg.sinks = append(cfg.sinks, sinkRegistration{sink: NewJSONSink(os.Stdout), min: LevelTrace})
	}

	regs := make([]sinkRegistration, len(cfg.sinks))
	minLevel := LevelCritical
	for i, reg := range cfg.sinks {
		// The global floor raises, never lowers, a sink's own minimum.
		if reg.min < cfg.minLevel {
			reg.min = cfg.minLevel
		}
		regs[i] = reg
		if reg.min < minLevel {
			minLevel = reg.min
		}
	}

	r.disp.Store(&dispatcher{
		regs:      regs,
		enrichers: cfg.enrichers,
		selflog:   newSelfLog(cfg.selfDiagnostics),
		clock:     cfg.clock,
		minLevel:  minLevel,
	})
	r.defaultComponent = cfg.defaultComponent
	r.accepting.Store(true)
	r.initialized = true
	return nil
}

// Initialized reports whether the registry is currently running.
func (r *Registry) Initialized() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.initialized
}

// GetLogger returns a logger handle bound to the component name. Handles
// are cheap and share the registry's dispatcher; multiple handles may be
// created for the same component.
//
// A handle obtained before Initialize (or after Shutdown) silently drops
// records until the registry is running again.
func (r *Registry) GetLogger(component string) *Logger {
	if component == "" {
		r.mu.Lock()
		component = r.defaultComponent
		r.mu.Unlock()
	}
	return &Logger{registry: r, component: component}
}

// Flush forces every sink that supports flushing to persist buffered
// records, without stopping the registry. Intended for host checkpoints
// (signal handlers, pre-fork, crash reporters). Flushing a registry that is
// not running fails with [ErrNotInitialized].
//
// The context bounds the total flush time; remaining sinks are skipped once
// it expires and its error is included in the result.
func (r *Registry) Flush(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.initialized {
		return ErrNotInitialized
	}
	if ctx == nil {
		ctx = context.Background()
	}

	d := r.disp.Load()
	var errs []error
	for i := range d.regs {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		f, ok := d.regs[i].sink.(interface{ Flush() error })
		if !ok {
			continue
		}
		if err := f.Flush(); err != nil {
			errs = append(errs, fmt.Errorf("sink %T: %w", d.regs[i].sink, err))
		}
	}
	return errors.Join(errs...)
}

// Shutdown stops accepting records, then flushes and closes every sink in
// reverse registration order (LIFO, symmetric with registration). The
// context bounds the total flush time: a sink that does not finish before
// the deadline is abandoned, reported to the self-diagnostics stream, and
// contributes [ErrShutdownTimeout] to the returned error. Shutdown always
// completes teardown.
//
// Shutdown on a registry that is not running — including a second call —
// is a no-op returning nil.
func (r *Registry) Shutdown(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.initialized {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	d := r.disp.Load()
	r.accepting.Store(false)
	r.disp.Store(nil)
	r.initialized = false

	var errs []error
	for i := len(d.regs) - 1; i >= 0; i-- {
		s := d.regs[i].sink
		done := make(chan error, 1)
		go func() { done <- drainSink(s) }()

		select {
		case err := <-done:
			if err != nil {
				errs = append(errs, fmt.Errorf("sink %T: %w", s, err))
			}
		case <-ctx.Done():
			d.selflog.reportf("sink %T abandoned during shutdown: %v", s, ctx.Err())
			errs = append(errs, fmt.Errorf("sink %T: %w", s, ErrShutdownTimeout))
		}
	}
	return errors.Join(errs...)
}

// dispatcherFor returns the dispatcher when the registry is running and
// the level clears the cheapest possible check, nil otherwise. Factoring
// the gate here keeps Logger's hot path to two atomic loads.
func (r *Registry) dispatcherFor(level Level) *dispatcher {
	if !r.accepting.Load() {
		return nil
	}
	d := r.disp.Load()
	if d == nil || level < d.minLevel {
		return nil
	}
	return d
}

// Default registry for host-framework integration. A host calls
// [Initialize] once at startup and [Shutdown] once at orderly termination;
// everything else uses [GetLogger]. Library code should prefer an explicit
// [Registry] so tests stay isolated.
var defaultRegistry = NewRegistry()

// Default returns the process-wide default registry.
func Default() *Registry {
	return defaultRegistry
}

// Initialize initializes the default registry.
func Initialize(opts ...Option) error {
	return defaultRegistry.Initialize(opts...)
}

// GetLogger returns a logger bound to the component name on the default
// registry.
func GetLogger(component string) *Logger {
	return defaultRegistry.GetLogger(component)
}

// Shutdown shuts down the default registry.
func Shutdown(ctx context.Context) error {
	return defaultRegistry.Shutdown(ctx)
}

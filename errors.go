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

// Error types for better error handling and testing.
//
// Design rationale:
//   - Sentinel errors (package-level vars) enable [errors.Is] checks
//   - Descriptive names make error handling self-documenting
//
// Usage pattern:
//
//	if err := registry.Initialize(opts...); err != nil {
//	    if errors.Is(err, logging.ErrAlreadyInitialized) {
//	        // Registry was already started; decide whether that is fatal.
//	    }
//	}
var (
	// ErrAlreadyInitialized indicates [Registry.Initialize] was called on a
	// registry that is already running. Call [Registry.Shutdown] first.
	ErrAlreadyInitialized = errors.New("registry already initialized")

	// ErrNotInitialized indicates an operation that requires a running
	// registry, such as [Registry.Flush], was attempted before
	// [Registry.Initialize] or after [Registry.Shutdown].
	ErrNotInitialized = errors.New("registry not initialized")

	// ErrInvalidConfig indicates an invalid or missing configuration value.
	// Raised synchronously from [Registry.Initialize] and [Config.Options].
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidLevel indicates a level outside the defined range, or a
	// level name that could not be parsed.
	ErrInvalidLevel = errors.New("invalid log level")

	// ErrNoSinks indicates a declarative configuration with an empty
	// destination list. A registry initialized directly without sinks falls
	// back to a JSON sink on stdout instead.
	ErrNoSinks = errors.New("no destinations configured")

	// ErrShutdownTimeout indicates one or more sinks did not finish
	// flushing within the shutdown deadline and were abandoned.
	// Shutdown still completes; the error reports the partial flush.
	ErrShutdownTimeout = errors.New("sink flush timed out during shutdown")
)

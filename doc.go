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

// Package logging is a provider-agnostic structured-logging facade with
// pluggable backend sinks and context-scoped property propagation.
//
// Call sites log through a [Logger] handle obtained from a [Registry];
// records carry a message template with {name} placeholders, typed
// properties and the properties of every scope open on the context. A
// dispatcher fans finished records out to the registered sinks, each with
// its own minimum level. Sink failures never reach the call site: logging
// is fire-and-forget by design.
//
// # Quick start
//
//	registry := logging.NewRegistry()
//	err := registry.Initialize(
//	    logging.WithSinkAt(logging.NewConsoleSink(os.Stderr), logging.LevelDebug),
//	    logging.WithEnricher(logging.TraceEnricher()),
//	)
//	if err != nil {
//	    // configuration errors are fatal and synchronous
//	}
//	defer registry.Shutdown(context.Background())
//
//	log := registry.GetLogger("checkout")
//	log.Info(ctx, "Found {count} values.", "count", 2)
//
// # Scopes
//
// A scope attaches properties to every record emitted under it. Scopes
// ride on the context, nest, and are released with the handle:
//
//	ctx, scope := logging.BeginScope(ctx, "order_id", id)
//	defer scope.End()
//
// Concurrent call chains never observe each other's scopes.
//
// # Sinks
//
// Built-in destinations: [JSONSink] and [TextSink] for aggregation,
// [ConsoleSink] for humans, [FileSink] with optional gzip compression,
// [ZapSink] for the zap encoder ecosystem, and [BatchSink] to make any of
// them asynchronous. Anything implementing [Sink] can be registered; the
// dispatcher never depends on a concrete sink type.
//
// # Configuration
//
// Registries are configured with functional options, or declaratively from
// YAML via [LoadConfig] and [Config.Options]. The registered sink set is
// fixed after [Registry.Initialize]; [Registry.Shutdown] flushes and closes
// sinks in reverse registration order under a caller-supplied deadline.
//
// # Lifecycle and hosts
//
// A host application calls [Initialize] once at startup and [Shutdown]
// once at orderly termination; those operate on the process-wide default
// registry. Libraries and tests should construct their own [Registry] so
// instances stay isolated.
package logging

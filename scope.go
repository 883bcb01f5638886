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
	"sync/atomic"
)

// scopeCtxKey is the context key under which the innermost scope frame is
// stored. An unexported struct type guarantees no collision with other
// packages' context values.
type scopeCtxKey struct{}

// scopeFrame is one nested scope. Frames form a parent-linked chain per
// call chain; the chain itself lives in the [context.Context], which is
// what isolates concurrent call chains from each other.
//
// A frame is immutable after push except for the released flag.
type scopeFrame struct {
	parent   *scopeFrame
	props    Properties
	released atomic.Bool
}

// Scope is the handle returned by [BeginScope]. Call [Scope.End] when the
// scope exits — typically with defer, which guarantees release even when
// the call site returns early or propagates an error:
//
//	ctx, scope := logging.BeginScope(ctx, "order_id", id)
//	defer scope.End()
type Scope struct {
	frame *scopeFrame
}

// End releases the scope. After End, the frame no longer contributes to
// [CurrentScope], even for contexts that still reference it. End is
// idempotent and safe on a nil scope.
func (s *Scope) End() {
	if s == nil || s.frame == nil {
		return
	}
	s.frame.released.Store(true)
}

// Active reports whether the scope has not yet been released.
func (s *Scope) Active() bool {
	return s != nil && s.frame != nil && !s.frame.released.Load()
}

// BeginScope opens a nested property scope on the context. All records
// emitted with the returned context while the scope is open carry the
// scope's entries in their ScopeProperties.
//
// Scopes nest: an inner scope overrides an outer one for the same key and
// is removed again when it ends. Because scopes ride on the context,
// concurrent call chains never observe each other's frames.
func BeginScope(ctx context.Context, args ...any) (context.Context, *Scope) {
	if ctx == nil {
		ctx = context.Background()
	}
	parent, _ := ctx.Value(scopeCtxKey{}).(*scopeFrame)
	frame := &scopeFrame{
		parent: parent,
		props:  propertiesFromArgs(args),
	}
	return context.WithValue(ctx, scopeCtxKey{}, frame), &Scope{frame: frame}
}

// CurrentScope returns the merged properties of all scopes still open on
// the context, applied root-to-innermost so that the innermost scope wins
// on key collision. Released frames never contribute; once every frame has
// ended the result is empty.
func CurrentScope(ctx context.Context) Properties {
	if ctx == nil {
		return nil
	}
	frame, _ := ctx.Value(scopeCtxKey{}).(*scopeFrame)
	if frame == nil {
		return nil
	}

	// Collect open frames innermost-first, then apply in reverse.
	var open []*scopeFrame
	for f := frame; f != nil; f = f.parent {
		if !f.released.Load() {
			open = append(open, f)
		}
	}
	if len(open) == 0 {
		return nil
	}

	var merged Properties
	for i := len(open) - 1; i >= 0; i-- {
		for _, prop := range open[i].props {
			merged = merged.set(prop.Key, prop.Value)
		}
	}
	return merged
}

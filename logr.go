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

	"github.com/go-logr/logr"
)

// NewLogr exposes the facade as a [logr.Logger], for libraries that log
// through logr (controller-runtime, client-go and friends). Records flow
// through the registry's dispatcher like any other.
//
// Verbosity mapping: V(0) logs at LevelInfo, V(1) at LevelDebug, V(2) and
// above at LevelTrace. Error logs at LevelError with the error attached as
// the "error" property.
func NewLogr(reg *Registry, component string) logr.Logger {
	return logr.New(&logrSink{logger: reg.GetLogger(component)})
}

// logrSink implements [logr.LogSink] on top of a [Logger].
type logrSink struct {
	logger *Logger
}

var _ logr.LogSink = (*logrSink)(nil)

func (s *logrSink) Init(logr.RuntimeInfo) {}

func (s *logrSink) Enabled(v int) bool {
	return s.logger.Enabled(logrLevel(v))
}

func (s *logrSink) Info(v int, msg string, keysAndValues ...any) {
	s.logger.Log(context.Background(), logrLevel(v), msg, keysAndValues...)
}

func (s *logrSink) Error(err error, msg string, keysAndValues ...any) {
	s.logger.LogError(context.Background(), err, msg, keysAndValues...)
}

func (s *logrSink) WithValues(keysAndValues ...any) logr.LogSink {
	return &logrSink{logger: s.logger.With(keysAndValues...)}
}

func (s *logrSink) WithName(name string) logr.LogSink {
	return &logrSink{logger: s.logger.named(name)}
}

// logrLevel maps logr verbosity onto facade levels.
func logrLevel(v int) Level {
	switch {
	case v <= 0:
		return LevelInfo
	case v == 1:
		return LevelDebug
	default:
		return LevelTrace
	}
}

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
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapSink bridges records onto a [zapcore.Core], so the full zap encoder
// and output ecosystem is available as a destination without the facade
// depending on any concrete encoding.
//
// The component name becomes the zap logger name, properties become typed
// zap fields, and scope properties are nested under a "scope" namespace.
type ZapSink struct {
	core zapcore.Core
}

// NewZapSink wraps an existing zap core.
func NewZapSink(core zapcore.Core) *ZapSink {
	return &ZapSink{core: core}
}

// NewZapJSONSink builds a production-style JSON zap core writing to w.
// Convenience for the common case; construct the core yourself for
// custom encoder configs.
func NewZapJSONSink(w io.Writer, min Level) *ZapSink {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "time"
	cfg.MessageKey = "msg"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(cfg),
		zapcore.AddSync(w),
		zapLevel(min),
	)
	return &ZapSink{core: core}
}

// Write implements [Sink].
func (s *ZapSink) Write(rec Record) error {
	entry := zapcore.Entry{
		Time:       rec.Time,
		Level:      zapLevel(rec.Level),
		LoggerName: rec.Component,
		Message:    rec.Message(),
	}
	ce := s.core.Check(entry, nil)
	if ce == nil {
		return nil
	}

	fields := make([]zapcore.Field, 0, len(rec.Properties)+len(rec.ScopeProperties)+1)
	for _, prop := range rec.Properties {
		fields = append(fields, zap.Any(prop.Key, prop.Value))
	}
	if len(rec.ScopeProperties) > 0 {
		fields = append(fields, zap.Namespace("scope"))
		for _, prop := range rec.ScopeProperties {
			fields = append(fields, zap.Any(prop.Key, prop.Value))
		}
	}
	ce.Write(fields...)
	return nil
}

// Flush implements the optional sink lifecycle by syncing the core.
func (s *ZapSink) Flush() error {
	return s.core.Sync()
}

// zapLevel maps facade levels onto zap's. Zap has no trace level, so
// LevelTrace maps to debug; LevelCritical maps to fatal for severity only —
// no terminal hook is attached, the process does not exit.
func zapLevel(l Level) zapcore.Level {
	switch l {
	case LevelTrace, LevelDebug:
		return zapcore.DebugLevel
	case LevelInfo:
		return zapcore.InfoLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	case LevelCritical:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

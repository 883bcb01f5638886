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
	"fmt"
	"io"
	"sync"
	"time"
)

// selfLog is the last-resort diagnostic stream. Sink write failures, sink
// panics and abandoned shutdown flushes are reported here so they are not
// silently lost, without ever surfacing to the logging call site.
//
// It is deliberately built on a bare [io.Writer]: the failure channel of
// the logging facade cannot itself depend on the facade.
type selfLog struct {
	mu sync.Mutex
	w  io.Writer
}

func newSelfLog(w io.Writer) *selfLog {
	return &selfLog{w: w}
}

// reportf writes one timestamped diagnostic line. Write errors on the
// diagnostic stream itself are dropped; there is nowhere left to report.
func (s *selfLog) reportf(format string, args ...any) {
	if s == nil || s.w == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, time.Now().Format(time.RFC3339)+" logging: "+format+"\n", args...)
}

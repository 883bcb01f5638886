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
	"os"

	"github.com/goccy/go-yaml"
)

// Config is the declarative YAML configuration surface for a registry:
//
//	minimumLevel: info
//	destinations:
//	  - type: console
//	    minimumLevel: debug
//	  - type: file
//	    path: /var/log/app.log.gz
//	    compress: true
//	    minimumLevel: warn
//	  - type: json
//
// Enrichers are code, not configuration; pass them to
// [Registry.Initialize] alongside [Config.Options].
type Config struct {
	// MinimumLevel is the global floor applied on top of each
	// destination's own minimum. Defaults to "info" when omitted.
	MinimumLevel string `yaml:"minimumLevel"`

	// Destinations lists the sinks to register, in order.
	Destinations []Destination `yaml:"destinations"`
}

// Destination describes one configured sink.
type Destination struct {
	// Type selects the sink: "console", "json", "text" or "file".
	// The console destination writes to stderr, json and text to stdout.
	Type string `yaml:"type"`

	// Path is the target file. Required for type "file".
	Path string `yaml:"path"`

	// Compress enables gzip compression for type "file".
	Compress bool `yaml:"compress"`

	// MinimumLevel is this destination's own filter. Defaults to "trace"
	// (no filter beyond the global floor) when omitted.
	MinimumLevel string `yaml:"minimumLevel"`
}

// ParseConfig parses a YAML configuration document.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return &cfg, nil
}

// LoadConfig reads and parses a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return ParseConfig(data)
}

// Options expands the configuration into registry options:
//
//	cfg, err := logging.LoadConfig(path)
//	// ...
//	opts, err := cfg.Options()
//	// ...
//	err = registry.Initialize(append(opts, logging.WithEnricher(logging.TraceEnricher()))...)
//
// An empty destination list fails with [ErrNoSinks]; unknown destination
// types, unparsable levels and a file destination without a path fail with
// the corresponding sentinel wrapped in context.
func (c *Config) Options() ([]Option, error) {
	if len(c.Destinations) == 0 {
		return nil, ErrNoSinks
	}

	global := LevelInfo
	if c.MinimumLevel != "" {
		parsed, err := ParseLevel(c.MinimumLevel)
		if err != nil {
			return nil, fmt.Errorf("minimumLevel: %w", err)
		}
		global = parsed
	}

	opts := make([]Option, 0, len(c.Destinations)+1)
	opts = append(opts, WithMinimumLevel(global))

	for i, dest := range c.Destinations {
		min := LevelTrace
		if dest.MinimumLevel != "" {
			parsed, err := ParseLevel(dest.MinimumLevel)
			if err != nil {
				return nil, fmt.Errorf("destination %d: %w", i, err)
			}
			min = parsed
		}

		var sink Sink
		switch dest.Type {
		case "console":
			sink = NewConsoleSink(os.Stderr)
		case "json":
			sink = NewJSONSink(os.Stdout)
		case "text":
			sink = NewTextSink(os.Stdout)
		case "file":
			if dest.Path == "" {
				return nil, fmt.Errorf("%w: destination %d: file destination requires a path", ErrInvalidConfig, i)
			}
			fs, err := NewFileSink(dest.Path, dest.Compress)
			if err != nil {
				return nil, fmt.Errorf("%w: destination %d: %w", ErrInvalidConfig, i, err)
			}
			sink = fs
		default:
			return nil, fmt.Errorf("%w: destination %d: unknown type %q", ErrInvalidConfig, i, dest.Type)
		}
		opts = append(opts, WithSinkAt(sink, min))
	}
	return opts, nil
}

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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	cfg, err := ParseConfig([]byte(`
minimumLevel: debug
destinations:
  - type: console
  - type: file
    path: /var/log/app.log.gz
    compress: true
    minimumLevel: warn
`))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.MinimumLevel)
	require.Len(t, cfg.Destinations, 2)
	assert.Equal(t, "console", cfg.Destinations[0].Type)
	assert.Equal(t, "/var/log/app.log.gz", cfg.Destinations[1].Path)
	assert.True(t, cfg.Destinations[1].Compress)
	assert.Equal(t, "warn", cfg.Destinations[1].MinimumLevel)
}

func TestParseConfig_RejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig([]byte(`
minimumLevel: info
destinatoins:
  - type: console
`))
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "logging.yaml")
	require.NoError(t, os.WriteFile(path, []byte("destinations:\n  - type: json\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Len(t, cfg.Destinations, 1)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestConfig_Options(t *testing.T) {
	t.Parallel()

	logPath := filepath.Join(t.TempDir(), "app.log")
	cfg := &Config{
		MinimumLevel: "debug",
		Destinations: []Destination{
			{Type: "console"},
			{Type: "file", Path: logPath, MinimumLevel: "error"},
		},
	}

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Len(t, opts, 3, "one global minimum plus one option per destination")

	reg := NewRegistry()
	require.NoError(t, reg.Initialize(opts...))
	require.NoError(t, reg.Shutdown(context.Background()))

	_, err = os.Stat(logPath)
	assert.NoError(t, err, "file destination creates its target")
}

func TestConfig_OptionsErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name:    "no destinations",
			cfg:     Config{},
			wantErr: ErrNoSinks,
		},
		{
			name: "bad global level",
			cfg: Config{
				MinimumLevel: "loud",
				Destinations: []Destination{{Type: "console"}},
			},
			wantErr: ErrInvalidLevel,
		},
		{
			name: "bad destination level",
			cfg: Config{
				Destinations: []Destination{{Type: "console", MinimumLevel: "loud"}},
			},
			wantErr: ErrInvalidLevel,
		},
		{
			name: "unknown destination type",
			cfg: Config{
				Destinations: []Destination{{Type: "syslog"}},
			},
			wantErr: ErrInvalidConfig,
		},
		{
			name: "file without path",
			cfg: Config{
				Destinations: []Destination{{Type: "file"}},
			},
			wantErr: ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := tt.cfg.Options()
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestConfig_LevelAliases(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		MinimumLevel: "warning",
		Destinations: []Destination{{Type: "console", MinimumLevel: "information"}},
	}

	_, err := cfg.Options()
	require.NoError(t, err)
}

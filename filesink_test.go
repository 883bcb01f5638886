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
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSink_Plain(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "app.log")
	sink, err := NewFileSink(path, false)
	require.NoError(t, err)

	require.NoError(t, sink.Write(testRecord()))
	require.NoError(t, sink.Flush())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var rec parsedRecord
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &rec))
	assert.Equal(t, "Found 2 values.", rec.Msg)
	assert.Equal(t, "checkout", rec.Component)

	require.NoError(t, sink.Close())
	require.Error(t, sink.Write(testRecord()), "writes after close must fail")
	require.NoError(t, sink.Close(), "close is idempotent")
}

func TestFileSink_Compressed(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "app.log.gz")
	sink, err := NewFileSink(path, true)
	require.NoError(t, err)

	require.NoError(t, sink.Write(testRecord()))
	require.NoError(t, sink.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	gz, err := gzip.NewReader(f)
	require.NoError(t, err)
	data, err := io.ReadAll(gz)
	require.NoError(t, err)

	var rec parsedRecord
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &rec))
	assert.Equal(t, "Found 2 values.", rec.Msg)
}

func TestFileSink_AppendsAcrossReopens(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "app.log")

	for i := 0; i < 2; i++ {
		sink, err := NewFileSink(path, false)
		require.NoError(t, err)
		require.NoError(t, sink.Write(testRecord()))
		require.NoError(t, sink.Close())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, bytes.Count(data, []byte{'\n'}))
}

func TestFileSink_BadPath(t *testing.T) {
	t.Parallel()

	_, err := NewFileSink(filepath.Join(t.TempDir(), "missing", "app.log"), false)
	require.Error(t, err)
}

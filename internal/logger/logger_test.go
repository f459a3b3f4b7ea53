// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readEntries(t *testing.T, data []byte) []map[string]any {
	t.Helper()

	var entries []map[string]any
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		entries = append(entries, entry)
	}
	return entries
}

// TestNewClientLogger_WritesToFile verifies that entries land in the given
// file with role, timestamp and caller fields.
func TestNewClientLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")
	l := NewClientLogger("test-role", path, "debug")

	l.Info().Msg("hello")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	entries := readEntries(t, data)
	require.Len(t, entries, 1)
	assert.Equal(t, "test-role", entries[0]["role"])
	assert.Equal(t, "hello", entries[0]["message"])
	assert.Contains(t, entries[0], "ts")
	assert.Contains(t, entries[0], "func")
}

func TestNewClientLogger_Level(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")
	l := NewClientLogger("lvl", path, "warn")
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	l.Info().Msg("dropped")
	l.Warn().Msg("kept")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	entries := readEntries(t, data)
	require.Len(t, entries, 1)
	assert.Equal(t, "kept", entries[0]["message"])
}

func TestNewClientLogger_UnknownLevelFallsBackToDebug(t *testing.T) {
	NewClientLogger("lvl", filepath.Join(t.TempDir(), "client.log"), "chatty")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

// TestNewClientLogger_UnwritablePath verifies that an unusable path does not
// panic and yields a working (discarding) logger.
func TestNewClientLogger_UnwritablePath(t *testing.T) {
	l := NewClientLogger("x", filepath.Join(t.TempDir(), "missing", "dir", "log"), "debug")
	require.NotNil(t, l)
	assert.NotPanics(t, func() { l.Info().Msg("nowhere") })
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

func TestGetChildLogger_DoesNotShareFields(t *testing.T) {
	var buf bytes.Buffer
	parent := &Logger{zerolog.New(&buf).With().Str("role", "client").Logger()}

	child := parent.GetChildLogger()
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("request_id", "42")
	})

	child.Info().Msg("child")
	assert.Contains(t, buf.String(), `"role":"client"`)
	assert.Contains(t, buf.String(), `"request_id":"42"`)

	buf.Reset()
	parent.Info().Msg("parent")
	assert.NotContains(t, buf.String(), "request_id")
}

func TestFromContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{zerolog.New(&buf)}

	ctx := l.WithContext(context.Background())
	FromContext(ctx).Info().Msg("from ctx")

	assert.Contains(t, buf.String(), "from ctx")
}

func TestHubLogger_Log(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{zerolog.New(&buf)}
	hub := l.HubLogger()

	err := hub.Log("level", "error", "msg", "connection lost", "connectionId", "abc", "error", errors.New("eof"))
	require.NoError(t, err)

	entries := readEntries(t, buf.Bytes())
	require.Len(t, entries, 1)
	assert.Equal(t, "error", entries[0]["level"])
	assert.Equal(t, "connection lost", entries[0]["message"])
	assert.Equal(t, "abc", entries[0]["connectionId"])
	assert.Equal(t, "eof", entries[0]["error"])
	assert.Equal(t, "hub-transport", entries[0]["component"])
}

func TestHubLogger_OddKeyVals(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{zerolog.New(&buf)}

	require.NoError(t, l.HubLogger().Log("dangling"))

	entries := readEntries(t, buf.Bytes())
	require.Len(t, entries, 1)
	assert.Equal(t, "(MISSING)", entries[0]["dangling"])
	assert.Equal(t, "debug", entries[0]["level"])
}

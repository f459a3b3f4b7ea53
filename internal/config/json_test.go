// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_AllFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"adapter": {
			"hub_url": "https://hub.example/discountHub",
			"handshake_timeout": "10s",
			"request_timeout": "2m",
			"skip_probe": true
		},
		"logger": {"file": "/var/log/discount.log", "level": "warn"}
	}`), 0o600))

	cfg, set, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "https://hub.example/discountHub", cfg.Adapter.HubURL)
	assert.Equal(t, 10*time.Second, cfg.Adapter.HandshakeTimeout)
	assert.Equal(t, 2*time.Minute, cfg.Adapter.RequestTimeout)
	assert.True(t, cfg.Adapter.SkipProbe)
	assert.Equal(t, "/var/log/discount.log", cfg.Logger.File)
	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.Empty(t, cfg.JSONFilePath)
	require.NotNil(t, set.requestTimeout)
	require.NotNil(t, set.skipProbe)
}

func TestParseJSON_ExplicitZeroValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"adapter": {"request_timeout": "0s", "skip_probe": false}
	}`), 0o600))

	_, set, err := parseJSON(path)
	require.NoError(t, err)

	require.NotNil(t, set.requestTimeout)
	assert.Zero(t, *set.requestTimeout)
	require.NotNil(t, set.skipProbe)
	assert.False(t, *set.skipProbe)
}

func TestParseJSON_OmittedSettingsNotSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"adapter": {"hub_url": "https://hub.example/discountHub"}}`), 0o600))

	_, set, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, adapterOverrides{}, set)
}

func TestParseJSON_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not valid json"), 0o600))

	_, _, err := parseJSON(path)
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"1m30s"`, want: 90 * time.Second},
		{name: "nanoseconds", input: `1000`, want: time.Microsecond},
		{name: "bad string", input: `"later"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(Duration(30 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"30s"`, string(out))
}

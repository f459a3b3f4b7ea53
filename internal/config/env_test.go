// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	t.Setenv("CONFIG", "/path/to/config.json")
	t.Setenv("ADAPTER_HUB_URL", "https://hub.example/discountHub")
	t.Setenv("ADAPTER_HANDSHAKE_TIMEOUT", "15s")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "1h30m")
	t.Setenv("ADAPTER_SKIP_PROBE", "true")
	t.Setenv("LOGGER_FILE", "/tmp/logs")
	t.Setenv("LOGGER_LEVEL", "info")

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "https://hub.example/discountHub", cfg.Adapter.HubURL)
	assert.Equal(t, 15*time.Second, cfg.Adapter.HandshakeTimeout)
	assert.Equal(t, 90*time.Minute, cfg.Adapter.RequestTimeout)
	assert.True(t, cfg.Adapter.SkipProbe)
	assert.Equal(t, "/tmp/logs", cfg.Logger.File)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestParseEnv_InvalidBool(t *testing.T) {
	t.Setenv("ADAPTER_SKIP_PROBE", "sometimes")

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "0s")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	set := envOverrides(cfg)

	require.NotNil(t, set.requestTimeout)
	assert.Zero(t, *set.requestTimeout)
	assert.Nil(t, set.skipProbe)
}

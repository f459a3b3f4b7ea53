// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// DefaultHubURL is the discount hub the client connects to when no address
// is configured.
const DefaultHubURL = "https://discountcode-be.onrender.com/discountHub"

// StructuredConfig is the top-level configuration container. It is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the hub connection settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Logger holds the log file destination and level.
	Logger Logger `envPrefix:"LOGGER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds the settings of the hub transport.
type Adapter struct {
	// HubURL is the absolute http(s) address of the hub endpoint
	// (e.g. "https://example.com/discountHub").
	// Env: ADAPTER_HUB_URL
	HubURL string `env:"HUB_URL"`

	// HandshakeTimeout bounds the negotiation probe and the initial
	// connection handshake (e.g. "30s").
	// Env: ADAPTER_HANDSHAKE_TIMEOUT
	HandshakeTimeout time.Duration `env:"HANDSHAKE_TIMEOUT"`

	// RequestTimeout bounds a single remote call including the wait for its
	// pushed result. Zero means calls wait indefinitely.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// SkipProbe disables the negotiation probe sent before connecting.
	// Env: ADAPTER_SKIP_PROBE
	SkipProbe bool `env:"SKIP_PROBE"`
}

// Logger holds the client log settings. Logs never go to stdout because the
// terminal belongs to the menu.
type Logger struct {
	// File is the path of the JSON log file. Empty means a "logs" file next
	// to the executable.
	// Env: LOGGER_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: LOGGER_LEVEL
	Level string `env:"LEVEL"`
}

// Defaults returns the values used for every field left empty by all
// configuration sources.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			HubURL:           DefaultHubURL,
			HandshakeTimeout: 30 * time.Second,
		},
		Logger: Logger{
			Level: "debug",
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields, and for the request timeout and skip-probe settings
// whenever a source sets them):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

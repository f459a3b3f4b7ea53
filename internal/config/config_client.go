// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds the hub transport settings used by the client.
type ClientAdapter struct {
	// HubURL is the absolute hub endpoint address.
	HubURL string
	// HandshakeTimeout bounds the negotiation probe and the first handshake.
	HandshakeTimeout time.Duration
	// RequestTimeout bounds a single remote call; zero waits indefinitely.
	RequestTimeout time.Duration
	// SkipProbe disables the negotiation probe.
	SkipProbe bool
}

// ClientLogger holds the client log settings.
type ClientLogger struct {
	// File is the log file path; empty means "logs" next to the executable.
	File string
	// Level is a zerolog level name.
	Level string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains hub transport settings.
	Adapter ClientAdapter
	// Logger contains log file settings.
	Logger ClientLogger
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HubURL:           cfg.Adapter.HubURL,
			HandshakeTimeout: cfg.Adapter.HandshakeTimeout,
			RequestTimeout:   cfg.Adapter.RequestTimeout,
			SkipProbe:        cfg.Adapter.SkipProbe,
		},
		Logger: ClientLogger{
			File:  cfg.Logger.File,
			Level: cfg.Logger.Level,
		},
	}

	return clientCfg, clientCfg.validate()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if err := validateHubURL(cfg.Adapter.HubURL); err != nil {
		return err
	}
	if cfg.Adapter.HandshakeTimeout < 0 || cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: timeouts must not be negative", ErrInvalidAdapterConfigs)
	}
	if _, err := zerolog.ParseLevel(cfg.Logger.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLoggerConfigs, err)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if err := validateHubURL(cfg.Adapter.HubURL); err != nil {
		return err
	}
	if cfg.Adapter.HandshakeTimeout <= 0 || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}
	if _, err := zerolog.ParseLevel(cfg.Logger.Level); err != nil {
		return ErrInvalidLoggerConfigs
	}

	return nil
}

func validateHubURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidHubURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: scheme must be http or https", ErrInvalidHubURL)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: host is empty", ErrInvalidHubURL)
	}

	return nil
}

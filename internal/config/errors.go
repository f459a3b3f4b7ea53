// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidHubURL indicates a hub address that is not an absolute
	// http(s) URL.
	ErrInvalidHubURL = errors.New("invalid hub url")
	// ErrInvalidAdapterConfigs indicates invalid hub transport settings
	// (for example, a negative timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidLoggerConfigs indicates a log level zerolog cannot parse.
	ErrInvalidLoggerConfigs = errors.New("invalid logger configuration")
)

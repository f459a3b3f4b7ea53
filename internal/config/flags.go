// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses args (normally os.Args[1:]) into a [StructuredConfig].
// The returned overrides carry -request-timeout and -skip-probe when they
// appear in args, even with their zero values.
//
// Flags:
//
//	-hub hub endpoint URL
//	-handshake-timeout initial connection timeout (e.g., "30s")
//	-request-timeout single call timeout, 0 waits forever (e.g., "1m")
//	-skip-probe do not send the negotiation probe before connecting
//	-log-file log file path
//	-log-level log level (debug, info, warn, error)
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, adapterOverrides, error) {
	var hubURL string
	var handshakeTimeout time.Duration
	var requestTimeout time.Duration
	var skipProbe bool
	var logFile string
	var logLevel string
	var jsonConfigPath string

	fs := flag.NewFlagSet("discount-client", flag.ContinueOnError)
	fs.StringVar(&hubURL, "hub", "", "Hub endpoint URL")
	fs.DurationVar(&handshakeTimeout, "handshake-timeout", 0, "Initial connection timeout (e.g., 30s)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout, 0 waits forever (e.g., 1m)")
	fs.BoolVar(&skipProbe, "skip-probe", false, "Skip the negotiation probe")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, adapterOverrides{}, fmt.Errorf("error parsing flags: %w", err)
	}

	var set adapterOverrides
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "request-timeout":
			set.requestTimeout = &requestTimeout
		case "skip-probe":
			set.skipProbe = &skipProbe
		}
	})

	return &StructuredConfig{
		Adapter: Adapter{
			HubURL:           hubURL,
			HandshakeTimeout: handshakeTimeout,
			RequestTimeout:   requestTimeout,
			SkipProbe:        skipProbe,
		},
		Logger: Logger{
			File:  logFile,
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}, set, nil
}

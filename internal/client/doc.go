// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It connects to the discount hub, runs the terminal menu next to a
// connection-state worker, and disconnects gracefully when the menu exits.
package client

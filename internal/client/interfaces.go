// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-discount-client/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive front end driven by the app.
type UI interface {
	// MainLoop blocks until the user exits or ctx is cancelled. states
	// carries connection state changes for display.
	MainLoop(ctx context.Context, states <-chan models.ConnectionState) error
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the command handlers of the discount client.
//
// Handlers validate user input, issue one remote call through the
// [adapter.ServerAdapter] and turn the outcome into the text shown under
// "Last Result:". Errors never escape a handler: they are rendered as
// "Error calling <Operation>: <message>" so that the menu loop keeps running.
package service

import (
	"context"

	"github.com/MKhiriev/go-discount-client/models"
)

// DiscountService defines the five menu commands. Every method returns the
// user-facing result text and never fails.
type DiscountService interface {
	// Ping invokes the hub's Ping and returns "Ping Response: <reply>".
	Ping(ctx context.Context) string

	// GenerateCodes validates the raw count and length inputs (count first),
	// asks the hub to generate codes and waits for the pushed result.
	GenerateCodes(ctx context.Context, countInput, lengthInput string) string

	// UseCode validates the raw code input, asks the hub to redeem it and
	// waits for the pushed result.
	UseCode(ctx context.Context, code string) string

	// GetUsedCodes lists redeemed codes with their redemption time.
	GetUsedCodes(ctx context.Context) string

	// GetUnusedCodes lists available codes with their creation time.
	GetUnusedCodes(ctx context.Context) string
}

// ConnectionService owns the hub connection lifecycle.
type ConnectionService interface {
	// Connect starts the hub connection. ctx bounds the connection lifetime.
	Connect(ctx context.Context) error

	// Disconnect stops the hub connection gracefully.
	Disconnect() error

	// States streams connection state changes until ctx is done.
	States(ctx context.Context) <-chan models.ConnectionState
}

// AppInfoService exposes build metadata to the UI.
type AppInfoService interface {
	// GetBuildInfo returns the build metadata injected at link time.
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

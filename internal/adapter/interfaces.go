// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer that talks to the discount
// hub.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships a SignalR
// implementation ([NewSignalRServerAdapter]) that keeps one persistent
// connection with automatic reconnect, turns hub push notifications into
// results for the request that caused them, and runs an HTTP negotiation
// probe before connecting.
//
// Error values defined in errors.go are mapped from HTTP status codes of the
// probe by mapHTTPError so that callers can use [errors.Is] for
// transport-agnostic error handling.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-discount-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the discount hub.
// Implementations own the connection lifecycle and correlate pushed results
// with the requests that triggered them.
type ServerAdapter interface {
	// Start establishes the hub connection and registers the push listeners.
	// ctx bounds the lifetime of the connection, not only the handshake.
	// Whenever the connection drops, requests still waiting for a pushed
	// result fail with [ErrConnectionLost].
	// Returns an error wrapping [ErrConnectionFailed] if the handshake does
	// not complete.
	Start(ctx context.Context) error

	// Stop closes the connection gracefully. Requests still waiting for a
	// pushed result fail with [ErrConnectionClosed]. Safe to call when not
	// started.
	Stop() error

	// WatchState streams connection state changes, starting with the current
	// state, until ctx is done. The channel is closed afterwards.
	WatchState(ctx context.Context) <-chan models.ConnectionState

	// Ping invokes the hub's Ping operation and returns its reply.
	Ping(ctx context.Context) (string, error)

	// GenerateCodes asks the hub to generate codes and waits for the
	// ReceiveGeneratedCodesResult push that answers the request.
	GenerateCodes(ctx context.Context, req models.GenerateCodesRequest) (bool, error)

	// UseCode asks the hub to redeem a code and waits for the
	// ReceiveCodeUsageResult push that answers the request.
	UseCode(ctx context.Context, req models.UseCodeRequest) (bool, error)

	// GetUsedCodes returns the codes that were already redeemed.
	GetUsedCodes(ctx context.Context) ([]models.DiscountCode, error)

	// GetUnusedCodes returns the codes that are still available.
	GetUnusedCodes(ctx context.Context) ([]models.DiscountCode, error)
}

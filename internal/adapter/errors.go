// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrConnectionFailed = errors.New("hub connection failed")
	ErrAlreadyStarted   = errors.New("hub connection already started")
	ErrNotConnected     = errors.New("hub connection is not started")
	ErrConnectionClosed = errors.New("hub connection closed")
	ErrConnectionLost   = errors.New("hub connection lost")
	ErrRequestTimeout   = errors.New("hub request timed out")
	ErrUnexpectedResult = errors.New("unexpected hub result")

	ErrWebSocketsUnsupported = errors.New("hub does not offer the websockets transport")
	ErrNegotiationRejected   = errors.New("hub rejected negotiation")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrHubNotFound         = errors.New("hub endpoint not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrHubUnavailable      = errors.New("hub unavailable")
)

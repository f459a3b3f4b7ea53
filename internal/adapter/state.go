// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"github.com/philippseith/signalr"

	"github.com/MKhiriev/go-discount-client/models"
)

// stateTracker translates transport states into [models.ConnectionState].
// The transport reports a reconnect attempt as plain "connecting", so a
// connecting state that follows an established connection is reported as
// reconnecting.
type stateTracker struct {
	wasConnected bool
}

func (t *stateTracker) translate(state signalr.ClientState) models.ConnectionState {
	switch state {
	case signalr.ClientConnected:
		t.wasConnected = true
		return models.ConnectionConnected
	case signalr.ClientConnecting:
		if t.wasConnected {
			return models.ConnectionReconnecting
		}
		return models.ConnectionConnecting
	default:
		return models.ConnectionDisconnected
	}
}

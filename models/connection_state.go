// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ConnectionState describes the lifecycle of the hub connection as shown to
// the user.
type ConnectionState int

const (
	// ConnectionDisconnected means no connection exists (before start or
	// after stop).
	ConnectionDisconnected ConnectionState = iota
	// ConnectionConnecting means the first handshake is in progress.
	ConnectionConnecting
	// ConnectionConnected means the hub is reachable and calls can be made.
	ConnectionConnected
	// ConnectionReconnecting means an established connection was lost and the
	// transport is re-establishing it.
	ConnectionReconnecting
)

func (s ConnectionState) String() string {
	switch s {
	case ConnectionConnecting:
		return "connecting"
	case ConnectionConnected:
		return "connected"
	case ConnectionReconnecting:
		return "reconnecting"
	default:
		return "disconnected"
	}
}

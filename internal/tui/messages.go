// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-discount-client/models"
)

// resultMsg carries the text produced by a command handler.
type resultMsg struct {
	text string
}

type connectionStateMsg struct {
	state models.ConnectionState
}

type stateStreamClosedMsg struct{}

// waitForState blocks on the next connection state. The model re-issues it
// after every state so the channel is read one value at a time.
func waitForState(states <-chan models.ConnectionState) tea.Cmd {
	if states == nil {
		return nil
	}
	return func() tea.Msg {
		state, ok := <-states
		if !ok {
			return stateStreamClosedMsg{}
		}
		return connectionStateMsg{state: state}
	}
}

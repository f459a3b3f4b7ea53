// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-discount-client/models"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	statusStyle = lipgloss.NewStyle().Italic(true)

	connectedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	transitionalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	disconnectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

func connectionStyle(state models.ConnectionState) lipgloss.Style {
	switch state {
	case models.ConnectionConnected:
		return connectedStyle
	case models.ConnectionConnecting, models.ConnectionReconnecting:
		return transitionalStyle
	default:
		return disconnectedStyle
	}
}

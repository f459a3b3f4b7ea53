// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive menu of the discount client on top
// of bubbletea.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-discount-client/internal/logger"
	"github.com/MKhiriev/go-discount-client/internal/service"
	"github.com/MKhiriev/go-discount-client/models"
)

type TUI struct {
	services *service.ClientServices

	logger *logger.Logger
}

func New(services *service.ClientServices, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.DiscountService == nil {
		return nil, ErrNoServices
	}
	return &TUI{services: services, logger: logger}, nil
}

// MainLoop runs the menu until the user exits or ctx is cancelled. states
// feeds the connection state line and may be nil.
func (t *TUI) MainLoop(ctx context.Context, states <-chan models.ConnectionState) error {
	model := newMenuModel(ctx, t.services, states)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			t.logger.Info().Msg("menu stopped by context")
			return nil
		}
		t.logger.Err(err).Msg("menu stopped with error")
		return err
	}

	t.logger.Info().Msg("menu exited by user")
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	appmsg "github.com/MKhiriev/go-discount-client/internal/app"
	"github.com/MKhiriev/go-discount-client/internal/logger"
	"github.com/MKhiriev/go-discount-client/internal/service"
	"github.com/MKhiriev/go-discount-client/internal/workers"
	"github.com/MKhiriev/go-discount-client/models"
)

var ErrNoConnectionService = errors.New("client: connection service is required")

type App struct {
	services *service.ClientServices
	ui       UI
	out      io.Writer

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || services.ConnectionService == nil {
		return nil, ErrNoConnectionService
	}

	return &App{
		services: services,
		ui:       ui,
		out:      os.Stdout,
		logger:   logger,
	}, nil
}

// Run connects to the hub and runs the menu until the user exits. A failed
// connection is reported to the user and ends the run before the menu is
// shown.
func (a *App) Run(ctx context.Context) error {
	if err := a.services.ConnectionService.Connect(ctx); err != nil {
		fmt.Fprintf(a.out, appmsg.MsgConnectErrorFormat+"\n", err.Error())
		return nil
	}
	fmt.Fprintln(a.out, appmsg.MsgConnected)

	states := make(chan models.ConnectionState, 4)
	ws := workers.NewWorkers(
		workers.WorkerFunc(func(ctx context.Context) error {
			return a.ui.MainLoop(ctx, states)
		}),
		workers.NewStateRelay(a.services.ConnectionService.States, states, a.logger),
	)

	runErr := ws.Run(ctx)
	if runErr != nil {
		a.logger.Err(runErr).Msg("client workers stopped with error")
	}

	fmt.Fprintln(a.out, appmsg.MsgExiting)
	if err := a.services.ConnectionService.Disconnect(); err != nil {
		a.logger.Err(err).Msg("error disconnecting from hub")
	}

	return runErr
}

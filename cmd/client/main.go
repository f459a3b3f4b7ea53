// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-discount-client/internal/adapter"
	"github.com/MKhiriev/go-discount-client/internal/client"
	"github.com/MKhiriev/go-discount-client/internal/config"
	"github.com/MKhiriev/go-discount-client/internal/logger"
	"github.com/MKhiriev/go-discount-client/internal/service"
	"github.com/MKhiriev/go-discount-client/internal/tui"
	"github.com/MKhiriev/go-discount-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("go-discount-client", cfg.Logger.File, cfg.Logger.Level)
	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("hub_url", cfg.Adapter.HubURL).
		Msg("client starting")

	serverAdapter, err := adapter.NewSignalRServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create hub adapter")
	}

	services := service.NewClientServices(serverAdapter, buildInfo, log)

	ui, err := tui.New(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		stop()
		os.Exit(1)
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}

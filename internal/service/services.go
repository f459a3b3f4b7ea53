// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-discount-client/internal/adapter"
	"github.com/MKhiriev/go-discount-client/internal/logger"
	"github.com/MKhiriev/go-discount-client/models"
)

// ClientServices groups the services used by the terminal UI and the app
// runtime.
type ClientServices struct {
	DiscountService   DiscountService
	ConnectionService ConnectionService
	AppInfoService    AppInfoService
}

// NewClientServices wires every client service on top of serverAdapter.
func NewClientServices(serverAdapter adapter.ServerAdapter, buildInfo models.AppBuildInfo, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		DiscountService:   NewDiscountService(serverAdapter, logger),
		ConnectionService: NewConnectionService(serverAdapter, logger),
		AppInfoService:    NewAppInfoService(buildInfo, logger),
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-discount-client/internal/adapter"
	"github.com/MKhiriev/go-discount-client/internal/logger"
	"github.com/MKhiriev/go-discount-client/models"
)

type connectionService struct {
	serverAdapter adapter.ServerAdapter

	logger *logger.Logger
}

func NewConnectionService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ConnectionService {
	return &connectionService{
		serverAdapter: serverAdapter,
		logger:        logger,
	}
}

func (s *connectionService) Connect(ctx context.Context) error {
	if err := s.serverAdapter.Start(ctx); err != nil {
		s.logger.Err(err).Msg("error connecting to hub")
		return err
	}
	return nil
}

func (s *connectionService) Disconnect() error {
	if err := s.serverAdapter.Stop(); err != nil {
		s.logger.Err(err).Msg("error stopping hub connection")
		return err
	}
	return nil
}

func (s *connectionService) States(ctx context.Context) <-chan models.ConnectionState {
	return s.serverAdapter.WatchState(ctx)
}

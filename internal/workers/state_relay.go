// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/go-discount-client/internal/logger"
	"github.com/MKhiriev/go-discount-client/models"
)

// StateSource opens a stream of connection states bound to ctx.
type StateSource func(ctx context.Context) <-chan models.ConnectionState

// StateRelay logs connection state transitions and forwards them to sink.
type StateRelay struct {
	source StateSource
	sink   chan<- models.ConnectionState

	logger *logger.Logger
}

func NewStateRelay(source StateSource, sink chan<- models.ConnectionState, logger *logger.Logger) *StateRelay {
	return &StateRelay{
		source: source,
		sink:   sink,
		logger: logger,
	}
}

// Run relays states until the source is closed or ctx is done.
func (r *StateRelay) Run(ctx context.Context) error {
	previous := models.ConnectionState(-1)

	states := r.source(ctx)
	for {
		var state models.ConnectionState
		select {
		case <-ctx.Done():
			return nil
		case s, ok := <-states:
			if !ok {
				return nil
			}
			state = s
		}

		if state == previous {
			continue
		}

		event := r.logger.Info()
		if state == models.ConnectionReconnecting || state == models.ConnectionDisconnected {
			event = r.logger.Warn()
		}
		event.Str("from", previous.String()).Str("to", state.String()).Msg("hub connection state changed")
		previous = state

		select {
		case r.sink <- state:
		case <-ctx.Done():
			return nil
		}
	}
}

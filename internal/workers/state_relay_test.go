// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-discount-client/internal/logger"
	"github.com/MKhiriev/go-discount-client/models"
)

func sourceOf(states ...models.ConnectionState) StateSource {
	return func(context.Context) <-chan models.ConnectionState {
		ch := make(chan models.ConnectionState, len(states))
		for _, s := range states {
			ch <- s
		}
		close(ch)
		return ch
	}
}

func TestStateRelay_ForwardsDistinctStates(t *testing.T) {
	sink := make(chan models.ConnectionState, 10)
	relay := NewStateRelay(sourceOf(
		models.ConnectionConnected,
		models.ConnectionConnected,
		models.ConnectionReconnecting,
		models.ConnectionConnected,
	), sink, logger.Nop())

	require.NoError(t, relay.Run(context.Background()))
	close(sink)

	var got []models.ConnectionState
	for s := range sink {
		got = append(got, s)
	}
	assert.Equal(t, []models.ConnectionState{
		models.ConnectionConnected,
		models.ConnectionReconnecting,
		models.ConnectionConnected,
	}, got)
}

func TestStateRelay_StopsOnCancelWhenSinkIsFull(t *testing.T) {
	sink := make(chan models.ConnectionState)
	relay := NewStateRelay(sourceOf(models.ConnectionConnected), sink, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- relay.Run(ctx) }()
	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("relay did not stop")
	}
}

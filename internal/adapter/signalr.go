// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/philippseith/signalr"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-discount-client/internal/config"
	"github.com/MKhiriev/go-discount-client/internal/logger"
	"github.com/MKhiriev/go-discount-client/internal/utils"
	"github.com/MKhiriev/go-discount-client/internal/waiter"
	"github.com/MKhiriev/go-discount-client/models"
)

// Hub operation names.
const (
	methodPing           = "Ping"
	methodGenerateCodes  = "GenerateCodes"
	methodUseCode        = "UseCode"
	methodGetUsedCodes   = "GetUsedCodes"
	methodGetUnusedCodes = "GetUnusedCodes"
)

// hubClient is the subset of signalr.Client the adapter relies on.
type hubClient interface {
	Start()
	Stop()
	State() signalr.ClientState
	ObserveStateChanged(chan signalr.ClientState) context.CancelFunc
	WaitForState(ctx context.Context, waitFor signalr.ClientState) <-chan error
	Invoke(method string, arguments ...interface{}) <-chan signalr.InvokeResult
}

// dialFunc creates a hub client bound to ctx that delivers push
// notifications to receiver. The client is not started yet.
type dialFunc func(ctx context.Context, receiver *pushReceiver) (hubClient, error)

type signalrServerAdapter struct {
	hubURL           string
	handshakeTimeout time.Duration
	requestTimeout   time.Duration

	probe    *negotiateProbe
	dial     dialFunc
	receiver *pushReceiver

	mu     sync.Mutex
	client hubClient
	// closing is done once Stop begins; endWatch stops the connection
	// watcher and waits for it.
	closing  context.Context
	endWatch func()

	logger *logger.Logger
}

// NewSignalRServerAdapter creates a [ServerAdapter] backed by a SignalR hub
// connection with automatic reconnect. The negotiation probe runs before the
// connection unless cfg.SkipProbe is set.
func NewSignalRServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	a := newSignalRServerAdapter(cfg, logger, nil)
	a.dial = a.dialSignalR

	if !cfg.SkipProbe {
		probe, err := newNegotiateProbe(cfg.HubURL, cfg.HandshakeTimeout, logger)
		if err != nil {
			return nil, err
		}
		a.probe = probe
	}

	return a, nil
}

func newSignalRServerAdapter(cfg config.ClientAdapter, logger *logger.Logger, dial dialFunc) *signalrServerAdapter {
	return &signalrServerAdapter{
		hubURL:           cfg.HubURL,
		handshakeTimeout: cfg.HandshakeTimeout,
		requestTimeout:   cfg.RequestTimeout,
		dial:             dial,
		receiver:         newPushReceiver(logger),
		logger:           logger,
	}
}

func (a *signalrServerAdapter) dialSignalR(ctx context.Context, receiver *pushReceiver) (hubClient, error) {
	hubURL := a.hubURL
	timeout := a.handshakeTimeout

	return signalr.NewClient(ctx,
		signalr.WithConnector(func() (signalr.Connection, error) {
			creationCtx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()
			return signalr.NewHTTPConnection(creationCtx, hubURL)
		}),
		signalr.WithReceiver(receiver),
		signalr.Logger(a.logger.HubLogger(), zerolog.GlobalLevel() <= zerolog.DebugLevel),
	)
}

func (a *signalrServerAdapter) Start(ctx context.Context) error {
	a.mu.Lock()
	started := a.client != nil
	a.mu.Unlock()
	if started {
		return ErrAlreadyStarted
	}

	a.logger.Info().Str("hub_url", a.hubURL).Msg("connecting to hub")

	if a.probe != nil {
		probeCtx, cancel := context.WithTimeout(ctx, a.handshakeTimeout)
		_, err := a.probe.Negotiate(probeCtx)
		cancel()
		if err != nil {
			a.logger.Err(err).Str("hub_url", a.hubURL).Msg("hub negotiation probe failed")
			return fmt.Errorf("%w: %w", ErrConnectionFailed, err)
		}
	}

	client, err := a.dial(ctx, a.receiver)
	if err != nil {
		a.logger.Err(err).Msg("error creating hub client")
		return fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}

	client.Start()

	waitCtx, cancel := context.WithTimeout(ctx, a.handshakeTimeout)
	defer cancel()
	if err = <-client.WaitForState(waitCtx, signalr.ClientConnected); err != nil {
		client.Stop()
		a.logger.Err(err).Str("hub_url", a.hubURL).Msg("hub handshake did not complete")
		return fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}

	closing, cancelWatch := context.WithCancel(context.Background())
	raw := make(chan signalr.ClientState, 8)
	cancelObserve := client.ObserveStateChanged(raw)
	watchDone := make(chan struct{})
	go a.watchConnection(closing, raw, watchDone)

	a.mu.Lock()
	a.client = client
	a.closing = closing
	a.endWatch = func() {
		cancelObserve()
		cancelWatch()
		<-watchDone
	}
	a.mu.Unlock()

	a.logger.Info().Str("hub_url", a.hubURL).Msg("connected to hub")
	return nil
}

// watchConnection fails every request still waiting for a pushed result
// whenever the connection drops. Pushes are addressed to a single
// connection, so the answers of those requests can never arrive after a
// reconnect.
func (a *signalrServerAdapter) watchConnection(ctx context.Context, states <-chan signalr.ClientState, done chan<- struct{}) {
	defer close(done)

	for {
		select {
		case <-ctx.Done():
			return
		case state, ok := <-states:
			if !ok {
				return
			}
			if state == signalr.ClientConnected {
				continue
			}
			if failed := a.receiver.failAll(ErrConnectionLost); failed > 0 {
				a.logger.Warn().
					Int("abandoned_requests", failed).
					Int("state", int(state)).
					Msg("hub connection lost, pending results dropped")
			}
		}
	}
}

func (a *signalrServerAdapter) Stop() error {
	a.mu.Lock()
	client := a.client
	endWatch := a.endWatch
	a.client = nil
	a.closing = nil
	a.endWatch = nil
	a.mu.Unlock()

	if client == nil {
		return nil
	}

	endWatch()
	client.Stop()
	failed := a.receiver.failAll(ErrConnectionClosed)

	a.logger.Info().Int("abandoned_requests", failed).Msg("hub connection stopped")
	return nil
}

func (a *signalrServerAdapter) WatchState(ctx context.Context) <-chan models.ConnectionState {
	out := make(chan models.ConnectionState, 1)

	client, err := a.connectedClient()
	if err != nil {
		out <- models.ConnectionDisconnected
		close(out)
		return out
	}

	raw := make(chan signalr.ClientState, 8)
	cancelObserve := client.ObserveStateChanged(raw)

	go func() {
		defer close(out)
		defer cancelObserve()

		tracker := &stateTracker{}
		emit := func(state models.ConnectionState) bool {
			select {
			case out <- state:
				return true
			case <-ctx.Done():
				return false
			}
		}

		if !emit(tracker.translate(client.State())) {
			return
		}
		for {
			select {
			case <-ctx.Done():
				return
			case state, ok := <-raw:
				if !ok {
					return
				}
				if !emit(tracker.translate(state)) {
					return
				}
			}
		}
	}()

	return out
}

func (a *signalrServerAdapter) Ping(ctx context.Context) (string, error) {
	ctx, cancel := a.withRequestTimeout(ctx)
	defer cancel()

	var pong string
	if err := a.invoke(ctx, methodPing, &pong); err != nil {
		return "", err
	}
	return pong, nil
}

func (a *signalrServerAdapter) GenerateCodes(ctx context.Context, req models.GenerateCodesRequest) (bool, error) {
	ctx, cancel := a.withRequestTimeout(ctx)
	defer cancel()

	return a.invokeForPush(ctx, a.receiver.generated, methodGenerateCodes, req.Count, req.Length)
}

func (a *signalrServerAdapter) UseCode(ctx context.Context, req models.UseCodeRequest) (bool, error) {
	ctx, cancel := a.withRequestTimeout(ctx)
	defer cancel()

	return a.invokeForPush(ctx, a.receiver.usage, methodUseCode, req.Code)
}

func (a *signalrServerAdapter) GetUsedCodes(ctx context.Context) ([]models.DiscountCode, error) {
	return a.listCodes(ctx, methodGetUsedCodes)
}

func (a *signalrServerAdapter) GetUnusedCodes(ctx context.Context) ([]models.DiscountCode, error) {
	return a.listCodes(ctx, methodGetUnusedCodes)
}

func (a *signalrServerAdapter) listCodes(ctx context.Context, method string) ([]models.DiscountCode, error) {
	ctx, cancel := a.withRequestTimeout(ctx)
	defer cancel()

	var codes []models.DiscountCode
	if err := a.invoke(ctx, method, &codes); err != nil {
		return nil, err
	}
	return codes, nil
}

// invokeForPush arms a waiter before invoking method so that a push arriving
// ahead of the invocation completion is not lost, then waits for the pushed
// result.
func (a *signalrServerAdapter) invokeForPush(ctx context.Context, queue *waiter.Queue[bool], method string, args ...any) (bool, error) {
	slot := queue.Arm()

	pending, err := a.call(ctx, method, nil, args...)
	if err != nil {
		if pending != nil {
			a.releaseOnFailure(ctx, slot, pending, method)
		} else {
			slot.Cancel()
		}
		return false, err
	}

	result, err := slot.Wait(ctx)
	if err != nil {
		// on timeout the invocation had succeeded, so its push is still owed
		// and the slot stays queued to absorb it
		a.requestLogger(ctx, method).Err(err).Msg("no pushed result received")
		return false, a.mapContextError(err)
	}
	return result, nil
}

// releaseOnFailure keeps following an invocation its caller gave up on. The
// hub pushes nothing for an invocation that ends in an error, so its slot is
// removed then; a successful completion leaves the slot queued for the push
// that follows.
func (a *signalrServerAdapter) releaseOnFailure(ctx context.Context, slot *waiter.Slot[bool], pending <-chan signalr.InvokeResult, method string) {
	log := a.requestLogger(ctx, method)

	a.mu.Lock()
	closing := a.closing
	a.mu.Unlock()
	if closing == nil {
		slot.Cancel()
		return
	}

	go func() {
		select {
		case res, ok := <-pending:
			if ok && res.Error == nil {
				return
			}
			if slot.Cancel() {
				log.Debug().Err(res.Error).Msg("abandoned hub method failed, waiter released")
			}
		case <-closing.Done():
		}
	}()
}

func (a *signalrServerAdapter) invoke(ctx context.Context, method string, dst any, args ...any) error {
	_, err := a.call(ctx, method, dst, args...)
	return err
}

// call invokes method and decodes its result into dst. When ctx ends before
// the invocation completes, the invocation's result channel is returned along
// with the error.
func (a *signalrServerAdapter) call(ctx context.Context, method string, dst any, args ...any) (<-chan signalr.InvokeResult, error) {
	client, err := a.connectedClient()
	if err != nil {
		return nil, err
	}

	log := a.requestLogger(ctx, method)
	started := time.Now()
	log.Debug().Interface("args", args).Msg("invoking hub method")

	pending := client.Invoke(method, args...)
	select {
	case res := <-pending:
		if res.Error != nil {
			log.Err(res.Error).Dur("elapsed", time.Since(started)).Msg("hub method failed")
			return nil, res.Error
		}
		if dst != nil {
			if err = decodeResult(res.Value, dst); err != nil {
				log.Err(err).Msg("error decoding hub result")
				return nil, fmt.Errorf("%w: %w", ErrUnexpectedResult, err)
			}
		}
		log.Debug().Dur("elapsed", time.Since(started)).Msg("hub method completed")
		return nil, nil
	case <-ctx.Done():
		log.Warn().Err(ctx.Err()).Dur("elapsed", time.Since(started)).Msg("hub method abandoned")
		return pending, a.mapContextError(ctx.Err())
	}
}

func (a *signalrServerAdapter) connectedClient() (hubClient, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.client == nil {
		return nil, ErrNotConnected
	}
	return a.client, nil
}

func (a *signalrServerAdapter) withRequestTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.requestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.requestTimeout)
}

func (a *signalrServerAdapter) mapContextError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrRequestTimeout, err)
	}
	return err
}

func (a *signalrServerAdapter) requestLogger(ctx context.Context, method string) *zerolog.Logger {
	requestID, _ := utils.GetRequestIDFromContext(ctx)
	l := a.logger.With().
		Str("method", method).
		Str("request_id", requestID).
		Logger()
	return &l
}

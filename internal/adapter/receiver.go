// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"github.com/MKhiriev/go-discount-client/internal/logger"
	"github.com/MKhiriev/go-discount-client/internal/waiter"
)

// Hub push notification names.
const (
	PushGeneratedCodesResult = "ReceiveGeneratedCodesResult"
	PushCodeUsageResult      = "ReceiveCodeUsageResult"
)

// pushReceiver is registered with the hub client. Its exported methods are
// matched by name against incoming push notifications, so they must keep the
// hub's target names.
type pushReceiver struct {
	generated *waiter.Queue[bool]
	usage     *waiter.Queue[bool]

	logger *logger.Logger
}

func newPushReceiver(logger *logger.Logger) *pushReceiver {
	return &pushReceiver{
		generated: &waiter.Queue[bool]{},
		usage:     &waiter.Queue[bool]{},
		logger:    logger,
	}
}

// ReceiveGeneratedCodesResult handles the hub's answer to GenerateCodes.
func (r *pushReceiver) ReceiveGeneratedCodesResult(result bool) {
	r.deliver(r.generated, PushGeneratedCodesResult, result)
}

// ReceiveCodeUsageResult handles the hub's answer to UseCode.
func (r *pushReceiver) ReceiveCodeUsageResult(result bool) {
	r.deliver(r.usage, PushCodeUsageResult, result)
}

func (r *pushReceiver) deliver(queue *waiter.Queue[bool], target string, result bool) {
	if !queue.Resolve(result) {
		r.logger.Warn().
			Str("target", target).
			Bool("result", result).
			Msg("dropping push notification without a pending request")
		return
	}

	r.logger.Debug().
		Str("target", target).
		Bool("result", result).
		Msg("push notification delivered")
}

// failAll fails every pending waiter of both kinds and returns how many were
// failed.
func (r *pushReceiver) failAll(err error) int {
	return r.generated.Fail(err) + r.usage.Fail(err)
}

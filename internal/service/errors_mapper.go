// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-discount-client/internal/adapter"
	"github.com/MKhiriev/go-discount-client/internal/app"
	"github.com/MKhiriev/go-discount-client/internal/validators"
)

// validationMessage translates a validator error into its menu message.
func validationMessage(err error) string {
	switch {
	case errors.Is(err, validators.ErrInvalidCount):
		return app.MsgInvalidCount
	case errors.Is(err, validators.ErrInvalidLength):
		return app.MsgInvalidLength
	case errors.Is(err, validators.ErrInvalidCode):
		return app.MsgInvalidCode
	default:
		return err.Error()
	}
}

// errorText returns the message shown after "Error calling <Operation>: ".
// Transport sentinels that carry no detail get a readable wording; hub errors
// are passed through as sent.
func errorText(err error) string {
	switch {
	case errors.Is(err, adapter.ErrNotConnected):
		return "not connected to hub"
	case errors.Is(err, adapter.ErrConnectionClosed):
		return "connection to hub was closed"
	case errors.Is(err, adapter.ErrConnectionLost):
		return "connection to hub was lost"
	case errors.Is(err, adapter.ErrRequestTimeout):
		return "no response from hub in time"
	default:
		return err.Error()
	}
}

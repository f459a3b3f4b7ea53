// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

// Validation errors returned before any request reaches the hub.
var (
	// ErrInvalidCount indicates a code count that is not an integer in
	// [MinCount, MaxCount].
	ErrInvalidCount = errors.New("invalid count")
	// ErrInvalidLength indicates a code length other than 7 or 8.
	ErrInvalidLength = errors.New("invalid length")
	// ErrInvalidCode indicates a blank code or one that is not 7 or 8
	// characters long.
	ErrInvalidCode = errors.New("invalid code")
)

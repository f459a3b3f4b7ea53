// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared by the adapter and service
// layers: request identifiers, typed context keys and the HTTP client used
// for hub negotiation.
package utils

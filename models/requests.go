// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// GenerateCodesRequest asks the hub to generate Count new codes of Length
// characters each. Values are validated before the request is built.
type GenerateCodesRequest struct {
	Count  uint16
	Length uint8
}

// UseCodeRequest asks the hub to redeem Code.
type UseCodeRequest struct {
	Code string
}

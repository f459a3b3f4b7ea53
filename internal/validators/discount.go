// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators turns raw console input into validated hub requests.
//
// Validation is limited to the checks the client can make on its own (count
// range, code length); the hub stays the owner of code correctness.
package validators

import (
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/MKhiriev/go-discount-client/models"
)

const (
	// MinCount and MaxCount bound how many codes one request may generate.
	MinCount = 1
	MaxCount = 2000

	// ShortCodeLength and LongCodeLength are the only code lengths the hub
	// supports.
	ShortCodeLength = 7
	LongCodeLength  = 8
)

// ParseGenerateCodes validates the count and length typed by the user.
// Surrounding whitespace is ignored. The count is checked first.
func ParseGenerateCodes(countInput, lengthInput string) (models.GenerateCodesRequest, error) {
	count, err := strconv.Atoi(strings.TrimSpace(countInput))
	if err != nil || count < MinCount || count > MaxCount {
		return models.GenerateCodesRequest{}, ErrInvalidCount
	}

	length, err := strconv.Atoi(strings.TrimSpace(lengthInput))
	if err != nil || !isSupportedLength(length) {
		return models.GenerateCodesRequest{}, ErrInvalidLength
	}

	return models.GenerateCodesRequest{
		Count:  uint16(count),
		Length: uint8(length),
	}, nil
}

// ParseUseCode validates a code to redeem. The code is sent as typed: it is
// not trimmed, only a blank code is rejected outright.
func ParseUseCode(code string) (models.UseCodeRequest, error) {
	if strings.TrimSpace(code) == "" {
		return models.UseCodeRequest{}, ErrInvalidCode
	}
	if !isSupportedLength(utf16Len(code)) {
		return models.UseCodeRequest{}, ErrInvalidCode
	}

	return models.UseCodeRequest{Code: code}, nil
}

// utf16Len counts code in UTF-16 code units, the unit the hub measures codes
// in. Characters outside the Basic Multilingual Plane count twice.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

func isSupportedLength(n int) bool {
	return n == ShortCodeLength || n == LongCodeLength
}

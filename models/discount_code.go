// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// DiscountCode is a discount code record as returned by the hub.
//
// The client never creates or mutates codes; the hub owns their lifecycle and
// correctness. Values only live for the duration of a single listing.
type DiscountCode struct {
	// Code is the 7 or 8 character token itself.
	Code string `json:"code"`
	// IsUsed reports whether the code has already been redeemed.
	IsUsed bool `json:"isUsed"`
	// UsedAt is the redemption time, nil while the code is unused.
	UsedAt *Timestamp `json:"usedAt"`
	// CreatedAt is the generation time.
	CreatedAt Timestamp `json:"createdAt"`
	// DiscountPercentage is the discount granted by the code, e.g. 10 for 10%.
	DiscountPercentage int `json:"discountPercentage"`
}

// timestampLayouts are tried in order when decoding hub timestamps.
// The hub serializes .NET DateTime values, which may come with or without
// a zone designator and with up to seven fractional digits.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.9999999",
	"2006-01-02T15:04:05",
	time.DateTime,
	time.DateOnly,
}

// Timestamp is a hub timestamp that remembers its wire representation.
//
// Listings print timestamps exactly as the hub sent them, so a value that
// cannot be parsed is still kept (with a zero Time) instead of failing the
// whole response.
type Timestamp struct {
	time.Time
	raw string
}

// NewTimestamp builds a Timestamp from a parsed time. Its String form is
// RFC 3339.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// UnmarshalJSON implements [json.Unmarshaler].
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*t = Timestamp{}
		return nil
	}

	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	*t = Timestamp{raw: raw}
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			t.Time = parsed
			break
		}
	}

	return nil
}

// MarshalJSON implements [json.Marshaler]. The raw wire text is written
// back unchanged when present.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.raw != "" {
		return json.Marshal(t.raw)
	}
	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}

// String returns the timestamp as the hub sent it, or RFC 3339 for values
// built locally.
func (t Timestamp) String() string {
	if raw := strings.TrimSpace(t.raw); raw != "" {
		return raw
	}
	if t.Time.IsZero() {
		return ""
	}
	return t.Time.Format(time.RFC3339)
}

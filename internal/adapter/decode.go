// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
)

// decodeResult converts an invocation result into dst. Depending on the hub
// protocol the transport hands results over either as raw JSON or as
// generically decoded values, so both are normalised through JSON. A nil
// result leaves dst untouched.
func decodeResult(value any, dst any) error {
	var raw []byte

	switch v := value.(type) {
	case nil:
		return nil
	case json.RawMessage:
		raw = v
	default:
		var err error
		if raw, err = json.Marshal(v); err != nil {
			return err
		}
	}

	return json.Unmarshal(raw, dst)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// adapterOverrides records the adapter settings a source set explicitly.
// A zero request timeout and a false skip-probe are meaningful values, and
// mergo.WithOverride never copies zero values, so these two settings are
// resolved from the overrides after the merge.
type adapterOverrides struct {
	requestTimeout *time.Duration
	skipProbe      *bool
}

func (o adapterOverrides) apply(dst *Adapter) {
	if o.requestTimeout != nil {
		dst.RequestTimeout = *o.requestTimeout
	}
	if o.skipProbe != nil {
		dst.SkipProbe = *o.skipProbe
	}
}

// envOverrides reports which adapter settings are present in the environment,
// taking their parsed values from cfg.
func envOverrides(cfg *StructuredConfig) adapterOverrides {
	var o adapterOverrides
	if _, ok := os.LookupEnv("ADAPTER_REQUEST_TIMEOUT"); ok {
		o.requestTimeout = &cfg.Adapter.RequestTimeout
	}
	if _, ok := os.LookupEnv("ADAPTER_SKIP_PROBE"); ok {
		o.skipProbe = &cfg.Adapter.SkipProbe
	}
	return o
}

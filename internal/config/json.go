// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Adapter struct {
		HubURL           string    `json:"hub_url"`
		HandshakeTimeout Duration  `json:"handshake_timeout"`
		RequestTimeout   *Duration `json:"request_timeout,omitempty"`
		SkipProbe        *bool     `json:"skip_probe,omitempty"`
	} `json:"adapter,omitempty"`

	Logger struct {
		File  string `json:"file"`
		Level string `json:"level"`
	} `json:"logger,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, adapterOverrides, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, adapterOverrides{}, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, adapterOverrides{}, fmt.Errorf("error decoding json configs: %w", err)
	}

	var set adapterOverrides
	if jsonCfg.Adapter.RequestTimeout != nil {
		requestTimeout := time.Duration(*jsonCfg.Adapter.RequestTimeout)
		set.requestTimeout = &requestTimeout
	}
	set.skipProbe = jsonCfg.Adapter.SkipProbe

	cfg := &StructuredConfig{
		Adapter: Adapter{
			HubURL:           jsonCfg.Adapter.HubURL,
			HandshakeTimeout: time.Duration(jsonCfg.Adapter.HandshakeTimeout),
		},
		Logger: Logger{
			File:  jsonCfg.Logger.File,
			Level: jsonCfg.Logger.Level,
		},
		JSONFilePath: "",
	}
	set.apply(&cfg.Adapter)

	return cfg, set, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

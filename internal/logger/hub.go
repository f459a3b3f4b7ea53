// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// HubLogger adapts *Logger to the key/value logging interface expected by
// the hub transport (`Log(keyVals ...interface{}) error`).
//
// A "level" key selects the zerolog level, "msg"/"message" becomes the log
// message and every other pair is written as a field.
type HubLogger struct {
	logger *Logger
}

// HubLogger returns a transport-facing adapter writing to l with an extra
// "component" field.
func (l *Logger) HubLogger() *HubLogger {
	child := l.With().Str("component", "hub-transport").Logger()
	return &HubLogger{logger: &Logger{child}}
}

// Log implements the transport's structured logger interface.
func (h *HubLogger) Log(keyVals ...interface{}) error {
	level := zerolog.DebugLevel
	msg := ""
	fields := make(map[string]interface{}, len(keyVals)/2)

	for i := 0; i < len(keyVals); i += 2 {
		key := fmt.Sprint(keyVals[i])
		var value interface{} = "(MISSING)"
		if i+1 < len(keyVals) {
			value = keyVals[i+1]
		}

		switch key {
		case "level":
			level = parseHubLevel(fmt.Sprint(value))
		case "msg", "message":
			msg = fmt.Sprint(value)
		default:
			if err, ok := value.(error); ok {
				value = err.Error()
			}
			fields[key] = value
		}
	}

	h.logger.WithLevel(level).Fields(fields).Msg(msg)
	return nil
}

func parseHubLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "error":
		return zerolog.ErrorLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "info":
		return zerolog.InfoLevel
	default:
		return zerolog.DebugLevel
	}
}

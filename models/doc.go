// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the plain data types exchanged between the hub
// adapter, the services and the terminal UI.
package models

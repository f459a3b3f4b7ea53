// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-discount-client/internal/app"
	"github.com/MKhiriev/go-discount-client/models"
)

const (
	usedCodeLineFormat   = "\n- Code: %s, DiscountPercentage: %d%% , UsedAt: %s"
	unusedCodeLineFormat = "\n- Code: %s, DiscountPercentage: %d%% , CreatedAt: %s"
)

func formatUsedCodes(codes []models.DiscountCode) string {
	if len(codes) == 0 {
		return app.MsgNoUsedCodes
	}

	var sb strings.Builder
	sb.WriteString(app.MsgUsedCodesHeader)
	for _, c := range codes {
		usedAt := ""
		if c.UsedAt != nil {
			usedAt = c.UsedAt.String()
		}
		fmt.Fprintf(&sb, usedCodeLineFormat, c.Code, c.DiscountPercentage, usedAt)
	}
	return sb.String()
}

func formatUnusedCodes(codes []models.DiscountCode) string {
	if len(codes) == 0 {
		return app.MsgNoUnusedCodes
	}

	var sb strings.Builder
	sb.WriteString(app.MsgUnusedCodesHeader)
	for _, c := range codes {
		fmt.Fprintf(&sb, unusedCodeLineFormat, c.Code, c.DiscountPercentage, c.CreatedAt.String())
	}
	return sb.String()
}

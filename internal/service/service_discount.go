// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-discount-client/internal/adapter"
	"github.com/MKhiriev/go-discount-client/internal/app"
	"github.com/MKhiriev/go-discount-client/internal/logger"
	"github.com/MKhiriev/go-discount-client/internal/utils"
	"github.com/MKhiriev/go-discount-client/internal/validators"
)

// Operation names used in "Error calling <Operation>" messages.
const (
	opPing           = "Ping"
	opGenerateCodes  = "GenerateCodes"
	opUseCode        = "UseCode"
	opGetUsedCodes   = "GetUsedCodes"
	opGetUnusedCodes = "GetUnusedCodes"
)

type discountService struct {
	serverAdapter adapter.ServerAdapter
	idGenerator   *utils.UUIDGenerator

	logger *logger.Logger
}

func NewDiscountService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) DiscountService {
	return &discountService{
		serverAdapter: serverAdapter,
		idGenerator:   utils.NewUUIDGenerator(),
		logger:        logger,
	}
}

func (s *discountService) Ping(ctx context.Context) string {
	ctx = s.withRequest(ctx, opPing)

	response, err := s.serverAdapter.Ping(ctx)
	if err != nil {
		return s.callError(ctx, opPing, err)
	}

	return fmt.Sprintf(app.MsgPingResponseFormat, response)
}

func (s *discountService) GenerateCodes(ctx context.Context, countInput, lengthInput string) string {
	req, err := validators.ParseGenerateCodes(countInput, lengthInput)
	if err != nil {
		return validationMessage(err)
	}

	ctx = s.withRequest(ctx, opGenerateCodes)

	ok, err := s.serverAdapter.GenerateCodes(ctx, req)
	if err != nil {
		return s.callError(ctx, opGenerateCodes, err)
	}

	logger.FromContext(ctx).Info().
		Uint16("count", req.Count).
		Uint8("length", req.Length).
		Bool("result", ok).
		Msg("codes generation finished")

	if ok {
		return app.MsgCodesGenerated
	}
	return app.MsgCodesNotGenerated
}

func (s *discountService) UseCode(ctx context.Context, code string) string {
	req, err := validators.ParseUseCode(code)
	if err != nil {
		return validationMessage(err)
	}

	ctx = s.withRequest(ctx, opUseCode)

	ok, err := s.serverAdapter.UseCode(ctx, req)
	if err != nil {
		return s.callError(ctx, opUseCode, err)
	}

	logger.FromContext(ctx).Info().Bool("result", ok).Msg("code usage finished")

	if ok {
		return app.MsgCodeUsed
	}
	return app.MsgCodeNotUsed
}

func (s *discountService) GetUsedCodes(ctx context.Context) string {
	ctx = s.withRequest(ctx, opGetUsedCodes)

	codes, err := s.serverAdapter.GetUsedCodes(ctx)
	if err != nil {
		return s.callError(ctx, opGetUsedCodes, err)
	}

	return formatUsedCodes(codes)
}

func (s *discountService) GetUnusedCodes(ctx context.Context) string {
	ctx = s.withRequest(ctx, opGetUnusedCodes)

	codes, err := s.serverAdapter.GetUnusedCodes(ctx)
	if err != nil {
		return s.callError(ctx, opGetUnusedCodes, err)
	}

	return formatUnusedCodes(codes)
}

// withRequest tags ctx with a fresh request ID and a logger carrying it.
func (s *discountService) withRequest(ctx context.Context, operation string) context.Context {
	requestID := s.idGenerator.Generate()
	ctx = utils.WithRequestID(ctx, requestID)

	l := s.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("operation", operation).Str("request_id", requestID)
	})
	return l.WithContext(ctx)
}

func (s *discountService) callError(ctx context.Context, operation string, err error) string {
	logger.FromContext(ctx).Err(err).Msg("remote call failed")
	return fmt.Sprintf(app.MsgCallErrorFormat, operation, errorText(err))
}

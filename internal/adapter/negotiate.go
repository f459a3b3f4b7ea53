// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-discount-client/internal/logger"
	"github.com/MKhiriev/go-discount-client/internal/utils"
)

const websocketsTransport = "WebSockets"

type negotiateTransport struct {
	Transport       string   `json:"transport"`
	TransferFormats []string `json:"transferFormats"`
}

type negotiateResponse struct {
	ConnectionID        string               `json:"connectionId"`
	NegotiateVersion    int                  `json:"negotiateVersion"`
	URL                 string               `json:"url"`
	Error               string               `json:"error"`
	AvailableTransports []negotiateTransport `json:"availableTransports"`
}

func (r negotiateResponse) supports(transport string) bool {
	for _, t := range r.AvailableTransports {
		if strings.EqualFold(t.Transport, transport) {
			return true
		}
	}
	return false
}

// negotiateProbe sends the hub's negotiate request ahead of the real
// connection so that an unreachable or misconfigured hub is reported with a
// mapped HTTP error instead of a bare handshake timeout.
type negotiateProbe struct {
	client *utils.HTTPClient
	url    string

	logger *logger.Logger
}

func newNegotiateProbe(hubURL string, timeout time.Duration, logger *logger.Logger) (*negotiateProbe, error) {
	negotiateURL, err := buildNegotiateURL(hubURL)
	if err != nil {
		return nil, err
	}

	return &negotiateProbe{
		client: utils.NewHTTPClient(timeout),
		url:    negotiateURL,
		logger: logger,
	}, nil
}

func buildNegotiateURL(hubURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(hubURL))
	if err != nil {
		return "", fmt.Errorf("parse hub url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("hub url must include scheme and host")
	}

	u.Path = strings.TrimRight(u.Path, "/") + "/negotiate"
	q := u.Query()
	q.Set("negotiateVersion", "1")
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// Negotiate performs the probe. A redirect response (hub behind a managed
// service) is accepted as is; otherwise the websockets transport must be
// offered.
func (p *negotiateProbe) Negotiate(ctx context.Context) (negotiateResponse, error) {
	var nr negotiateResponse

	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Post(p.url)
	if err != nil {
		return nr, fmt.Errorf("negotiate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nr, err
	}

	if err = json.Unmarshal(resp.Body(), &nr); err != nil {
		return nr, fmt.Errorf("decode negotiate response: %w", err)
	}
	if nr.Error != "" {
		return nr, fmt.Errorf("%w: %s", ErrNegotiationRejected, nr.Error)
	}
	if nr.URL != "" {
		p.logger.Debug().Str("redirect_url", nr.URL).Msg("hub negotiation redirected")
		return nr, nil
	}
	if !nr.supports(websocketsTransport) {
		return nr, ErrWebSocketsUnsupported
	}

	p.logger.Debug().
		Str("connection_id", nr.ConnectionID).
		Int("negotiate_version", nr.NegotiateVersion).
		Msg("hub negotiation probe succeeded")

	return nr, nil
}

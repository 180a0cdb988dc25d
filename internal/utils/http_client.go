// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/MKhiriev/wine-cellar/internal/logger"
	"github.com/go-resty/resty/v2"
)

// RequestIDHeader carries a per-request identifier so that client log lines
// can be matched against server logs.
const RequestIDHeader = "X-Request-ID"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient whose requests carry an
// [RequestIDHeader] and whose responses and transport failures are logged at
// debug level.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(log *logger.Logger) *HTTPClient {
	ids := NewUUIDGenerator()
	client := resty.New()

	client.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if r.Header.Get(RequestIDHeader) == "" {
			r.SetHeader(RequestIDHeader, ids.Generate())
		}
		return nil
	})

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		log.Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Str("request_id", resp.Request.Header.Get(RequestIDHeader)).
			Int("status", resp.StatusCode()).
			Dur("duration", resp.Time()).
			Msg("http response")
		return nil
	})

	client.OnError(func(r *resty.Request, err error) {
		log.Err(err).
			Str("method", r.Method).
			Str("url", r.URL).
			Str("request_id", r.Header.Get(RequestIDHeader)).
			Msg("http request failed")
	})

	return &HTTPClient{Client: client}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/wine-cellar/internal/config"
	"github.com/MKhiriev/wine-cellar/internal/logger"
	"github.com/MKhiriev/wine-cellar/internal/utils"
	"github.com/MKhiriev/wine-cellar/models"
	"github.com/go-resty/resty/v2"
)

const (
	signupPath      = "/signup"
	loginPath       = "/login"
	wineBottlesPath = "/wine_bottles"
	wineBottlePath  = "/wine_bottles/{title}"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	requireAuthHeader bool

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout. A zero timeout leaves the transport default in place.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(logger)
	client.SetBaseURL(baseURL)
	if adapterCfg.RequestTimeout > 0 {
		client.SetTimeout(adapterCfg.RequestTimeout)
	}

	return &httpServerAdapter{
		client:            client,
		requireAuthHeader: adapterCfg.RequireAuthHeader,
		logger:            logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed).
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Signup implements [ServerAdapter]. It POSTs the credentials as JSON to
// POST /signup and maps any non-2xx status to a sentinel error.
func (h *httpServerAdapter) Signup(ctx context.Context, creds models.Credentials) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post(signupPath)
	if err != nil {
		return fmt.Errorf("signup request: %w", err)
	}

	return mapHTTPError(resp)
}

// Login implements [ServerAdapter]. It POSTs the credentials as JSON to
// POST /login. A non-empty response body must be a JSON object; its "token"
// field, when present, is stored via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post(loginPath)
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	var lr models.LoginResponse
	if body := bytes.TrimSpace(resp.Body()); len(body) > 0 {
		if err = json.Unmarshal(body, &lr); err != nil {
			return models.LoginResponse{}, fmt.Errorf("%w: login: %v", ErrDecodeResponse, err)
		}
	}
	lr.Token = strings.TrimSpace(lr.Token)

	if lr.Token != "" {
		h.SetToken(lr.Token)
	}
	return lr, nil
}

// ListBottles implements [ServerAdapter].
func (h *httpServerAdapter) ListBottles(ctx context.Context) ([]models.WineBottle, error) {
	resp, err := h.inventoryRequest(ctx).Get(wineBottlesPath)
	if err != nil {
		return nil, fmt.Errorf("list wine bottles request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	bottles := make([]models.WineBottle, 0)
	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return bottles, nil
	}

	if err = json.Unmarshal(body, &bottles); err != nil {
		return nil, fmt.Errorf("%w: wine bottles: %v", ErrDecodeResponse, err)
	}
	if bottles == nil {
		bottles = make([]models.WineBottle, 0)
	}

	return bottles, nil
}

// CreateBottle implements [ServerAdapter]. The photo file is read by resty at
// send time; a missing file surfaces as a request error.
func (h *httpServerAdapter) CreateBottle(ctx context.Context, draft models.WineBottleDraft) error {
	req := h.inventoryRequest(ctx).
		SetMultipartFormData(map[string]string{
			"title":       draft.Title,
			"description": draft.Description,
		})
	if draft.PhotoPath != "" {
		req.SetFile("photo", draft.PhotoPath)
	}

	resp, err := req.Post(wineBottlesPath)
	if err != nil {
		return fmt.Errorf("create wine bottle request: %w", err)
	}

	return mapHTTPError(resp)
}

// DeleteBottle implements [ServerAdapter]. resty escapes the path parameter
// with url.PathEscape, so spaces, slashes and other reserved characters in
// the title stay inside one segment.
func (h *httpServerAdapter) DeleteBottle(ctx context.Context, title string) error {
	resp, err := h.inventoryRequest(ctx).
		SetPathParam("title", title).
		Delete(wineBottlePath)
	if err != nil {
		return fmt.Errorf("delete wine bottle request: %w", err)
	}

	return mapHTTPError(resp)
}

// inventoryRequest builds a request for the /wine_bottles endpoints, attaching
// the bearer token when the adapter is configured to require it and a token
// is held.
func (h *httpServerAdapter) inventoryRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if !h.requireAuthHeader {
		return req
	}
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

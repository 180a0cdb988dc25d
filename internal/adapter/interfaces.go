// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for communicating with the
// remote wine inventory API.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/wine-cellar/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the remote inventory API.
// Implementations are responsible for serialisation, authorization header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to subsequent inventory
	// requests. An empty token clears it.
	SetToken(token string)

	// Token returns the bearer token currently held, or "" if none.
	Token() string

	// Signup submits credentials to POST /signup. Success only signals that
	// the account was created; no token is issued.
	Signup(ctx context.Context, creds models.Credentials) error

	// Login submits credentials to POST /login. When the response carries a
	// token it is stored via SetToken and returned.
	Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error)

	// ListBottles fetches GET /wine_bottles. A JSON null or empty body yields
	// an empty, non-nil slice.
	ListBottles(ctx context.Context) ([]models.WineBottle, error)

	// CreateBottle submits the draft as a multipart POST /wine_bottles with
	// the parts "title", "description" and, when PhotoPath is set, "photo".
	CreateBottle(ctx context.Context, draft models.WineBottleDraft) error

	// DeleteBottle sends DELETE /wine_bottles/{title} with the title
	// percent-encoded as a single path segment.
	DeleteBottle(ctx context.Context, title string) error
}

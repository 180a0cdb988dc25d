// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/session_store_mock.go -package=mock

// SessionStore is the durable slot holding the authentication token between
// client runs.
type SessionStore interface {
	// Load returns the persisted token. It returns [ErrSessionValueNotFound]
	// when no token (or an empty one) is stored.
	Load(ctx context.Context) (string, error)
	// Save persists token, replacing any previous value.
	Save(ctx context.Context, token string) error
	// Clear removes the persisted token. Clearing an empty slot is not an error.
	Clear(ctx context.Context) error
}

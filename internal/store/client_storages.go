// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/wine-cellar/internal/config"
	"github.com/MKhiriev/wine-cellar/internal/logger"
)

// ClientStorages groups the client-side storage repositories.
type ClientStorages struct {
	// SessionStore holds the persisted authentication token.
	SessionStore SessionStore

	db *DB
}

// NewClientStorages opens the SQLite database named by cfg.DB.DSN, applies
// pending migrations and wires the repositories to it.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newClientStorages(db, logger), nil
}

func newClientStorages(db *DB, logger *logger.Logger) *ClientStorages {
	return &ClientStorages{
		SessionStore: NewSessionRepository(db, logger),
		db:           db,
	}
}

// Close releases the underlying database connection.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/wine-cellar/internal/logger"
)

type sessionRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSessionRepository returns a [SessionStore] backed by the session_values
// table of db.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionStore {
	return &sessionRepository{
		DB:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (r *sessionRepository) Load(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectSessionValue(authTokenKey)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.Load").Msg("failed to build select query")
		return "", fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var token string
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrSessionValueNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.Load").Msg("failed to read auth token")
		return "", fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrSessionValueNotFound
	}

	return token, nil
}

func (r *sessionRepository) Save(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	query, args, err := upsertSessionValue(authTokenKey, token, r.now())
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.Save").Msg("failed to build upsert query")
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sessionRepository.Save").Msg("failed to persist auth token")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	log.Debug().Str("func", "sessionRepository.Save").Msg("auth token persisted")
	return nil
}

func (r *sessionRepository) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := deleteSessionValue(authTokenKey)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.Clear").Msg("failed to build delete query")
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sessionRepository.Clear").Msg("failed to remove auth token")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}

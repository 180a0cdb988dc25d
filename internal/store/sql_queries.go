// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	sessionValuesTable = "session_values"

	// authTokenKey is the key under which the authentication token is stored.
	authTokenKey = "authToken"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func selectSessionValue(key string) (string, []any, error) {
	return psql.
		Select("value").
		From(sessionValuesTable).
		Where(sq.Eq{"key": key}).
		Limit(1).
		ToSql()
}

func upsertSessionValue(key, value string, at time.Time) (string, []any, error) {
	return psql.
		Insert(sessionValuesTable).
		Columns("key", "value", "updated_at").
		Values(key, value, at).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func deleteSessionValue(key string) (string, []any, error) {
	return psql.
		Delete(sessionValuesTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionValueQueries(t *testing.T) {
	at := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		build     func() (string, []any, error)
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "select",
			build:     func() (string, []any, error) { return selectSessionValue(authTokenKey) },
			wantQuery: "SELECT value FROM session_values WHERE key = ? LIMIT 1",
			wantArgs:  []any{"authToken"},
		},
		{
			name:      "upsert",
			build:     func() (string, []any, error) { return upsertSessionValue(authTokenKey, "abc", at) },
			wantQuery: "INSERT INTO session_values (key,value,updated_at) VALUES (?,?,?) ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at",
			wantArgs:  []any{"authToken", "abc", at},
		},
		{
			name:      "delete",
			build:     func() (string, []any, error) { return deleteSessionValue(authTokenKey) },
			wantQuery: "DELETE FROM session_values WHERE key = ?",
			wantArgs:  []any{"authToken"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := tt.build()
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

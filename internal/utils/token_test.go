// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return s
}

func TestTokenSubject(t *testing.T) {
	expired := signToken(t, jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})

	tests := []struct {
		name  string
		token string
		want  string
	}{
		{name: "empty", token: "", want: ""},
		{name: "opaque token", token: "abc", want: ""},
		{name: "subject claim", token: signToken(t, jwt.MapClaims{"sub": "user-1"}), want: "user-1"},
		{name: "email preferred", token: signToken(t, jwt.MapClaims{"sub": "7", "email": "a@b.com"}), want: "a@b.com"},
		{name: "expired still displayed", token: expired, want: "42"},
		{name: "no identity claims", token: signToken(t, jwt.MapClaims{"role": "x"}), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TokenSubject(tt.token))
		})
	}
}

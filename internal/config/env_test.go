// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	envVars := map[string]string{
		"CONFIG":                      "/path/to/config.json",
		"APP_LOG_PATH":                "/var/log/cellar.log",
		"APP_NOTIFICATION_TTL":        "2s",
		"ADAPTER_HTTP_ADDRESS":        "http://api:8080",
		"ADAPTER_REQUEST_TIMEOUT":     "15s",
		"ADAPTER_REQUIRE_AUTH_HEADER": "true",
		"STORAGE_DB_DSN":              "/tmp/cellar.db",
	}
	for k, v := range envVars {
		t.Setenv(k, v)
	}

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "/var/log/cellar.log", cfg.App.LogPath)
	assert.Equal(t, 2*time.Second, cfg.App.NotificationTTL)
	assert.Equal(t, "http://api:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	require.NotNil(t, cfg.Adapter.RequireAuthHeader)
	assert.True(t, *cfg.Adapter.RequireAuthHeader)
	assert.Equal(t, "/tmp/cellar.db", cfg.Storage.DB.DSN)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "not-a-duration")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_InvalidBool(t *testing.T) {
	t.Setenv("ADAPTER_REQUIRE_AUTH_HEADER", "maybe")

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
}

func TestParseEnvFrom_IgnoresProcessEnvironment(t *testing.T) {
	t.Setenv("ADAPTER_HTTP_ADDRESS", "http://from-process:1")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnvFrom(cfg, map[string]string{
		"STORAGE_DB_DSN": "isolated.db",
	}))

	assert.Empty(t, cfg.Adapter.HTTPAddress)
	assert.Equal(t, "isolated.db", cfg.Storage.DB.DSN)
	assert.Nil(t, cfg.Adapter.RequireAuthHeader)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func boolPtr(v bool) *bool { return &v }

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultHTTPAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultLogPath, cfg.App.LogPath)
	assert.Equal(t, DefaultNotificationTTL, cfg.App.NotificationTTL)
	assert.Nil(t, cfg.Adapter.RequireAuthHeader)
}

func TestBuild_LayerPriority(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.json = &StructuredConfig{
		Adapter: Adapter{HTTPAddress: "http://json", RequestTimeout: time.Second},
		Storage: Storage{DB: DB{DSN: "json.db"}},
	}
	b.env = &StructuredConfig{
		Adapter: Adapter{HTTPAddress: "http://env"},
	}
	b.flags = &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "flags.db"}},
	}

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "http://env", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "flags.db", cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultLogPath, cfg.App.LogPath)
}

func TestBuild_RequireAuthHeaderLastLayerWins(t *testing.T) {
	tests := []struct {
		name  string
		json  *bool
		env   *bool
		flags *bool
		want  *bool
	}{
		{name: "unset everywhere", want: nil},
		{name: "json only", json: boolPtr(false), want: boolPtr(false)},
		{name: "env disables json", json: boolPtr(true), env: boolPtr(false), want: boolPtr(false)},
		{name: "flag enables env", env: boolPtr(false), flags: boolPtr(true), want: boolPtr(true)},
		{name: "flag disables", json: boolPtr(true), env: boolPtr(true), flags: boolPtr(false), want: boolPtr(false)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder().withDefaults()
			b.json = &StructuredConfig{Adapter: Adapter{RequireAuthHeader: tt.json}}
			b.env = &StructuredConfig{Adapter: Adapter{RequireAuthHeader: tt.env}}
			b.flags = &StructuredConfig{Adapter: Adapter{RequireAuthHeader: tt.flags}}

			cfg, err := b.build()
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Adapter.RequireAuthHeader)
		})
	}
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoPathSkipsLayer(t *testing.T) {
	b := newConfigBuilder().withJSON()
	assert.NoError(t, b.err)
	assert.Nil(t, b.json)
}

func TestWithJSON_PathFromFlags(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"adapter": map[string]any{"http_address": "http://from-json"},
	})

	b := newConfigBuilder()
	b.flags = &StructuredConfig{JSONFilePath: path}
	b.withJSON()

	require.NoError(t, b.err)
	require.NotNil(t, b.json)
	assert.Equal(t, "http://from-json", b.json.Adapter.HTTPAddress)
}

func TestWithJSON_MissingFileRecordsError(t *testing.T) {
	b := newConfigBuilder()
	b.env = &StructuredConfig{JSONFilePath: "/does/not/exist.json"}
	b.withJSON()

	require.Error(t, b.err)
	_, err := b.build()
	require.Error(t, err)
}

// ── getClientConfig ───────────────────────────────────────────────────────────

func TestGetClientConfig_Defaults(t *testing.T) {
	cfg, err := getClientConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultHTTPAddress, cfg.Adapter.HTTPAddress)
	assert.True(t, cfg.Adapter.RequireAuthHeader)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
}

func TestGetClientConfig_AllSources(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app":     map[string]any{"notification_ttl": "10s"},
		"adapter": map[string]any{"request_timeout": "5s", "require_auth_header": true},
	})
	t.Setenv("ADAPTER_HTTP_ADDRESS", "http://env-api:8080")
	t.Setenv("ADAPTER_REQUIRE_AUTH_HEADER", "false")

	cfg, err := getClientConfig([]string{"-c", path, "-d", "cellar.db"})
	require.NoError(t, err)

	assert.Equal(t, "http://env-api:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.False(t, cfg.Adapter.RequireAuthHeader)
	assert.Equal(t, "cellar.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 10*time.Second, cfg.App.NotificationTTL)
}

func TestGetClientConfig_InvalidStorage(t *testing.T) {
	_, err := getClientConfig([]string{"-d", ":memory:"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestGetClientConfig_BadFlag(t *testing.T) {
	_, err := getClientConfig([]string{"-unknown"})
	require.Error(t, err)
}

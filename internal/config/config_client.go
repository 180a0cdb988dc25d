// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"
)

// ClientApp holds process-level client settings.
type ClientApp struct {
	// LogPath is the file the client writes its log to.
	LogPath string
	// NotificationTTL is how long a notification stays on screen.
	NotificationTTL time.Duration
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the remote API.
	HTTPAddress string
	// RequestTimeout is the timeout for outbound requests; zero disables it.
	RequestTimeout time.Duration
	// RequireAuthHeader attaches "Authorization: Bearer <token>" to inventory
	// requests when a token is held.
	RequireAuthHeader bool
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientConfig is the validated configuration consumed by the client runtime.
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
}

// GetClientConfig builds and validates the client configuration from the
// process environment and command-line arguments.
func GetClientConfig() (*ClientConfig, error) {
	return getClientConfig(os.Args[1:])
}

func getClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			LogPath:         cfg.App.LogPath,
			NotificationTTL: cfg.App.NotificationTTL,
		},
		Adapter: ClientAdapter{
			HTTPAddress:       cfg.Adapter.HTTPAddress,
			RequestTimeout:    cfg.Adapter.RequestTimeout,
			RequireAuthHeader: cfg.Adapter.RequireAuthHeader == nil || *cfg.Adapter.RequireAuthHeader,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
	}

	return clientCfg, clientCfg.validate()
}

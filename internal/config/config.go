// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values applied by the first configuration layer.
const (
	DefaultHTTPAddress     = "https://backengine-dy6a.fly.dev"
	DefaultDSN             = "wine-cellar.db"
	DefaultLogPath         = "wine-cellar.log"
	DefaultNotificationTTL = 4 * time.Second
)

// StructuredConfig is the raw configuration container populated by every
// layer before it is reduced to a [ClientConfig].
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings.
	App App `envPrefix:"APP_"`

	// Adapter holds settings of the transport to the remote inventory API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local persistence settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level client settings.
type App struct {
	// LogPath is the file the client logs to. The terminal UI owns stdout.
	// Env: APP_LOG_PATH
	LogPath string `env:"LOG_PATH"`

	// NotificationTTL is how long a transient notification stays visible.
	// Env: APP_NOTIFICATION_TTL
	NotificationTTL time.Duration `env:"NOTIFICATION_TTL"`
}

// Adapter holds the remote API transport settings.
type Adapter struct {
	// HTTPAddress is the base URL of the remote API.
	// Env: ADAPTER_HTTP_ADDRESS
	HTTPAddress string `env:"HTTP_ADDRESS"`

	// RequestTimeout bounds every outbound request. Zero leaves the
	// transport default in place.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RequireAuthHeader controls whether inventory requests carry the bearer
	// token. Nil means "not set by this layer".
	// Env: ADAPTER_REQUIRE_AUTH_HEADER
	RequireAuthHeader *bool `env:"REQUIRE_AUTH_HEADER"`
}

// Storage groups the local persistence settings.
type Storage struct {
	// DB holds the SQLite connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds the local SQLite settings.
type DB struct {
	// DSN is the SQLite database file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogPath:         DefaultLogPath,
			NotificationTTL: DefaultNotificationTTL,
		},
		Adapter: Adapter{
			HTTPAddress: DefaultHTTPAddress,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
	}
}

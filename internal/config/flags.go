// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

const requireAuthFlag = "require-auth"

// parseFlags parses the client command-line flags.
//
// Flags:
//
//	-a              remote API base URL
//	-d              local SQLite database path
//	-c/-config      json file path with configs
//	-log            log file path
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-require-auth   send the bearer token with inventory requests
func parseFlags(args []string) (*StructuredConfig, error) {
	var httpAddress string
	var databaseDSN string
	var jsonConfigPath string
	var logPath string
	var requestTimeout time.Duration
	var requireAuth bool

	fs := flag.NewFlagSet("wine-cellar", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&httpAddress, "a", "", "Remote API base URL")
	fs.StringVar(&databaseDSN, "d", "", "Local database path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logPath, "log", "", "Log file path")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.BoolVar(&requireAuth, requireAuthFlag, true, "Send the bearer token with inventory requests")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogPath: logPath,
		},
		Adapter: Adapter{
			HTTPAddress:    httpAddress,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		JSONFilePath: jsonConfigPath,
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == requireAuthFlag {
			cfg.Adapter.RequireAuthHeader = &requireAuth
		}
	})

	return cfg, nil
}

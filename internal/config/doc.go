// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation for
// the wine-cellar client.
//
// Configuration is assembled from several layers; later layers override
// non-zero fields of earlier ones:
//  1. Built-in defaults
//  2. JSON config file (path from -c / -config or the CONFIG variable)
//  3. Environment variables
//  4. Command-line flags
//
// The entry point is [GetClientConfig].
package config

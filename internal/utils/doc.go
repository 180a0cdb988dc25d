// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers used by the client: the
// HTTP client wrapper, request identifiers, and best-effort bearer token
// inspection.
package utils

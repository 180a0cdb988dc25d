// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the client's durable local state.
//
// The only value kept between runs is the authentication token, stored in a
// SQLite key-value table under the key "authToken". Queries are built with
// squirrel and the schema is managed by goose migrations.
package store

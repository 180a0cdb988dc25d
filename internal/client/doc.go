// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It ties the terminal UI to the local storage lifecycle: the UI restores
// the persisted session on start, and the storage is closed once the UI
// exits.
package client

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the client's business logic: the session
// manager (signup, login, restore, logout) and the wine inventory client
// (list, create, delete). Every outcome is reported once through a
// [Notifier]; errors are also returned to callers for control flow.
package service

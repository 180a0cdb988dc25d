// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/wine-cellar/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ClientSessionService manages the LoggedOut/LoggedIn state machine of the
// client. The only way out of LoggedIn is [ClientSessionService.Logout]; a
// rejected inventory request never logs the user out.
type ClientSessionService interface {
	// Signup registers the credentials with the remote API and, on success,
	// chains Login with the same credentials.
	Signup(ctx context.Context, creds models.Credentials) error

	// Login authenticates against the remote API. On success the session
	// becomes LoggedIn, the returned token (if any) is persisted and an
	// inventory refresh is triggered. On failure the state is unchanged.
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)

	// RestoreSession reads the persisted token. When one is found the
	// session becomes LoggedIn without any validation call and an inventory
	// refresh is triggered. The bool result reports whether a token was found.
	RestoreSession(ctx context.Context) (models.Session, bool, error)

	// Logout clears the in-memory session, the adapter token and the
	// persisted token. It makes no network call and is idempotent.
	Logout(ctx context.Context) error

	// Session returns a snapshot of the current session.
	Session() models.Session
}

// ClientInventoryService is the client's view of the remote wine collection.
type ClientInventoryService interface {
	// List fetches the collection and replaces the cache wholesale. On
	// failure the cache keeps its previous value.
	List(ctx context.Context) ([]models.WineBottle, error)

	// Create uploads draft. On success the draft is reset and the
	// collection refreshed; on failure the draft is left untouched.
	Create(ctx context.Context, draft *models.WineBottleDraft) error

	// Delete removes the bottle with exactly the given title and refreshes
	// the collection on success.
	Delete(ctx context.Context, title string) error

	// Bottles returns a copy of the cached collection.
	Bottles() []models.WineBottle

	// Find looks up a cached bottle by exact title.
	Find(title string) (models.WineBottle, bool)

	// Reset drops the cached collection.
	Reset()
}

// Notifier receives the user-visible outcome of every operation.
type Notifier interface {
	Notify(n models.Notification)
}

// AppInfoService exposes the build information of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

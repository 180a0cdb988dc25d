// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/wine-cellar/internal/adapter"
	"github.com/MKhiriev/wine-cellar/internal/logger"
	"github.com/MKhiriev/wine-cellar/internal/store"
	"github.com/MKhiriev/wine-cellar/models"
)

// ClientServices groups the client-side services used by the terminal UI.
type ClientServices struct {
	SessionService   ClientSessionService
	InventoryService ClientInventoryService
	AppInfoService   AppInfoService
}

// NewClientServices wires the services to the shared server adapter and
// storage. A nil notifier discards notifications.
func NewClientServices(
	storages *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	notifier Notifier,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) *ClientServices {
	if notifier == nil {
		notifier = NopNotifier()
	}

	inventorySvc := NewClientInventoryService(serverAdapter, notifier, logger)
	sessionSvc := NewClientSessionService(serverAdapter, storages.SessionStore, inventorySvc, notifier, logger)

	return &ClientServices{
		SessionService:   sessionSvc,
		InventoryService: inventorySvc,
		AppInfoService:   NewAppInfoService(buildInfo, logger),
	}
}

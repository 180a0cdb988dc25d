// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/wine-cellar/internal/logger"
	"github.com/MKhiriev/wine-cellar/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

const defaultNotificationTTL = 4 * time.Second

// TUI runs the interactive program over the client services.
type TUI struct {
	services      *service.ClientServices
	notifications *Notifications
	ttl           time.Duration
	logger        *logger.Logger
}

// New returns a TUI. notifications must be the same queue the services
// were built with; a non-positive ttl falls back to four seconds.
func New(services *service.ClientServices, notifications *Notifications, ttl time.Duration, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, ErrNoServices
	}
	if notifications == nil {
		notifications = NewNotifications()
	}
	if ttl <= 0 {
		ttl = defaultNotificationTTL
	}

	return &TUI{
		services:      services,
		notifications: notifications,
		ttl:           ttl,
		logger:        logger,
	}, nil
}

// Run restores the persisted session and blocks until the user quits or
// ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	return t.run(ctx, tea.WithAltScreen())
}

func (t *TUI) run(ctx context.Context, opts ...tea.ProgramOption) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := newRootModel(t.logger.WithContext(ctx), t.services, t.notifications, t.ttl, t.logger)
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)

	_, err := tea.NewProgram(model, opts...).Run()
	return err
}

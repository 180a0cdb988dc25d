// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/wine-cellar/internal/logger"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrNoUI is returned by [NewApp] when no UI is given.
var ErrNoUI = errors.New("client: ui is not set")

// App runs the UI and releases the local storage afterwards.
type App struct {
	ui       UI
	storages Closer
	logger   *logger.Logger
}

// NewApp returns an [App]. storages may be nil.
func NewApp(ui UI, storages Closer, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, ErrNoUI
	}

	return &App{ui: ui, storages: storages, logger: logger}, nil
}

// Run blocks until the UI exits. Cancelling ctx (for example on SIGTERM)
// stops the UI and is not reported as an error.
func (a *App) Run(ctx context.Context) (err error) {
	a.logger.Info().Str("func", "App.Run").Msg("client started")
	defer func() {
		if a.storages == nil {
			return
		}
		if closeErr := a.storages.Close(); closeErr != nil {
			a.logger.Err(closeErr).Str("func", "App.Run").Msg("failed to close local storage")
			err = errors.Join(err, fmt.Errorf("close local storage: %w", closeErr))
		}
	}()

	runErr := a.ui.Run(ctx)
	if runErr != nil && ctx.Err() != nil && errors.Is(runErr, tea.ErrProgramKilled) {
		runErr = nil
	}
	if runErr != nil {
		return fmt.Errorf("ui: %w", runErr)
	}

	a.logger.Info().Str("func", "App.Run").Msg("client stopped")
	return nil
}

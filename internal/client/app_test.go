// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/wine-cellar/internal/logger"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUI struct {
	err   error
	calls int
}

func (f *fakeUI) Run(context.Context) error {
	f.calls++
	return f.err
}

type fakeCloser struct {
	err    error
	closed bool
}

func (f *fakeCloser) Close() error {
	f.closed = true
	return f.err
}

func TestNewApp_NilUI(t *testing.T) {
	_, err := NewApp(nil, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrNoUI)
}

func TestApp_Run(t *testing.T) {
	tests := []struct {
		name      string
		uiErr     error
		closeErr  error
		cancelled bool
		wantErr   []error
	}{
		{name: "clean exit"},
		{name: "ui error", uiErr: errors.New("no tty"), wantErr: []error{}},
		{name: "close error", closeErr: errors.New("busy"), wantErr: []error{}},
		{name: "cancelled", uiErr: fmt.Errorf("%w: context canceled", tea.ErrProgramKilled), cancelled: true},
		{name: "killed without cancel", uiErr: tea.ErrProgramKilled, wantErr: []error{tea.ErrProgramKilled}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui := &fakeUI{err: tt.uiErr}
			closer := &fakeCloser{err: tt.closeErr}

			app, err := NewApp(ui, closer, logger.Nop())
			require.NoError(t, err)

			ctx, cancel := context.WithCancel(context.Background())
			if tt.cancelled {
				cancel()
			}
			defer cancel()

			err = app.Run(ctx)
			assert.Equal(t, 1, ui.calls)
			assert.True(t, closer.closed, "storage must be closed on every exit path")

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, target := range tt.wantErr {
				assert.ErrorIs(t, err, target)
			}
		})
	}
}

func TestApp_RunWithoutStorages(t *testing.T) {
	app, err := NewApp(&fakeUI{}, nil, logger.Nop())
	require.NoError(t, err)
	assert.NoError(t, app.Run(context.Background()))
}

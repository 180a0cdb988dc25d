// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/wine-cellar/models"
	"github.com/stretchr/testify/assert"
)

func TestFitText(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{in: "Rioja", max: 10, want: "Rioja"},
		{in: "Chateau Margaux", max: 10, want: "Chateau..."},
		{in: "Côte-Rôtie", max: 3, want: "Côt"},
		{in: "anything", max: 0, want: "anything"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, fitText(tt.in, tt.max))
		})
	}
}

func TestValueOrDash(t *testing.T) {
	assert.Equal(t, "-", valueOrDash(""))
	assert.Equal(t, "-", valueOrDash("  "))
	assert.Equal(t, "x", valueOrDash("x"))
}

func TestRenderPage(t *testing.T) {
	page := renderPage("TITLE", "line one\nline two", "esc: back")

	assert.Contains(t, page, "  line one\n  line two\n")
	assert.Contains(t, page, "esc: back")
	assert.True(t, strings.HasSuffix(page, "ctrl+c: quit"))

	assert.Contains(t, renderPage("TITLE", "", ""), "  -\n")
}

func TestRenderBuildInfoWindow(t *testing.T) {
	view := renderBuildInfoWindow(models.NewAppBuildInfo("1.0.0", "", ""))

	assert.Contains(t, view, "Version: 1.0.0")
	assert.Contains(t, view, "Date: N/A")
	assert.Contains(t, view, "Commit: N/A")
}

func TestHumanizeServerUnavailableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "refused", err: errors.New("Post \"http://x/login\": dial tcp 127.0.0.1:1: connect: connection refused"), want: serverUnavailableMessage},
		{name: "dns", err: errors.New("lookup api: no such host"), want: serverUnavailableMessage},
		{name: "timeout", err: errors.New("context deadline exceeded"), want: serverUnavailableMessage},
		{name: "other", err: errors.New("login failed: client unauthorized"), want: "login failed: client unauthorized"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeServerUnavailableError(tt.err))
		})
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive terminal interface of the
// wine-cellar client on top of Bubble Tea.
//
// The interface has two modes. Logged out, it shows an email/password form
// with sign-up and log-in buttons. Logged in, it shows the new-bottle form
// (title, description, photo file) and the list of bottles, each of which
// can be deleted. Service calls run as asynchronous [tea.Cmd]s and their
// outcomes are shown by a transient notification center.
package tui

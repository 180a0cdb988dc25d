// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/wine-cellar/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type action int

const (
	actNone action = iota
	actSignup
	actLogin
	actCreate
	actDelete
	actCopy
	actLogout
	actBuildInfo
)

const (
	loginFocusEmail = iota
	loginFocusPassword
	loginFocusSignup
	loginFocusLogin
	loginFocusCount
)

// loginModel is the logged-out form: email, password and the sign-up and
// log-in buttons. It holds no service references; the root model turns
// the returned action into a command.
type loginModel struct {
	inputs []textinput.Model
	focus  int
}

func newLoginModel() *loginModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 254
	emailInput.Width = 40
	emailInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &loginModel{inputs: []textinput.Model{emailInput, passwordInput}}
}

func (m *loginModel) credentials() models.Credentials {
	return models.Credentials{
		Email:    strings.TrimSpace(m.inputs[0].Value()),
		Password: m.inputs[1].Value(),
	}
}

func (m *loginModel) reset() {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.setFocus(loginFocusEmail)
}

func (m *loginModel) onInput() bool {
	return m.focus < len(m.inputs)
}

func (m *loginModel) update(msg tea.KeyMsg) (action, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.tab):
		m.setFocus((m.focus + 1) % loginFocusCount)
		return actNone, nil
	case key.Matches(msg, keys.backtab):
		m.setFocus((m.focus - 1 + loginFocusCount) % loginFocusCount)
		return actNone, nil
	case key.Matches(msg, keys.enter):
		switch m.focus {
		case loginFocusEmail:
			m.setFocus(loginFocusPassword)
			return actNone, nil
		case loginFocusSignup:
			return actSignup, nil
		default:
			return actLogin, nil
		}
	}

	if !m.onInput() {
		if key.Matches(msg, keys.buildInfo) {
			return actBuildInfo, nil
		}
		return actNone, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return actNone, cmd
}

func (m *loginModel) setFocus(focus int) {
	m.focus = focus
	for i := range m.inputs {
		if i == focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m *loginModel) View(submitting bool) string {
	var b strings.Builder
	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	b.WriteString("Email     │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n\n")

	if submitting {
		b.WriteString("[ Signing in... ]\n")
	} else {
		b.WriteString(renderButton("Sign up", m.focus == loginFocusSignup))
		b.WriteString("  ")
		b.WriteString(renderButton("Log in", m.focus == loginFocusLogin))
		b.WriteString("\n")
	}

	return b.String()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/wine-cellar/internal/logger"
	"github.com/MKhiriev/wine-cellar/internal/service"
	"github.com/MKhiriev/wine-cellar/internal/utils"
	"github.com/MKhiriev/wine-cellar/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	msgPhotoURLCopied     = "Photo URL copied to clipboard"
	msgPhotoURLCopyFailed = "Failed to copy photo URL"
)

// RootModel owns the session snapshot and switches between the logged-out
// and logged-in screens. It is the only model that talks to services.
type RootModel struct {
	ctx       context.Context
	session   service.ClientSessionService
	inventory service.ClientInventoryService
	appInfo   service.AppInfoService

	notifications *Notifications
	center        notificationCenter
	spinner       spinner.Model
	logger        *logger.Logger

	state   models.Session
	login   *loginModel
	cellar  *inventoryModel
	confirm *confirmModel

	restoring     bool
	authPending   bool
	pendingOps    int
	showBuildInfo bool
	errDetail     string
	copyToClip    func(string) error
}

func newRootModel(ctx context.Context, services *service.ClientServices, notifications *Notifications, ttl time.Duration, log *logger.Logger) *RootModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &RootModel{
		ctx:           ctx,
		session:       services.SessionService,
		inventory:     services.InventoryService,
		appInfo:       services.AppInfoService,
		notifications: notifications,
		center:        newNotificationCenter(ttl),
		spinner:       s,
		logger:        log,
		state:         models.Session{State: models.LoggedOut},
		login:         newLoginModel(),
		cellar:        newInventoryModel(),
		restoring:     true,
		copyToClip:    clipboard.WriteAll,
	}
}

func (m *RootModel) Init() tea.Cmd {
	return tea.Batch(
		m.notifications.wait(m.ctx),
		m.cmdRestoreSession(),
		m.spinner.Tick,
		textinput.Blink,
	)
}

func (m *RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cellar.width = msg.Width
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case notificationMsg:
		return m, tea.Batch(m.center.push(models.Notification(msg)), m.notifications.wait(m.ctx))
	case clearNotificationMsg:
		m.center.expire(msg.seq)
		return m, nil
	case restoreDoneMsg:
		m.restoring = false
		m.applySession(msg.session, msg.bottles)
		m.errDetail = humanizeServerUnavailableError(msg.err)
		return m, nil
	case authDoneMsg:
		m.authPending = false
		if msg.err != nil {
			m.errDetail = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errDetail = ""
		m.login.reset()
		m.applySession(msg.session, msg.bottles)
		return m, nil
	case inventoryDoneMsg:
		if m.pendingOps > 0 {
			m.pendingOps--
		}
		if !m.state.IsLoggedIn() {
			return m, nil
		}
		m.cellar.setBottles(msg.bottles)
		m.errDetail = humanizeServerUnavailableError(msg.err)
		if msg.op == opCreate && msg.err == nil {
			m.cellar.applyDraft(msg.draft)
		}
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.logger.Err(msg.err).Str("func", "RootModel.Update").Msg("clipboard write failed")
			return m, m.center.push(models.ErrorNotification(msgPhotoURLCopyFailed))
		}
		return m, m.center.push(models.SuccessNotification(msgPhotoURLCopied))
	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, nil
}

func (m *RootModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	if m.confirm != nil {
		switch {
		case key.Matches(msg, keys.yes):
			title := m.confirm.title
			m.confirm = nil
			m.pendingOps++
			return m, m.cmdDelete(title)
		case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
			m.confirm = nil
		}
		return m, nil
	}

	if m.restoring {
		return m, nil
	}

	if !m.state.IsLoggedIn() {
		act, cmd := m.login.update(msg)
		switch act {
		case actSignup, actLogin:
			if m.authPending {
				return m, cmd
			}
			m.authPending = true
			m.errDetail = ""
			if act == actSignup {
				return m, m.cmdSignup(m.login.credentials())
			}
			return m, m.cmdLogin(m.login.credentials())
		case actBuildInfo:
			m.showBuildInfo = true
		}
		return m, cmd
	}

	act, cmd := m.cellar.update(msg)
	switch act {
	case actCreate:
		m.pendingOps++
		return m, m.cmdCreate(m.cellar.draft())
	case actDelete:
		if bottle, ok := m.cellar.selected(); ok {
			m.confirm = &confirmModel{title: bottle.Title}
		}
	case actCopy:
		if bottle, ok := m.cellar.selected(); ok {
			return m, m.cmdCopy(bottle.PhotoURL)
		}
	case actLogout:
		m.logout()
	case actBuildInfo:
		m.showBuildInfo = true
	}
	return m, cmd
}

// logout runs synchronously; it never touches the network.
func (m *RootModel) logout() {
	if err := m.session.Logout(m.ctx); err != nil {
		m.errDetail = err.Error()
	} else {
		m.errDetail = ""
	}
	m.state = m.session.Session()
	m.cellar.reset()
	m.login.reset()
}

func (m *RootModel) applySession(session models.Session, bottles []models.WineBottle) {
	m.state = session
	if session.IsLoggedIn() {
		m.cellar.setBottles(bottles)
		m.cellar.setFocus(cellarFocusTitle)
	}
}

func (m *RootModel) cmdRestoreSession() tea.Cmd {
	ctx, session, inventory := m.ctx, m.session, m.inventory
	return func() tea.Msg {
		s, found, err := session.RestoreSession(ctx)
		return restoreDoneMsg{session: s, found: found, bottles: inventory.Bottles(), err: err}
	}
}

func (m *RootModel) cmdSignup(creds models.Credentials) tea.Cmd {
	ctx, session, inventory := m.ctx, m.session, m.inventory
	return func() tea.Msg {
		err := session.Signup(ctx, creds)
		return authDoneMsg{session: session.Session(), bottles: inventory.Bottles(), err: err}
	}
}

func (m *RootModel) cmdLogin(creds models.Credentials) tea.Cmd {
	ctx, session, inventory := m.ctx, m.session, m.inventory
	return func() tea.Msg {
		s, err := session.Login(ctx, creds)
		return authDoneMsg{session: s, bottles: inventory.Bottles(), err: err}
	}
}

func (m *RootModel) cmdCreate(draft models.WineBottleDraft) tea.Cmd {
	ctx, inventory := m.ctx, m.inventory
	return func() tea.Msg {
		err := inventory.Create(ctx, &draft)
		return inventoryDoneMsg{op: opCreate, draft: draft, bottles: inventory.Bottles(), err: err}
	}
}

func (m *RootModel) cmdDelete(title string) tea.Cmd {
	ctx, inventory := m.ctx, m.inventory
	return func() tea.Msg {
		err := inventory.Delete(ctx, title)
		return inventoryDoneMsg{op: opDelete, bottles: inventory.Bottles(), err: err}
	}
}

func (m *RootModel) cmdCopy(text string) tea.Cmd {
	write := m.copyToClip
	return func() tea.Msg {
		return copiedMsg{err: write(text)}
	}
}

func (m *RootModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.appInfo.GetBuildInfo(m.ctx)))
	}

	var body, hotKeys string
	switch {
	case m.restoring:
		body = m.spinner.View() + " restoring session..."
	case m.state.IsLoggedIn():
		body = m.cellar.View(m.pendingOps > 0, m.spinner.View())
		hotKeys = "tab: next field │ enter: add │ ↑/↓: select │ d: delete │ c: copy photo URL │ l: log out │ v: about"
	default:
		body = m.login.View(m.authPending)
		hotKeys = "tab: next field │ enter: submit │ v: about"
	}

	if m.confirm != nil {
		body += "\n" + m.confirm.View()
	}

	if n := m.center.View(); n != "" {
		body = strings.TrimRight(body, "\n") + "\n\n" + n
	}
	if m.errDetail != "" {
		body = strings.TrimRight(body, "\n") + "\n" + helpStyle.Render(m.errDetail)
	}

	return appStyle.Render(renderPage(m.header(), strings.TrimRight(body, "\n"), hotKeys))
}

func (m *RootModel) header() string {
	header := "WINE CELLAR"
	if !m.state.IsLoggedIn() {
		return header
	}
	if subject := utils.TokenSubject(m.state.Token); subject != "" {
		return header + " · signed in as " + subject
	}
	return header + " · signed in"
}

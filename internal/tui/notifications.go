// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/wine-cellar/models"
	tea "github.com/charmbracelet/bubbletea"
)

const notificationBuffer = 16

// Notifications is a [service.Notifier] that hands notifications over to
// the running program. Notify never blocks; when the buffer is full the
// oldest pending notification is dropped.
type Notifications struct {
	ch chan models.Notification
}

// NewNotifications returns an empty notification queue.
func NewNotifications() *Notifications {
	return &Notifications{ch: make(chan models.Notification, notificationBuffer)}
}

// Notify implements service.Notifier.
func (n *Notifications) Notify(notification models.Notification) {
	for {
		select {
		case n.ch <- notification:
			return
		default:
		}

		select {
		case <-n.ch:
		default:
		}
	}
}

// wait returns a command delivering the next notification, or nil once ctx
// is done.
func (n *Notifications) wait(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		select {
		case notification := <-n.ch:
			return notificationMsg(notification)
		case <-ctx.Done():
			return nil
		}
	}
}

// notificationCenter shows the latest notification until its TTL elapses.
type notificationCenter struct {
	ttl     time.Duration
	seq     int
	current *models.Notification
}

func newNotificationCenter(ttl time.Duration) notificationCenter {
	return notificationCenter{ttl: ttl}
}

// push replaces the visible notification and schedules its removal.
func (c *notificationCenter) push(n models.Notification) tea.Cmd {
	c.seq++
	c.current = &n

	seq := c.seq
	return tea.Tick(c.ttl, func(time.Time) tea.Msg {
		return clearNotificationMsg{seq: seq}
	})
}

// expire hides the notification only if no newer one replaced it.
func (c *notificationCenter) expire(seq int) {
	if seq == c.seq {
		c.current = nil
	}
}

func (c notificationCenter) View() string {
	if c.current == nil {
		return ""
	}
	if c.current.IsError() {
		return errorStyle.Render("✗ " + c.current.Message)
	}
	return successStyle.Render("✓ " + c.current.Message)
}

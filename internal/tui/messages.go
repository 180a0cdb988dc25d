// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/wine-cellar/models"
)

type notificationMsg models.Notification

type clearNotificationMsg struct {
	seq int
}

type restoreDoneMsg struct {
	session models.Session
	found   bool
	bottles []models.WineBottle
	err     error
}

type authDoneMsg struct {
	session models.Session
	bottles []models.WineBottle
	err     error
}

type inventoryOp int

const (
	opList inventoryOp = iota
	opCreate
	opDelete
)

type inventoryDoneMsg struct {
	op      inventoryOp
	draft   models.WineBottleDraft
	bottles []models.WineBottle
	err     error
}

type copiedMsg struct {
	err error
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NotificationStatus is the kind of transient user-visible notification.
type NotificationStatus string

const (
	NotificationSuccess NotificationStatus = "success"
	NotificationError   NotificationStatus = "error"
)

// Notification is a short message surfaced to the user after an operation.
type Notification struct {
	Status  NotificationStatus
	Message string
}

// IsError reports whether the notification describes a failure.
func (n Notification) IsError() bool {
	return n.Status == NotificationError
}

// SuccessNotification builds a notification of kind success.
func SuccessNotification(msg string) Notification {
	return Notification{Status: NotificationSuccess, Message: msg}
}

// ErrorNotification builds a notification of kind error.
func ErrorNotification(msg string) Notification {
	return Notification{Status: NotificationError, Message: msg}
}

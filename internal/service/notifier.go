// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/wine-cellar/models"

// Notification messages shown to the user.
const (
	MsgSignupSuccessful = "Signup successful"
	MsgSignupFailed     = "Signup failed"
	MsgSignupError      = "Error signing up"

	MsgLoginSuccessful = "Login successful"
	MsgLoginFailed     = "Login failed"
	MsgLoginError      = "Error logging in"

	MsgLogoutError = "Error logging out"

	MsgListError = "Error fetching wine bottles"

	MsgCreateSuccessful = "Wine bottle added successfully"
	MsgCreateFailed     = "Failed to add wine bottle"
	MsgCreateError      = "Error adding wine bottle"

	MsgDeleteSuccessful = "Wine bottle deleted successfully"
	MsgDeleteFailed     = "Failed to delete wine bottle"
	MsgDeleteError      = "Error deleting wine bottle"
)

// NotifierFunc adapts a plain function to the [Notifier] interface.
type NotifierFunc func(n models.Notification)

// Notify calls f(n).
func (f NotifierFunc) Notify(n models.Notification) {
	f(n)
}

type nopNotifier struct{}

func (nopNotifier) Notify(models.Notification) {}

// NopNotifier returns a [Notifier] that discards every notification.
func NopNotifier() Notifier {
	return nopNotifier{}
}

// failureMessage picks the "rejected" message when the API answered with a
// non-success status and the "error" message for transport or decode failures.
func failureMessage(err error, rejected, failed string) string {
	if isRejectedByServer(err) {
		return rejected
	}
	return failed
}

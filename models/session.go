// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SessionState is the client's belief about whether the user is authenticated.
type SessionState int

const (
	LoggedOut SessionState = iota
	LoggedIn
)

func (s SessionState) String() string {
	switch s {
	case LoggedIn:
		return "logged_in"
	default:
		return "logged_out"
	}
}

// Session is the in-memory authentication state. State is LoggedIn after a
// successful login or after a persisted token was found at start. Token may be
// empty when the API did not return one.
type Session struct {
	State SessionState
	Token string
}

// IsLoggedIn reports whether the session is in the LoggedIn state.
func (s Session) IsLoggedIn() bool {
	return s.State == LoggedIn
}

// HasToken reports whether a bearer token is held.
func (s Session) HasToken() bool {
	return s.Token != ""
}

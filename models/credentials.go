// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is the signup/login payload. It lives only in form state and is
// never written to local storage.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the body returned by POST /login. Token is optional: some
// deployments of the API authenticate without issuing one.
type LoginResponse struct {
	Token string `json:"token,omitempty"`
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// AuthError family.
var (
	ErrSignup = errors.New("signup failed")
	ErrLogin  = errors.New("login failed")
	ErrLogout = errors.New("logout failed")
)

// InventoryError family.
var (
	ErrListBottles  = errors.New("list wine bottles failed")
	ErrCreateBottle = errors.New("create wine bottle failed")
	ErrDeleteBottle = errors.New("delete wine bottle failed")
)

// ErrNilDraft is returned by Create when called without a draft.
var ErrNilDraft = errors.New("wine bottle draft is nil")

// IsAuthError reports whether err belongs to the AuthError family.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrSignup) || errors.Is(err, ErrLogin) || errors.Is(err, ErrLogout)
}

// IsInventoryError reports whether err belongs to the InventoryError family.
func IsInventoryError(err error) bool {
	return errors.Is(err, ErrListBottles) || errors.Is(err, ErrCreateBottle) || errors.Is(err, ErrDeleteBottle)
}

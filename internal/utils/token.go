// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenSubject returns a human-readable identity embedded in a bearer token,
// for display only. The token is opaque to the client: no signature or expiry
// check is made, and a token that is not a JWT yields "".
//
// The "email" claim is preferred, then the standard "sub" claim.
func TokenSubject(tokenString string) string {
	if tokenString == "" {
		return ""
	}

	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return ""
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}

	if email, ok := claims["email"].(string); ok && email != "" {
		return email
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}

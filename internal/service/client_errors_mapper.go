// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/wine-cellar/internal/adapter"
)

var statusErrors = []error{
	adapter.ErrBadRequest,
	adapter.ErrUnauthorized,
	adapter.ErrForbidden,
	adapter.ErrNotFound,
	adapter.ErrConflict,
	adapter.ErrInternalServerError,
	adapter.ErrBadGateway,
	adapter.ErrUnexpectedStatus,
}

// isRejectedByServer reports whether err carries a non-success HTTP status
// returned by the remote API, as opposed to a network, file or decode error.
func isRejectedByServer(err error) bool {
	for _, target := range statusErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// wrapAdapterError tags err with the service-level sentinel while keeping
// the adapter error reachable through errors.Is.
func wrapAdapterError(sentinel, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}

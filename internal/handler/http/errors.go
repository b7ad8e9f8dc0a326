// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is returned when a request body is not a JSON object.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrUnknownLocation is returned when the "location" query parameter
	// names no machine category.
	ErrUnknownLocation = errors.New("unknown machine location")

	// ErrSyncUnavailable is returned when the server runs without a sync
	// orchestrator.
	ErrSyncUnavailable = errors.New("sync is not available")
)

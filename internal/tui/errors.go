// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-inventory-keeper/internal/adapter"
	"github.com/MKhiriev/go-inventory-keeper/internal/service"
)

func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case adapter.IsUnavailable(err), errors.Is(err, service.ErrNoLiveServer):
		return "Server unavailable, working offline"
	case errors.Is(err, service.ErrRecordNotFound):
		return "Record not found"
	}
	return err.Error()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer used to talk to the inventory
// REST API, both on the live server and on the local fallback server.
//
// The primary abstraction is [ServerAdapter]. Every call takes the base URL
// explicitly: the connectivity resolver decides per request which server is
// targeted, so the adapter itself holds no notion of "current server".
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling. [IsUnavailable] separates "could not reach the server" from
// "the server said no".
package adapter

import (
	"context"

	"github.com/MKhiriev/go-inventory-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with an inventory REST server.
type ServerAdapter interface {
	// List fetches one page of category q.Category filtered, sorted and
	// paginated as described by q.
	List(ctx context.Context, base string, q models.Query) (models.Page, error)

	// Detail fetches a single record. Returns [ErrNotFound] (wrapped) when
	// the record does not exist.
	Detail(ctx context.Context, base string, category models.Category, id string) (models.Record, error)

	// Filters fetches the filter option lists for machine listings.
	Filters(ctx context.Context, base string) (models.FilterOptions, error)

	// Locations returns the ids of machines with the given serial number in
	// each machine category.
	Locations(ctx context.Context, base string, serial string) (models.MachineLocations, error)

	// Create stores a new record and returns the stored result, which
	// carries the server-assigned id.
	Create(ctx context.Context, base string, category models.Category, item models.Record) (models.Record, error)

	// Update applies patch to the record with the given id.
	Update(ctx context.Context, base string, category models.Category, id string, patch models.Record) (models.Record, error)

	// Delete removes the record with the given id.
	Delete(ctx context.Context, base string, category models.Category, id string) error

	// Archive moves the located machine id into the archive. payload carries
	// the archive-specific fields.
	Archive(ctx context.Context, base string, id string, payload models.Record) (models.Record, error)

	// Sell moves the located machine id into the sold category.
	Sell(ctx context.Context, base string, id string, payload models.Record) (models.Record, error)

	// Probe issues a GET to the absolute url and succeeds on any 2xx
	// response.
	Probe(ctx context.Context, url string) error

	// Replay sends a queued outbox entry to the server, tagging it with the
	// entry's operation id as the idempotency key. For creates the result
	// carries the permanent id assigned by the server.
	Replay(ctx context.Context, base string, entry models.OutboxEntry) (models.ReplayResult, error)
}

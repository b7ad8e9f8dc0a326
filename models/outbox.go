// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// TempIDPrefix marks identifiers assigned locally to records whose creation
// has not yet been confirmed by the server.
const TempIDPrefix = "tmp-"

// IsTempID reports whether id was assigned locally.
func IsTempID(id string) bool {
	return strings.HasPrefix(id, TempIDPrefix)
}

// Method is the kind of mutation an [OutboxEntry] records.
type Method string

const (
	MethodCreate Method = "create"
	MethodUpdate Method = "update"
	MethodDelete Method = "delete"
)

// OutboxEntry is one pending mutation intent recorded while the live server
// was unreachable.
type OutboxEntry struct {
	// Seq orders entries; replay happens strictly in ascending Seq. The
	// store assigns it when the entry is first persisted.
	Seq int64 `json:"seq"`

	// OpID is a client-generated operation id sent as the Idempotency-Key
	// header so the server can recognise a retried mutation.
	OpID string `json:"opId"`

	Method   Method   `json:"method"`
	Category Category `json:"category"`

	// ID is the target record id. For creates it holds the id assigned at
	// enqueue time, which is temporary unless the caller supplied a real one.
	ID string `json:"id"`

	// Payload is the full item for creates and the patch for updates.
	// Deletes carry an optional payload with routing hints (e.g. location).
	Payload Record `json:"payload,omitempty"`

	// Attempts counts failed replays of this entry.
	Attempts int `json:"attempts"`

	CreatedAt time.Time `json:"createdAt"`

	// Revision counts persisted rewrites of the entry. A replayed entry is
	// only retired if its revision is unchanged.
	Revision int64 `json:"revision"`
}

// Temporary reports whether the entry targets a locally assigned id.
func (e OutboxEntry) Temporary() bool {
	return IsTempID(e.ID)
}

// ReplayResult describes the outcome of replaying one entry against the
// server.
type ReplayResult struct {
	// ID is the permanent id assigned by the server to a created record.
	// Empty for updates and deletes.
	ID string
}

// OutboxChange is a set of edits applied to the persisted outbox in one
// transaction.
type OutboxChange struct {
	// Removed lists the sequence numbers of entries to delete.
	Removed []int64
	// Updated holds rewritten entries, matched by Seq.
	Updated []OutboxEntry
	// Added holds new entries; their Seq is ignored and assigned by the
	// store in order.
	Added []OutboxEntry
}

// Empty reports whether c changes nothing.
func (c OutboxChange) Empty() bool {
	return len(c.Removed) == 0 && len(c.Updated) == 0 && len(c.Added) == 0
}

// Valid reports whether m is one of the known methods.
func (m Method) Valid() bool {
	switch m {
	case MethodCreate, MethodUpdate, MethodDelete:
		return true
	}
	return false
}

// Mutation is a change requested by a caller, before it is sent to a server
// or recorded in the outbox.
type Mutation struct {
	Method   Method
	Category Category
	ID       string
	Payload  Record
}

package service

import "errors"

var (
	// ErrInvalidDataProvided wraps every validation failure of a query or
	// mutation rejected before it reached a server or the outbox.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrVersionIsNotSpecified is returned by [NewAppInfoService] when the
	// build carries no version.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrRecordNotFound is returned by local detail lookups when no record
	// with the id exists in the overlaid snapshot.
	ErrRecordNotFound = errors.New("record not found")

	// ErrConflictedTarget marks a pending update whose target id is absent
	// from the base list. It is only logged; the update is dropped from the
	// view.
	ErrConflictedTarget = errors.New("pending update targets a missing record")

	// ErrNoLiveServer is returned by sync operations on hosts without a
	// configured live server.
	ErrNoLiveServer = errors.New("no live server configured")
)

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidCategory = errors.New("invalid record category")
	ErrInvalidMethod   = errors.New("invalid mutation method")
	ErrEmptyID         = errors.New("record id is required")
	ErrEmptyPayload    = errors.New("payload is required")
	ErrNoSource        = errors.New("source machine id or machine document is required")
	ErrInvalidPage     = errors.New("invalid page")
	ErrInvalidPageSize = errors.New("invalid page size")
	ErrInvalidSortBy   = errors.New("invalid sort field")
)

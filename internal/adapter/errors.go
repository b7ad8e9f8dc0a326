package adapter

import "errors"

var (
	// ErrNetworkUnavailable is returned when the target server cannot be
	// reached at all: connection refused, DNS failure or timeout.
	ErrNetworkUnavailable = errors.New("network unavailable")

	// ErrBadRequest is returned when the server rejects the request as
	// malformed (400).
	ErrBadRequest = errors.New("bad request")

	// ErrUnauthorized is returned on 401.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrForbidden is returned on 403.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound is returned when the target record does not exist (404).
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned on 409.
	ErrConflict = errors.New("conflict")

	// ErrUnprocessable is returned when the server fails record validation
	// (422).
	ErrUnprocessable = errors.New("unprocessable entity")

	// ErrInternalServerError is returned on 500.
	ErrInternalServerError = errors.New("internal server error")

	// ErrBadGateway is returned on 502.
	ErrBadGateway = errors.New("bad gateway")

	// ErrServiceUnavailable is returned on 503 and 504.
	ErrServiceUnavailable = errors.New("service unavailable")

	// ErrInvalidAddress is returned for an empty or unparsable base URL.
	ErrInvalidAddress = errors.New("invalid server address")

	// ErrDecodingResponse is returned when a 2xx body is not the expected
	// envelope.
	ErrDecodingResponse = errors.New("error decoding response")
)

// IsUnavailable reports whether err means the server could not serve the
// request at all, as opposed to rejecting it. Callers fall back to local
// data or queue the mutation only in this case.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrNetworkUnavailable) ||
		errors.Is(err, ErrBadGateway) ||
		errors.Is(err, ErrServiceUnavailable)
}

// IsValidation reports whether the server rejected the request content.
func IsValidation(err error) bool {
	return errors.Is(err, ErrBadRequest) || errors.Is(err, ErrUnprocessable)
}

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// IdempotencyKeyHeader carries the client-generated operation id on
// replayed mutations.
const IdempotencyKeyHeader = "Idempotency-Key"

// HTTPClient is a wrapper around resty.Client. It embeds *resty.Client to
// expose all of its methods directly.
//
// Requests are built with absolute URLs, so a single client can talk to the
// live server and the local fallback server.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client that sends and accepts JSON and gives up on
// a request after timeout. A zero timeout leaves requests unbounded, callers
// then rely on their context deadline.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json").
		SetTimeout(timeout)

	return &HTTPClient{Client: client}
}

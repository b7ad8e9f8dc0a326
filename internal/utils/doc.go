// Package utils holds small helpers shared by the local server, the server
// adapter and the outbox: JSON response writing, the resty-based HTTP client
// wrapper and identifier generation.
package utils

package server

import "errors"

var (
	// errNoRouter is returned when the local fallback server has no routes to serve.
	errNoRouter = errors.New("local server has no router")
	// errNoListenAddress is returned when SERVER_ADDRESS is empty.
	errNoListenAddress = errors.New("local server has no listen address")
)

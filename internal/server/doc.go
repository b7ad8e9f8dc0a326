// Package server runs the local fallback HTTP server.
//
// The server can run standalone until a termination signal arrives
// ([Server.RunServer]) or embedded in another process for as long as a
// context lives ([Server.Serve]). Both paths shut down gracefully.
package server

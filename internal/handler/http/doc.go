// Package http implements the local fallback server: the inventory REST
// contract served from the snapshots and the outbox of this machine.
//
// Reads are answered by the local query engine, mutations are recorded in
// the outbox and acknowledged as queued. Request tracing, access logging,
// response compression and panic recovery are handled here before requests
// reach the service layer.
package http

// Package app assembles the components shared by the terminal client and the
// standalone local fallback server: local storages, the server adapter, the
// connectivity resolver, the services and the background workers.
package app

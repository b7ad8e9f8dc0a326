// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It runs the terminal browser in the foreground and the background workers
// (connectivity resolver, force-local flag watcher, sync orchestrator and,
// on packaged hosts, the in-process local fallback server) for as long as
// the browser is open.
package client

// Package config provides configuration loading, merging, and validation
// facilities for the inventory client and the local fallback server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The main entry points are [GetStructuredConfig] for the local server
// runtime and [GetClientConfig] for the terminal client.
package config

// Package server holds the HTTP status server configuration.
//
// The `serve` command exposes read-only views of the reconciler (lock state,
// plan preview, metrics). This package only defines its settings.
//
// # Configuration
//
// The Config struct defines the HTTP port and the API key checked by the auth
// middleware.
package server

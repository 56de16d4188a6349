// Package status exposes read-only views of the reconciler over HTTP.
//
// Nothing served here takes the reconciliation lock or writes to the
// database, so the server can run next to the CLI.
//
// # HTTP Endpoints
//
//   - GET /status/lock : Whether a run currently holds the lock.
//   - GET /status/plan : The plan an apply of the configured manifests would
//     execute. Previews are cached for the configured TTL; ?refresh=true
//     recomputes it.
//   - GET /status/schema : Columns missing from the managed tables.
//   - GET /metrics : Prometheus metrics.
package status

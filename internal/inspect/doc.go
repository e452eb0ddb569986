// Package inspect implements the snapshot inspector server behind
// "sift serve".
//
// The server watches a snapshot directory, exposes the snapshots over a
// small JSON API, evaluates selector queries against them, and pushes
// change notifications to connected clients over WebSocket so viewers
// can refresh as snapshots are rewritten.
//
// Endpoints:
//
//   - GET  /healthz              liveness plus connected client count
//   - GET  /metrics              Prometheus metrics
//   - GET  /api/snapshots        list snapshot names
//   - GET  /api/snapshots/{name} raw snapshot JSON
//   - POST /api/query            evaluate a selector against a snapshot
//   - GET  /ws                   WebSocket change feed
//
// Queries are traced with OpenTelemetry and counted in Prometheus; both
// are no-ops unless the host process configures exporters or scrapes
// the metrics endpoint.
package inspect

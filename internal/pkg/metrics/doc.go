// Package metrics exposes Prometheus collectors for crypto operations and the HTTP handler that serves them.
package metrics

// Package metrics exports the outcome of the last update as Prometheus gauges.
//
// The tool runs once and exits, so nothing is served over HTTP. When
// metrics.textfile is configured the gauges are written to that file for the
// node-exporter textfile collector to pick up.
package metrics

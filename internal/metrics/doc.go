// Package metrics exposes field activity as Prometheus metrics.
//
// A Collector is an engine.Observer: attach it to every field with
// engine.WithObserver and it counts accepted and rejected keystrokes,
// deletions, pastes and validation failures per field name. The terminal
// app also feeds it render and input timings.
//
// Handler serves the registry over HTTP:
//
//	/metrics   Prometheus and OpenMetrics exposition (GET, HEAD)
//	/health    liveness probe, always "OK"
package metrics

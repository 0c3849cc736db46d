/*
Package metrics provides a client for creating custom metrics through the
host runtime.

The package exposes a constructor for Counter metric handles, backed by
protobuf payloads sent over waPC host calls.

Metric emission intentionally follows Prometheus-style ergonomics: Inc is
best-effort and does not return errors. Marshal or host-call failures are
treated as non-fatal and are swallowed to avoid impacting caller control
flow.
*/
package metrics

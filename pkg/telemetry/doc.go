// Package telemetry records per-query retrieval diagnostics to Parquet
// files for offline analysis of ranking and personalization quality.
package telemetry

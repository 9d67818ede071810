// Package store provides file-based persistence for datasets and reports.
//
// It contains concrete implementations of the domain storage interfaces,
// serialising data as JSON on disk. All methods are concurrency-safe via
// internal locking. Files live under the configured home directory:
//
//	<home>/datasets/<name>.json
//	<home>/reports/<id>.json
package store

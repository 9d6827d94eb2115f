// Package storage provides a convenience client for cloud object storage.
//
// It abstracts the underlying SDK behind a narrow Backend interface (Get,
// Put, Exists) with implementations for MinIO/S3-compatible endpoints and
// Google Cloud Storage. The Client facade layers format handling on top:
// file transfer, plain text, JSON documents, and newline-delimited JSON.
//
// # Bucket resolution
//
// Every operation takes a bucket argument; an empty string falls back to the
// configured default bucket. If neither is set the call fails with
// ErrBucketRequired before any backend call is made. A configured project id
// is required for all operations (ErrProjectRequired otherwise).
//
// # Errors
//
// Failures are distinguishable by kind: ErrProjectRequired and
// ErrBucketRequired for configuration, ErrObjectNotFound for missing remote
// objects, DecodeError for non-UTF-8 contents, and ParseError for invalid
// JSON (with the offending line for NDJSON). Backend transport errors are
// wrapped with the operation and object reference and preserved for
// errors.Is/errors.As. The client performs no retries.
//
// # Usage
//
//	backend, err := storage.NewBackend(ctx, cfg)
//	client := storage.NewClient(backend, cfg, logger)
//	records, err := client.ReadNDJSON(ctx, "", "employees.ndjson")
package storage

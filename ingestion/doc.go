// Package ingestion provides pipeline orchestration for loading the catalog.
//
// The Pipeline type manages the ingestion workflow for catalog items:
//   - Parsing items from CSV exports
//   - Adding items to storage with content-derived IDs
//   - Generating item embeddings asynchronously from weighted item text
//
// Embedding runs on a worker pool and is retried with backoff; errors during
// async processing are logged but do not fail the ingestion operation.
package ingestion

package ingestion

import "errors"

var (
	// ErrCatalogRepositoryRequired is returned when a catalog repository is not provided.
	ErrCatalogRepositoryRequired = errors.New("catalog repository required")

	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")

	// ErrInvalidMaxAttempts is returned when a retry is configured with a non-positive attempt count.
	ErrInvalidMaxAttempts = errors.New("max attempts must be positive")

	// ErrMissingHeader is returned when the CSV input has no header row.
	ErrMissingHeader = errors.New("missing CSV header row")

	// ErrUnknownColumn is returned when the CSV header lacks a required column.
	ErrUnknownColumn = errors.New("required CSV column missing")
)

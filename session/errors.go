package session

import "errors"

var (
	// ErrRequirementRepositoryRequired is returned when a requirement repository is not provided.
	ErrRequirementRepositoryRequired = errors.New("requirement repository required")

	// ErrEngineRequired is returned when a search engine is not provided.
	ErrEngineRequired = errors.New("search engine required")

	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")
)

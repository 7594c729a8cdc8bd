package ai

import (
	"context"

	"github.com/poiesic/planmatch/core"
)

// Embedder generates vector embeddings from text for semantic similarity ranking.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// For a given model version the result is deterministic for the same input.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// RequirementExtractor turns one conversational turn of free text into a
// partial requirement delta. Implementations must be thread-safe.
type RequirementExtractor interface {
	// ExtractRequirements analyzes text and extracts whichever of the six
	// requirement fields are mentioned. Fields that are not mentioned stay
	// unset in the returned delta; unknown fields in the model output are
	// ignored. Malformed numeric values are an error, never silently dropped.
	ExtractRequirements(ctx context.Context, text string) (core.RequirementState, error)
}

// FollowupGenerator produces a follow-up question asking the user for the
// requirement fields that are still missing.
type FollowupGenerator interface {
	// FollowupQuestion generates a single clarifying question covering the
	// given missing fields. Field names arrive in canonical order.
	FollowupQuestion(ctx context.Context, missingFields []string) (string, error)
}

// AIProvider aggregates AI services for convenient initialization and lifecycle management.
// A provider creates and manages the embedding, extraction, and follow-up
// services, ensuring they share configuration and resources appropriately.
type AIProvider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// RequirementExtractor returns the requirement extraction service.
	// The returned RequirementExtractor is safe for concurrent use.
	RequirementExtractor() RequirementExtractor

	// FollowupGenerator returns the follow-up question service.
	FollowupGenerator() FollowupGenerator

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}

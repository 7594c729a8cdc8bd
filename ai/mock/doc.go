// Package mock provides test double implementations of AI service interfaces.
//
// This package contains mock implementations of ai.Embedder,
// ai.RequirementExtractor, ai.FollowupGenerator, and ai.AIProvider for use in
// unit tests. The mocks allow tests to run without external AI service
// dependencies and enable controlled, deterministic behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	mockProvider := mock.NewMockProvider()
//	vector, err := mockProvider.Embedder().EmbedText(ctx, "test")
//
//	// Custom behavior injection
//	mockExtractor := mock.NewMockRequirementExtractor()
//	mockExtractor.ExtractRequirementsFunc = func(ctx context.Context, text string) (core.RequirementState, error) {
//	    price := 50.0
//	    return core.RequirementState{TargetPrice: &price}, nil
//	}
//
//	// Check call counts
//	count := mockExtractor.CallCount()
//
// # Default Behavior
//
// The mock implementations provide sensible defaults:
//
//   - MockEmbedder: Returns deterministic vectors based on text hash
//   - MockRequirementExtractor: Scans tokens for "$<price>", "<n>gb", "byod"
//   - MockFollowupGenerator: Renders a canned question naming the missing fields
//   - MockProvider: Aggregates the three mock services
package mock

package mock

import (
	"context"
	"strconv"
	"strings"

	"github.com/poiesic/planmatch/core"
)

// MockRequirementExtractor is a test double for ai.RequirementExtractor.
// It allows custom behavior injection via function fields.
type MockRequirementExtractor struct {
	// ExtractRequirementsFunc is called by ExtractRequirements if set.
	// If nil, uses default simple token scanning.
	ExtractRequirementsFunc func(ctx context.Context, text string) (core.RequirementState, error)

	callCount int
}

// NewMockRequirementExtractor creates a mock extractor with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockExtractor().
func NewMockRequirementExtractor() *MockRequirementExtractor {
	return &MockRequirementExtractor{}
}

// ExtractRequirements extracts a simple mock delta from text.
// Default behavior: scans tokens for "$<price>", "<n>gb", and "byod".
func (m *MockRequirementExtractor) ExtractRequirements(ctx context.Context, text string) (core.RequirementState, error) {
	m.callCount++

	if m.ExtractRequirementsFunc != nil {
		return m.ExtractRequirementsFunc(ctx, text)
	}

	var delta core.RequirementState
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, ".,!?;:\"'()[]{}")

		switch {
		case strings.HasPrefix(word, "$"):
			if price, err := strconv.ParseFloat(word[1:], 64); err == nil {
				delta.TargetPrice = &price
			}
		case strings.HasSuffix(word, "gb"):
			if data, err := strconv.ParseFloat(strings.TrimSuffix(word, "gb"), 64); err == nil {
				delta.TargetData = &data
			}
		case word == "byod":
			byod := true
			delta.BYOD = &byod
		}
	}

	return delta, nil
}

// CallCount returns the number of times ExtractRequirements was called.
func (m *MockRequirementExtractor) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockRequirementExtractor) Reset() {
	m.callCount = 0
	m.ExtractRequirementsFunc = nil
}

package mock

import (
	"context"
	"strings"
)

// MockFollowupGenerator is a test double for ai.FollowupGenerator.
// It allows custom behavior injection via function fields.
type MockFollowupGenerator struct {
	// FollowupQuestionFunc is called by FollowupQuestion if set.
	// If nil, renders a canned question naming the missing fields.
	FollowupQuestionFunc func(ctx context.Context, missingFields []string) (string, error)

	callCount int
}

// NewMockFollowupGenerator creates a mock follow-up generator with default behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockFollowupGenerator() *MockFollowupGenerator {
	return &MockFollowupGenerator{}
}

// FollowupQuestion renders a deterministic question naming the missing fields.
func (m *MockFollowupGenerator) FollowupQuestion(ctx context.Context, missingFields []string) (string, error) {
	m.callCount++

	if m.FollowupQuestionFunc != nil {
		return m.FollowupQuestionFunc(ctx, missingFields)
	}

	if len(missingFields) == 0 {
		return "", nil
	}
	return "Could you tell me the customer's " + strings.Join(missingFields, ", ") + "?", nil
}

// CallCount returns the number of times FollowupQuestion was called.
func (m *MockFollowupGenerator) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockFollowupGenerator) Reset() {
	m.callCount = 0
	m.FollowupQuestionFunc = nil
}

// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/planmatch/ai"
	"github.com/poiesic/planmatch/core"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// RequirementExtractor implements ai.RequirementExtractor using
// OpenAI-compatible chat APIs.
type RequirementExtractor struct {
	client llms.Model
	logger *slog.Logger
}

// requirementDelta is an internal type used for JSON unmarshaling.
// It matches the structure expected from the LLM. A numeric field that
// arrives as anything but a JSON number fails decoding, which is surfaced
// as an extraction error rather than dropped.
type requirementDelta struct {
	CurrentProvider *string  `json:"current_provider"`
	TargetPrice     *float64 `json:"target_price"`
	TargetData      *float64 `json:"target_data"`
	Roaming         []string `json:"roaming"`
	MinDataGB       *float64 `json:"min_data_gb"`
	BYOD            *bool    `json:"byod"`
}

// newRequirementExtractor is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newRequirementExtractor(config *ai.Config) (*RequirementExtractor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Create OpenAI client configured for chat/extraction
	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.ChatHost),
		openai.WithToken("none"),
		openai.WithModel(config.ChatModel),
	)
	if err != nil {
		return nil, err
	}

	return &RequirementExtractor{
		client: client,
		logger: slog.Default().With("component", "openai-extractor"),
	}, nil
}

// NewRequirementExtractor creates a new requirement extractor using the provided configuration.
//
// Returns ai.RequirementExtractor interface to enforce abstraction.
func NewRequirementExtractor(config *ai.Config) (ai.RequirementExtractor, error) {
	return newRequirementExtractor(config)
}

// ExtractRequirements extracts a partial requirement delta from free text
// using an LLM. Unknown fields in the model output are rejected by the
// schema prompt and ignored by decoding; malformed numerics fail the call.
func (e *RequirementExtractor) ExtractRequirements(ctx context.Context, text string) (core.RequirementState, error) {
	systemPrompt := fmt.Sprintf(extractionPromptTemplate, extractionResponseSchema)
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(text),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var delta requirementDelta
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := e.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			e.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return core.RequirementState{}, fmt.Errorf("%w: %w", core.ErrExtraction, err)
		}

		if len(response.Choices) < 1 {
			e.logger.Debug("no choices returned from model")
			return core.RequirementState{}, nil
		}

		choice := response.Choices[0]

		// Strip markdown code fences if present
		responseText := strings.TrimSpace(choice.Content)
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)

		// Try to repair common JSON issues
		responseText = repairJSON(responseText)

		delta = requirementDelta{}
		if err := json.Unmarshal([]byte(responseText), &delta); err != nil {
			lastErr = err
			e.logger.Warn("error parsing extractor response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		// Success
		lastErr = nil
		break
	}

	if lastErr != nil {
		e.logger.Error("failed to parse extractor response after retries", "err", lastErr)
		return core.RequirementState{}, fmt.Errorf("%w: %w", core.ErrExtraction, lastErr)
	}

	extracted := core.RequirementState{
		CurrentProvider: delta.CurrentProvider,
		TargetPrice:     delta.TargetPrice,
		TargetData:      delta.TargetData,
		Roaming:         delta.Roaming,
		MinDataGB:       delta.MinDataGB,
		BYOD:            delta.BYOD,
	}

	e.logger.Debug("extracted requirement delta",
		"missing", len(extracted.MissingFields()))

	return extracted, nil
}

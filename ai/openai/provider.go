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
	"log/slog"

	"github.com/poiesic/planmatch/ai"
)

// Provider implements ai.AIProvider using OpenAI-compatible services.
// It manages embedder, extractor, and follow-up generator instances.
type Provider struct {
	config    *ai.Config
	embedder  *Embedder
	extractor *RequirementExtractor
	followup  *FollowupGenerator
	logger    *slog.Logger
}

// NewProvider creates a new AI provider with OpenAI-compatible services.
// The config is validated and normalized before use.
//
// Returns ai.AIProvider interface (not *Provider) to enforce abstraction
// and prevent coupling to OpenAI-specific implementation details.
func NewProvider(config *ai.Config) (ai.AIProvider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Create embedder (using internal constructor for concrete type)
	embedder, err := newEmbedder(config)
	if err != nil {
		return nil, err
	}

	// Create requirement extractor (using internal constructor for concrete type)
	extractor, err := newRequirementExtractor(config)
	if err != nil {
		return nil, err
	}

	// Create follow-up generator (using internal constructor for concrete type)
	followup, err := newFollowupGenerator(config)
	if err != nil {
		return nil, err
	}

	return &Provider{
		config:    config,
		embedder:  embedder,
		extractor: extractor,
		followup:  followup,
		logger:    slog.Default().With("component", "openai-provider"),
	}, nil
}

// Embedder returns the text embedding service.
func (p *Provider) Embedder() ai.Embedder {
	return p.embedder
}

// RequirementExtractor returns the requirement extraction service.
func (p *Provider) RequirementExtractor() ai.RequirementExtractor {
	return p.extractor
}

// FollowupGenerator returns the follow-up question service.
func (p *Provider) FollowupGenerator() ai.FollowupGenerator {
	return p.followup
}

// Close releases resources held by the provider.
// Currently a no-op as the underlying clients don't require explicit cleanup.
func (p *Provider) Close() error {
	p.logger.Debug("closing OpenAI provider")
	return nil
}

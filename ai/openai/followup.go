package openai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/planmatch/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// FollowupGenerator implements ai.FollowupGenerator using OpenAI-compatible chat APIs.
type FollowupGenerator struct {
	client llms.Model
	logger *slog.Logger
}

// newFollowupGenerator is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newFollowupGenerator(config *ai.Config) (*FollowupGenerator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.ChatHost),
		openai.WithToken("none"),
		openai.WithModel(config.ChatModel),
	)
	if err != nil {
		return nil, err
	}

	return &FollowupGenerator{
		client: client,
		logger: slog.Default().With("component", "openai-followup"),
	}, nil
}

// NewFollowupGenerator creates a new follow-up generator using the provided configuration.
//
// Returns ai.FollowupGenerator interface to enforce abstraction.
func NewFollowupGenerator(config *ai.Config) (ai.FollowupGenerator, error) {
	return newFollowupGenerator(config)
}

// FollowupQuestion generates one clarifying question for the missing fields.
func (g *FollowupGenerator) FollowupQuestion(ctx context.Context, missingFields []string) (string, error) {
	if len(missingFields) == 0 {
		return "", nil
	}

	prompt := fmt.Sprintf(followupPromptTemplate, strings.Join(missingFields, ", "))
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(prompt),
			},
		},
	}

	response, err := g.client.GenerateContent(ctx, content, llms.WithTemperature(0.3))
	if err != nil {
		g.logger.Error("failed to generate follow-up question", "err", err)
		return "", err
	}

	if len(response.Choices) < 1 {
		g.logger.Warn("no choices returned from model")
		return "", nil
	}

	return strings.TrimSpace(response.Choices[0].Content), nil
}

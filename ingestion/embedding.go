package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/poiesic/planmatch/ai"
	"github.com/poiesic/planmatch/core"
	"github.com/poiesic/planmatch/storage"
)

const (
	embedMaxAttempts = 3
	embedBaseDelay   = 500 * time.Millisecond
)

// embeddingProcessor generates embeddings for catalog items.
type embeddingProcessor struct {
	catalogRepository storage.CatalogRepository
	embedder          ai.Embedder
	logger            *slog.Logger
}

// newEmbeddingProcessor creates a new embedding processor.
func newEmbeddingProcessor(catalogRepository storage.CatalogRepository, embedder ai.Embedder, logger *slog.Logger) (*embeddingProcessor, error) {
	if catalogRepository == nil {
		return nil, ErrCatalogRepositoryRequired
	}
	if embedder == nil {
		return nil, fmt.Errorf("embedder required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &embeddingProcessor{
		catalogRepository: catalogRepository,
		embedder:          embedder,
		logger:            logger.With("processor", "embeddings"),
	}, nil
}

// process generates and stores embeddings for the specified catalog items.
// The embedding call itself is retried with backoff; storage errors are not.
func (ep *embeddingProcessor) process(ctx context.Context, ids ...core.ID) error {
	ep.logger.Info("processing items for embeddings", "items", len(ids))

	items, err := ep.catalogRepository.GetItems(ctx, ids...)
	if err != nil {
		ep.logger.Error("error retrieving catalog items", "err", err)
		return err
	}
	if len(items) == 0 {
		return nil
	}

	texts := make([]string, len(items))
	for i, item := range items {
		texts[i] = ItemText(item)
	}

	ep.logger.Debug("generating embeddings for catalog items", "items", len(texts))
	var embeddings [][]float32
	err = RetryWithBackoff(ctx, func() error {
		var embedErr error
		embeddings, embedErr = ep.embedder.EmbedTexts(ctx, texts)
		return embedErr
	}, embedMaxAttempts, embedBaseDelay)
	if err != nil {
		ep.logger.Error("error generating embeddings", "err", err)
		return err
	}

	if len(embeddings) != len(items) {
		return fmt.Errorf("embedding result mismatch. expected %d, received %d", len(items), len(embeddings))
	}

	for i := range embeddings {
		items[i].Vector = embeddings[i]
	}

	_, err = ep.catalogRepository.UpdateItems(ctx, items...)
	return err
}

package ingestion

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"runtime"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/planmatch/ai"
	"github.com/poiesic/planmatch/core"
	"github.com/poiesic/planmatch/storage"
)

// Pipeline orchestrates catalog ingestion: storing items, then generating
// their embeddings asynchronously on a worker pool.
type Pipeline struct {
	catalogRepository storage.CatalogRepository
	embeddingPool     *ants.Pool
	embeddingProc     *embeddingProcessor
	logger            *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent processing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.embeddingPool != nil {
			p.embeddingPool.Release()
		}

		embeddingPool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.embeddingPool = embeddingPool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(
	catalogRepository storage.CatalogRepository,
	provider ai.AIProvider,
	opts ...Option,
) (*Pipeline, error) {
	if catalogRepository == nil {
		return nil, ErrCatalogRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	embeddingPool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		catalogRepository: catalogRepository,
		embeddingPool:     embeddingPool,
		logger:            slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	embeddingProc, err := newEmbeddingProcessor(catalogRepository, provider.Embedder(), p.logger)
	if err != nil {
		p.Release()
		return nil, err
	}
	p.embeddingProc = embeddingProc

	return p, nil
}

// Ingest adds catalog items and schedules their embeddings asynchronously.
// Items already present (same provider, name, and code) are skipped and
// logged rather than failing the batch. Returns the number of items stored.
// Errors during async embedding are logged but do not fail the ingestion.
func (p *Pipeline) Ingest(ctx context.Context, items []*core.CatalogItem) (int, error) {
	var stored []*core.CatalogItem
	for _, item := range items {
		added, err := p.catalogRepository.AddItems(ctx, item)
		if err != nil {
			if errors.Is(err, storage.ErrDuplicateKey) {
				p.logger.Warn("skipping duplicate catalog item", "item", item.Key())
				continue
			}
			return len(stored), err
		}
		stored = append(stored, added...)
	}

	if len(stored) == 0 {
		return 0, nil
	}

	ids := make([]core.ID, len(stored))
	for i, item := range stored {
		ids[i] = item.Id
	}

	p.embeddingPool.Submit(func() {
		if err := p.embeddingProc.process(context.Background(), ids...); err != nil {
			p.logger.Error("error processing embeddings", "err", err)
		}
	})

	return len(stored), nil
}

// IngestCSV parses catalog items from CSV data and ingests them.
func (p *Pipeline) IngestCSV(ctx context.Context, r io.Reader) (int, error) {
	items, err := ParseCSV(r)
	if err != nil {
		return 0, err
	}
	return p.Ingest(ctx, items)
}

// Reindex regenerates embeddings for every stored catalog item. Runs
// synchronously; use after switching embedding models.
func (p *Pipeline) Reindex(ctx context.Context) (int, error) {
	items, err := p.catalogRepository.ListItems(ctx)
	if err != nil {
		return 0, err
	}
	if len(items) == 0 {
		return 0, nil
	}

	ids := make([]core.ID, len(items))
	for i, item := range items {
		ids[i] = item.Id
	}

	if err := p.embeddingProc.process(ctx, ids...); err != nil {
		return 0, err
	}
	return len(items), nil
}

// Release releases resources including worker pools.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.embeddingPool != nil {
		p.embeddingPool.Release()
	}
}

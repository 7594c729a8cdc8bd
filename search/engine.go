package search

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/panjf2000/ants/v2"
	"golang.org/x/sync/errgroup"

	"github.com/poiesic/planmatch/ai"
	"github.com/poiesic/planmatch/core"
	"github.com/poiesic/planmatch/storage"
)

const (
	defaultPoolSize    = 4
	defaultFilterLimit = 100
)

// Engine runs the two-stage search: hard predicate filtering over the
// catalog, then similarity ranking of the survivors against the embedded
// query text. The engine holds no mutable state between calls; concurrent
// searches are independent.
type Engine struct {
	catalog     storage.CatalogRepository
	embedder    ai.Embedder
	pool        *ants.Pool
	filterLimit int
	logger      *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// WithPoolSize sets the size of the worker pool embedding calls run on.
func WithPoolSize(size int) Option {
	return func(e *Engine) error {
		if size <= 0 {
			return fmt.Errorf("pool size must be positive, got %d", size)
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		e.pool.Release()
		e.pool = pool
		return nil
	}
}

// WithFilterLimit caps how many items one predicate filter pass may return.
func WithFilterLimit(limit int) Option {
	return func(e *Engine) error {
		if limit <= 0 {
			return fmt.Errorf("filter limit must be positive, got %d", limit)
		}
		e.filterLimit = limit
		return nil
	}
}

// NewEngine creates a new search engine.
func NewEngine(catalog storage.CatalogRepository, provider ai.AIProvider, opts ...Option) (*Engine, error) {
	if catalog == nil {
		return nil, ErrCatalogRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	pool, err := ants.NewPool(defaultPoolSize)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		catalog:     catalog,
		embedder:    provider.Embedder(),
		pool:        pool,
		filterLimit: defaultFilterLimit,
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			// Release whichever pool the engine currently holds; an earlier
			// option may already have swapped out the initial one.
			e.pool.Release()
			return nil, err
		}
	}

	return e, nil
}

// Close releases the embedding worker pool.
func (e *Engine) Close() error {
	e.pool.Release()
	return nil
}

// Search runs one search for up to k plans satisfying the requirement.
// Returns up to k candidates in presentation order.
func (e *Engine) Search(ctx context.Context, req *core.RequirementState, k int) (*core.SearchOutcome, error) {
	return e.SearchWithMonitor(ctx, req, k, nil)
}

// SearchWithMonitor runs one search with monitoring. The monitor receives
// callbacks at each stage of the search process.
//
// The requirement is validated before any catalog access. Filtering walks
// the relaxation ladder until a rung yields candidates; similarity ranking
// then selects the top k from that filtered set only, and the presentation
// ordering is applied last. Missing fields are always reported from the
// requirement as given, not from any relaxed copy.
func (e *Engine) SearchWithMonitor(ctx context.Context, req *core.RequirementState, k int, monitor SearchMonitor) (*core.SearchOutcome, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	if k <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidResultCount, k)
	}
	if err := core.ValidateRequirement(req); err != nil {
		return nil, err
	}

	missing := req.MissingFields()

	providers, err := e.catalog.Providers(ctx)
	if err != nil {
		e.logger.Error("error listing providers", "err", err)
		return nil, fmt.Errorf("%w: %w", core.ErrCatalogUnavailable, err)
	}

	queryText := BuildQueryText(req, providers)
	monitor.Start(queryText)

	// Embedding and filtering are independent until ranking needs both, so
	// run them in parallel. Embedding runs on the bounded worker pool.
	var (
		queryVec      []float32
		filtered      []*core.CatalogItem
		relaxedFields []string
	)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		queryVec, err = e.embedQuery(gctx, queryText)
		if err != nil {
			e.logger.Error("error embedding query text", "err", err)
		}
		return err
	})

	g.Go(func() error {
		var err error
		filtered, relaxedFields, err = e.filterWithRelaxation(gctx, req, monitor)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	ranked, err := newCandidateSet(filtered).rankBySimilarity(queryVec, k)
	if err != nil {
		return nil, err
	}
	monitor.AfterSimilarityRanking(ranked)

	outcome := &core.SearchOutcome{
		Plans:          orderForPresentation(ranked),
		FollowupNeeded: len(missing) > 0,
		MissingFields:  missing,
		RelaxedFields:  relaxedFields,
		Partial:        len(ranked) < k,
	}
	monitor.Finish(outcome)

	return outcome, nil
}

// filterWithRelaxation filters the catalog with the requirement's predicate,
// walking the relaxation ladder when a pass comes back empty. Returns the
// first non-empty candidate set together with the fields dropped to obtain
// it; nil relaxedFields means the unrelaxed requirement matched.
func (e *Engine) filterWithRelaxation(ctx context.Context, req *core.RequirementState, monitor SearchMonitor) ([]*core.CatalogItem, []string, error) {
	attempts := filterAttempts(req)
	tried := make([][]string, 0, len(attempts))

	for _, attempt := range attempts {
		pred := BuildPredicate(&attempt.state)
		monitor.AfterPredicateBuild(pred.Params())

		items, err := e.catalog.FilterItems(ctx, pred, e.filterLimit)
		if err != nil {
			e.logger.Error("error filtering catalog", "filter", pred.Params(), "err", err)
			return nil, nil, fmt.Errorf("%w: %w", core.ErrCatalogUnavailable, err)
		}

		monitor.AfterFilter(attempt.relaxedFields, len(items))
		tried = append(tried, attempt.relaxedFields)

		if len(items) > 0 {
			if len(attempt.relaxedFields) > 0 {
				e.logger.Info("matched after relaxation", "relaxed", attempt.relaxedFields, "matched", len(items))
			}
			return items, attempt.relaxedFields, nil
		}
	}

	return nil, nil, &NoResultsError{Attempts: tried}
}

// embedQuery runs the embedding call on the worker pool so slow embeddings
// cannot starve request goroutines, and honors context cancellation while
// waiting.
func (e *Engine) embedQuery(ctx context.Context, text string) ([]float32, error) {
	type embedResult struct {
		vec []float32
		err error
	}
	ch := make(chan embedResult, 1)

	if err := e.pool.Submit(func() {
		vec, err := e.embedder.EmbedText(ctx, text)
		ch <- embedResult{vec: vec, err: err}
	}); err != nil {
		return nil, err
	}

	select {
	case res := <-ch:
		return res.vec, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

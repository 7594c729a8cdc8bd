package search

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/planmatch/ai/mock"
	"github.com/poiesic/planmatch/core"
	"github.com/poiesic/planmatch/storage"
	"github.com/poiesic/planmatch/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestEngine builds an engine over an in-memory catalog seeded with items.
// The mock embedder returns a fixed 3-dim query vector so item vectors in
// tests stay small.
func newTestEngine(t *testing.T, items ...*core.CatalogItem) (*Engine, storage.CatalogRepository, func()) {
	t.Helper()

	catalogRepo, requirementRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)

	if len(items) > 0 {
		_, err = catalogRepo.AddItems(context.Background(), items...)
		require.NoError(t, err)
	}

	provider := mock.NewMockProvider()
	provider.(*mock.MockProvider).GetMockEmbedder().EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return []float32{1, 0, 0}, nil
	}

	engine, err := NewEngine(catalogRepo, provider)
	require.NoError(t, err)

	cleanup := func() {
		engine.Close()
		requirementRepo.Close()
		catalogRepo.Close()
		backend.Close()
	}
	return engine, catalogRepo, cleanup
}

func TestNewEngine(t *testing.T) {
	catalogRepo, requirementRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() {
		requirementRepo.Close()
		catalogRepo.Close()
		backend.Close()
	}()

	provider := mock.NewMockProvider()

	t.Run("valid configuration", func(t *testing.T) {
		engine, err := NewEngine(catalogRepo, provider)
		require.NoError(t, err)
		assert.NotNil(t, engine)
		engine.Close()
	})

	t.Run("with options", func(t *testing.T) {
		engine, err := NewEngine(catalogRepo, provider, WithPoolSize(2), WithFilterLimit(10), WithLogger(nil))
		require.NoError(t, err)
		assert.NotNil(t, engine)
		engine.Close()
	})

	t.Run("invalid pool size", func(t *testing.T) {
		_, err := NewEngine(catalogRepo, provider, WithPoolSize(0))
		assert.Error(t, err)
	})

	t.Run("invalid filter limit", func(t *testing.T) {
		_, err := NewEngine(catalogRepo, provider, WithFilterLimit(-1))
		assert.Error(t, err)
	})

	t.Run("option failure releases the replacement pool", func(t *testing.T) {
		var captured *Engine
		capture := Option(func(e *Engine) error {
			captured = e
			return nil
		})

		_, err := NewEngine(catalogRepo, provider, WithPoolSize(2), capture, WithFilterLimit(0))
		require.Error(t, err)
		require.NotNil(t, captured)
		assert.True(t, captured.pool.IsClosed(), "the pool installed by WithPoolSize must be released")
	})

	t.Run("nil catalog repository", func(t *testing.T) {
		_, err := NewEngine(nil, provider)
		assert.Equal(t, ErrCatalogRepositoryRequired, err)
	})

	t.Run("nil provider", func(t *testing.T) {
		_, err := NewEngine(catalogRepo, nil)
		assert.Equal(t, ErrAIProviderRequired, err)
	})
}

func TestSearch_EndToEnd(t *testing.T) {
	rogers := &core.CatalogItem{Name: "Rogers 10", Provider: "rogers", PromotionPrice: 45, DataAmountGB: 10, Code: "R10", Vector: []float32{1, 0, 0}}
	bell := &core.CatalogItem{Name: "Bell 12", Provider: "bell", PromotionPrice: 48, DataAmountGB: 12, Code: "B12", Vector: []float32{0.9, 0.1, 0}}

	engine, _, cleanup := newTestEngine(t, rogers, bell)
	defer cleanup()

	req := &core.RequirementState{
		CurrentProvider: strPtr("rogers"),
		TargetPrice:     f64Ptr(50),
		TargetData:      f64Ptr(10),
	}

	outcome, err := engine.Search(context.Background(), req, 5)
	require.NoError(t, err)

	require.Len(t, outcome.Plans, 1)
	assert.Equal(t, "Bell 12", outcome.Plans[0].Item.Name)
	assert.Empty(t, outcome.RelaxedFields)
	assert.Equal(t, []string{core.FieldRoaming, core.FieldMinDataGB, core.FieldBYOD}, outcome.MissingFields)
	assert.True(t, outcome.FollowupNeeded)
	assert.True(t, outcome.Partial, "fewer plans than requested")
}

func TestSearch_RelaxationDeterminism(t *testing.T) {
	// No plan fits the $20 budget, but dropping only the price finds one.
	bell := &core.CatalogItem{Name: "Bell 12", Provider: "bell", PromotionPrice: 48, DataAmountGB: 12, Code: "B12", Vector: []float32{1, 0, 0}}

	engine, _, cleanup := newTestEngine(t, bell)
	defer cleanup()

	req := &core.RequirementState{
		CurrentProvider: strPtr("rogers"),
		TargetPrice:     f64Ptr(20),
		TargetData:      f64Ptr(10),
	}

	outcome, err := engine.Search(context.Background(), req, 5)
	require.NoError(t, err)

	require.Len(t, outcome.Plans, 1)
	assert.Equal(t, "Bell 12", outcome.Plans[0].Item.Name)
	assert.Equal(t, []string{core.FieldTargetPrice}, outcome.RelaxedFields,
		"first rung that matches wins, later rungs never tried")
}

func TestSearch_MissingFieldsFromUnrelaxedRequirement(t *testing.T) {
	bell := &core.CatalogItem{Name: "Bell 12", Provider: "bell", PromotionPrice: 48, DataAmountGB: 12, Code: "B12"}

	engine, _, cleanup := newTestEngine(t, bell)
	defer cleanup()

	req := &core.RequirementState{TargetPrice: f64Ptr(20)}

	outcome, err := engine.Search(context.Background(), req, 5)
	require.NoError(t, err)

	assert.Equal(t, []string{core.FieldTargetPrice}, outcome.RelaxedFields)
	assert.NotContains(t, outcome.MissingFields, core.FieldTargetPrice,
		"a field set by the user is not missing, even after it was relaxed")
	assert.Contains(t, outcome.MissingFields, core.FieldTargetData)
}

func TestSearch_ExclusionInvariant(t *testing.T) {
	// Only expensive rogers plans and one bell plan. The price rung relaxes
	// first; the rogers plans stay excluded because the provider constraint
	// is only ever dropped whole, never weakened.
	items := []*core.CatalogItem{
		{Name: "Rogers Cheap", Provider: "rogers", PromotionPrice: 10, DataAmountGB: 50, Code: "RC"},
		{Name: "Rogers Big", Provider: "rogers", PromotionPrice: 15, DataAmountGB: 100, Code: "RB"},
		{Name: "Bell Pricey", Provider: "bell", PromotionPrice: 90, DataAmountGB: 50, Code: "BP"},
	}

	engine, _, cleanup := newTestEngine(t, items...)
	defer cleanup()

	req := &core.RequirementState{
		CurrentProvider: strPtr("rogers"),
		TargetPrice:     f64Ptr(20),
	}

	outcome, err := engine.Search(context.Background(), req, 5)
	require.NoError(t, err)

	assert.Equal(t, []string{core.FieldTargetPrice}, outcome.RelaxedFields)
	require.NotEmpty(t, outcome.Plans)
	for _, plan := range outcome.Plans {
		assert.NotEqual(t, "rogers", plan.Item.Provider)
	}
}

func TestSearch_NoResults(t *testing.T) {
	// The only plan violates a firm constraint, so every ladder rung fails.
	item := &core.CatalogItem{Name: "No Roaming", Provider: "bell", PromotionPrice: 40, DataAmountGB: 20, Code: "NR"}

	engine, _, cleanup := newTestEngine(t, item)
	defer cleanup()

	req := &core.RequirementState{
		TargetPrice: f64Ptr(50),
		Roaming:     []string{"china"},
	}

	_, err := engine.Search(context.Background(), req, 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrNoResults))

	var noResults *NoResultsError
	require.True(t, errors.As(err, &noResults))
	assert.Len(t, noResults.Attempts, 2, "unrelaxed attempt plus the price rung")
	assert.Empty(t, noResults.Attempts[0])
	assert.Equal(t, []string{core.FieldTargetPrice}, noResults.Attempts[1])
}

func TestSearch_EmptyCatalog(t *testing.T) {
	engine, _, cleanup := newTestEngine(t)
	defer cleanup()

	_, err := engine.Search(context.Background(), &core.RequirementState{}, 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrNoResults))
}

func TestSearch_PartialResults(t *testing.T) {
	item := &core.CatalogItem{Name: "Only One", Provider: "bell", PromotionPrice: 40, DataAmountGB: 20, Code: "O1"}

	engine, _, cleanup := newTestEngine(t, item)
	defer cleanup()

	outcome, err := engine.Search(context.Background(), &core.RequirementState{TargetPrice: f64Ptr(50)}, 3)
	require.NoError(t, err)

	assert.Len(t, outcome.Plans, 1)
	assert.True(t, outcome.Partial)
}

func TestSearch_TruncatesToK(t *testing.T) {
	items := []*core.CatalogItem{
		{Name: "A", Provider: "bell", PromotionPrice: 30, DataAmountGB: 10, Code: "A"},
		{Name: "B", Provider: "bell", PromotionPrice: 40, DataAmountGB: 10, Code: "B"},
		{Name: "C", Provider: "bell", PromotionPrice: 50, DataAmountGB: 10, Code: "C"},
	}

	engine, _, cleanup := newTestEngine(t, items...)
	defer cleanup()

	outcome, err := engine.Search(context.Background(), &core.RequirementState{}, 2)
	require.NoError(t, err)

	assert.Len(t, outcome.Plans, 2)
	assert.False(t, outcome.Partial)
}

func TestSearch_InvalidRequirement(t *testing.T) {
	engine, _, cleanup := newTestEngine(t)
	defer cleanup()

	req := &core.RequirementState{TargetPrice: f64Ptr(-5)}

	_, err := engine.Search(context.Background(), req, 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrInvalidRequirement))
}

func TestSearch_InvalidResultCount(t *testing.T) {
	engine, _, cleanup := newTestEngine(t)
	defer cleanup()

	_, err := engine.Search(context.Background(), &core.RequirementState{}, 0)
	assert.True(t, errors.Is(err, ErrInvalidResultCount))
}

func TestSearch_DimensionMismatchIsConfigError(t *testing.T) {
	item := &core.CatalogItem{Name: "Bad Vector", Provider: "bell", PromotionPrice: 40, DataAmountGB: 20, Code: "BV", Vector: []float32{1, 0, 0, 0, 0}}

	engine, _, cleanup := newTestEngine(t, item)
	defer cleanup()

	_, err := engine.Search(context.Background(), &core.RequirementState{}, 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrVectorDimension))
}

func TestSearch_EmbedderErrorPropagates(t *testing.T) {
	catalogRepo, requirementRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() {
		requirementRepo.Close()
		catalogRepo.Close()
		backend.Close()
	}()

	item := &core.CatalogItem{Name: "A", Provider: "bell", PromotionPrice: 40, DataAmountGB: 20, Code: "A"}
	_, err = catalogRepo.AddItems(context.Background(), item)
	require.NoError(t, err)

	boom := errors.New("embedding backend down")
	provider := mock.NewMockProvider()
	provider.(*mock.MockProvider).GetMockEmbedder().EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return nil, boom
	}

	engine, err := NewEngine(catalogRepo, provider)
	require.NoError(t, err)
	defer engine.Close()

	_, err = engine.Search(context.Background(), &core.RequirementState{}, 5)
	assert.True(t, errors.Is(err, boom))
}

func TestSearch_CatalogUnavailable(t *testing.T) {
	catalogRepo, requirementRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	requirementRepo.Close()
	catalogRepo.Close()

	engine, err := NewEngine(catalogRepo, mock.NewMockProvider())
	require.NoError(t, err)
	defer engine.Close()

	// A closed backend makes every catalog read fail.
	backend.Close()

	_, err = engine.Search(context.Background(), &core.RequirementState{}, 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrCatalogUnavailable))
}

func TestSearchWithMonitor(t *testing.T) {
	item := &core.CatalogItem{Name: "A", Provider: "bell", PromotionPrice: 40, DataAmountGB: 20, Code: "A"}

	engine, _, cleanup := newTestEngine(t, item)
	defer cleanup()

	monitor := &recordingMonitor{}
	outcome, err := engine.SearchWithMonitor(context.Background(), &core.RequirementState{TargetPrice: f64Ptr(50)}, 5, monitor)
	require.NoError(t, err)

	assert.NotEmpty(t, monitor.queryText)
	assert.Equal(t, 1, monitor.filterCalls)
	assert.Equal(t, outcome, monitor.outcome)
}

type recordingMonitor struct {
	queryText   string
	filterCalls int
	outcome     *core.SearchOutcome
}

func (m *recordingMonitor) Start(queryText string)                    { m.queryText = queryText }
func (m *recordingMonitor) AfterPredicateBuild(_ map[string]any)      {}
func (m *recordingMonitor) AfterFilter(_ []string, _ int)             { m.filterCalls++ }
func (m *recordingMonitor) AfterSimilarityRanking(_ []core.Candidate) {}
func (m *recordingMonitor) Finish(outcome *core.SearchOutcome)        { m.outcome = outcome }

package storage

import (
	"context"

	"github.com/poiesic/planmatch/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// CatalogRepository provides operations for managing catalog items.
// The search engine only ever reads through FilterItems and Providers;
// writes belong to the ingestion pipeline.
type CatalogRepository interface {
	Repository
	// AddItems adds one or more catalog items to storage.
	// For items with ID=0, derives the content-based ID from the item key.
	// Sets InsertedAt timestamp if not already set.
	// Returns the items with IDs and timestamps populated.
	AddItems(ctx context.Context, items ...*core.CatalogItem) ([]*core.CatalogItem, error)

	// UpdateItems updates existing catalog items.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any item doesn't exist.
	UpdateItems(ctx context.Context, items ...*core.CatalogItem) ([]*core.CatalogItem, error)

	// DeleteItems removes catalog items by their IDs.
	// Also removes associated indices.
	// Returns ErrNotFound if any item doesn't exist.
	DeleteItems(ctx context.Context, ids ...core.ID) error

	// GetItem retrieves a single catalog item by ID.
	// Returns ErrNotFound if the item doesn't exist.
	GetItem(ctx context.Context, id core.ID) (*core.CatalogItem, error)

	// GetItems retrieves multiple catalog items by their IDs.
	// Returns only the items that exist (no error for missing items).
	GetItems(ctx context.Context, ids ...core.ID) ([]*core.CatalogItem, error)

	// ListItems retrieves every catalog item. Used by reindexing.
	ListItems(ctx context.Context) ([]*core.CatalogItem, error)

	// FilterItems returns items satisfying all predicate conditions, capped
	// at limit. Order is unspecified beyond being deterministic for an
	// unchanged catalog.
	FilterItems(ctx context.Context, predicate *FilterPredicate, limit int) ([]*core.CatalogItem, error)

	// Providers returns the distinct provider names present in the catalog,
	// lowercased and sorted.
	Providers(ctx context.Context) ([]string, error)
}

// RequirementRepository provides operations for persisted session requirements.
type RequirementRepository interface {
	Repository
	// GetRequirements retrieves the requirement record for a session.
	// Returns ErrNotFound if no record exists for the session.
	GetRequirements(ctx context.Context, sessionID string) (*core.RequirementRecord, error)

	// UpsertRequirements inserts or replaces the requirement record for a
	// session and refreshes its UpdatedAt timestamp. Callers serialize
	// upserts per session; different sessions never contend.
	UpsertRequirements(ctx context.Context, record *core.RequirementRecord) (*core.RequirementRecord, error)

	// DeleteRequirements removes the requirement record for a session.
	// Returns ErrNotFound if no record exists.
	DeleteRequirements(ctx context.Context, sessionID string) error
}

package badger

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/planmatch/core"
	"github.com/poiesic/planmatch/storage"
)

// CatalogRepository implements storage.CatalogRepository for BadgerDB.
type CatalogRepository struct {
	backend *Backend
}

var _ storage.CatalogRepository = (*CatalogRepository)(nil)

// NewCatalogRepository creates a new CatalogRepository.
func NewCatalogRepository(backend *Backend) (*CatalogRepository, error) {
	return &CatalogRepository{backend: backend}, nil
}

// Close implements storage.Repository. The repository holds no resources of
// its own; the backend is closed separately.
func (r *CatalogRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *CatalogRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddItems adds one or more catalog items to storage.
// Item IDs are derived from content, so adding an item whose
// (provider, name, code) tuple already exists fails with ErrDuplicateKey.
func (r *CatalogRepository) AddItems(ctx context.Context, items ...*core.CatalogItem) ([]*core.CatalogItem, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, item := range items {
			if err := core.ValidateCatalogItem(item); err != nil {
				return err
			}

			if item.Id == 0 {
				item.Id = core.IDFromContent(item.Key())
			}

			key := makeCatalogItemKey(item.Id)
			if _, err := tx.Get(key); err == nil {
				return fmt.Errorf("%w: %s", storage.ErrDuplicateKey, item.Key())
			} else if err != badger.ErrKeyNotFound {
				return err
			}

			if item.InsertedAt.IsZero() {
				item.InsertedAt = time.Now().UTC()
			}
			item.UpdatedAt = item.InsertedAt

			value := storage.MarshalCatalogItem(item)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Update provider index
			providerKey := makeProviderKey(item.Provider, item.Id)
			if err := tx.Set(providerKey, storage.MarshalID(item.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return items, err
}

// UpdateItems updates existing catalog items.
func (r *CatalogRepository) UpdateItems(ctx context.Context, items ...*core.CatalogItem) ([]*core.CatalogItem, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, item := range items {
			key := makeCatalogItemKey(item.Id)

			// Read old item to detect index changes
			old, err := r.readCatalogItem(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			item.InsertedAt = old.InsertedAt
			item.UpdatedAt = time.Now().UTC()

			value := storage.MarshalCatalogItem(item)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Update provider index if provider changed
			if !strings.EqualFold(old.Provider, item.Provider) {
				if err := tx.Delete(makeProviderKey(old.Provider, old.Id)); err != nil {
					return err
				}
				if err := tx.Set(makeProviderKey(item.Provider, item.Id), storage.MarshalID(item.Id)); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)

	return items, err
}

// DeleteItems removes catalog items by their IDs.
func (r *CatalogRepository) DeleteItems(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeCatalogItemKey(id)

			// Read item to get metadata for index cleanup
			item, err := r.readCatalogItem(tx, key)
			if err != nil {
				return err
			}
			if item == nil {
				return storage.ErrNotFound
			}

			if err := tx.Delete(makeProviderKey(item.Provider, item.Id)); err != nil {
				return err
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetItem retrieves a single catalog item by ID.
func (r *CatalogRepository) GetItem(ctx context.Context, id core.ID) (*core.CatalogItem, error) {
	var result *core.CatalogItem
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeCatalogItemKey(id)
		var err error
		result, err = r.readCatalogItem(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetItems retrieves multiple catalog items by their IDs.
func (r *CatalogRepository) GetItems(ctx context.Context, ids ...core.ID) ([]*core.CatalogItem, error) {
	var result []*core.CatalogItem
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeCatalogItemKey(id)
			item, err := r.readCatalogItem(tx, key)
			if err != nil {
				return err
			}
			if item != nil {
				result = append(result, item)
			}
		}
		return nil
	}, false)
	return result, err
}

// ListItems retrieves every catalog item.
func (r *CatalogRepository) ListItems(ctx context.Context) ([]*core.CatalogItem, error) {
	return r.scanItems(func(item *core.CatalogItem) bool { return true }, 0)
}

// FilterItems returns items satisfying every predicate condition, capped at
// limit. Iteration follows key order, so results are deterministic for an
// unchanged catalog.
func (r *CatalogRepository) FilterItems(ctx context.Context, predicate *storage.FilterPredicate, limit int) ([]*core.CatalogItem, error) {
	if predicate == nil {
		predicate = &storage.FilterPredicate{}
	}
	return r.scanItems(predicate.Matches, limit)
}

// Providers returns the distinct provider names present in the catalog,
// lowercased and sorted. Read from the provider index, never from a full
// item scan.
func (r *CatalogRepository) Providers(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(catalogProviderPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			provider := providerFromIndexKey(iter.Item().Key())
			if provider != "" {
				seen[provider] = true
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	providers := make([]string, 0, len(seen))
	for provider := range seen {
		providers = append(providers, provider)
	}
	slices.Sort(providers)
	return providers, nil
}

// scanItems iterates the primary records and collects items for which keep
// returns true. A limit of 0 means unbounded.
func (r *CatalogRepository) scanItems(keep func(*core.CatalogItem) bool, limit int) ([]*core.CatalogItem, error) {
	var results []*core.CatalogItem
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(catalogItemPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var item *core.CatalogItem
			err := iter.Item().Value(func(val []byte) error {
				var err error
				item, err = storage.UnmarshalCatalogItem(val)
				return err
			})
			if err != nil {
				return err
			}
			if item == nil || !keep(item) {
				continue
			}
			results = append(results, item)
			if limit > 0 && len(results) >= limit {
				break
			}
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}
	return results, nil
}

// readCatalogItem reads and unmarshals an item within a transaction.
// Returns nil (no error) if the key does not exist.
func (r *CatalogRepository) readCatalogItem(tx *badger.Txn, key []byte) (*core.CatalogItem, error) {
	entry, err := tx.Get(key)
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var item *core.CatalogItem
	err = entry.Value(func(val []byte) error {
		var err error
		item, err = storage.UnmarshalCatalogItem(val)
		return err
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/planmatch/core"
	"github.com/poiesic/planmatch/storage"
)

// RequirementRepository implements storage.RequirementRepository for BadgerDB.
// One record per session, keyed by session ID.
type RequirementRepository struct {
	backend *Backend
}

var _ storage.RequirementRepository = (*RequirementRepository)(nil)

// NewRequirementRepository creates a new RequirementRepository.
func NewRequirementRepository(backend *Backend) (*RequirementRepository, error) {
	return &RequirementRepository{backend: backend}, nil
}

// Close implements storage.Repository. The repository holds no resources of
// its own; the backend is closed separately.
func (r *RequirementRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *RequirementRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// GetRequirements retrieves the requirement record for a session.
func (r *RequirementRepository) GetRequirements(ctx context.Context, sessionID string) (*core.RequirementRecord, error) {
	var result *core.RequirementRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		entry, err := tx.Get(makeRequirementKey(sessionID))
		if err == badger.ErrKeyNotFound {
			return storage.ErrNotFound
		}
		if err != nil {
			return err
		}
		return entry.Value(func(val []byte) error {
			var err error
			result, err = storage.UnmarshalRequirementRecord(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// UpsertRequirements inserts or replaces the requirement record for a session.
func (r *RequirementRepository) UpsertRequirements(ctx context.Context, record *core.RequirementRecord) (*core.RequirementRecord, error) {
	record.UpdatedAt = time.Now().UTC()
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeRequirementKey(record.SessionID)
		if err := tx.Set(key, storage.MarshalRequirementRecord(record)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// DeleteRequirements removes the requirement record for a session.
func (r *RequirementRepository) DeleteRequirements(ctx context.Context, sessionID string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeRequirementKey(sessionID)
		if _, err := tx.Get(key); err == badger.ErrKeyNotFound {
			return storage.ErrNotFound
		} else if err != nil {
			return err
		}
		if err := tx.Delete(key); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

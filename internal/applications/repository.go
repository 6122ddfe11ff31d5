// Package applications implements the per-account job-application
// repository: the single owner of the stored application collections.
//
// Every operation takes the owning account id and touches only that
// account's collection. Mutations read the whole collection, apply the
// change in memory, and write the whole collection back before returning.
package applications

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SandhraKrishnan10/ASCEND-Job-Application-Tracker-App/internal/common"
	"github.com/SandhraKrishnan10/ASCEND-Job-Application-Tracker-App/internal/models"
	"github.com/SandhraKrishnan10/ASCEND-Job-Application-Tracker-App/internal/storage"
)

// collectionKey derives the backing-store key for an account's collection.
func collectionKey(accountID string) string {
	return "applications_" + accountID
}

// now is a test seam for record-id generation.
var now = time.Now

// Repository manages the stored application collections.
type Repository struct {
	store storage.KVStore
}

// NewRepository returns a Repository bound to the given backing store.
func NewRepository(store storage.KVStore) *Repository {
	return &Repository{store: store}
}

// List returns the account's collection in insertion order. An account with
// no collection yet gets an empty result, and so does an unreadable or
// undecodable one: reads degrade gracefully, writes do not.
func (r *Repository) List(ctx context.Context, accountID string) ([]models.ApplicationRecord, error) {
	records, err := load(ctx, r.store, accountID)
	if err != nil {
		return []models.ApplicationRecord{}, nil
	}
	return records, nil
}

// Add validates the draft, assigns a fresh id and the owner, appends the
// record, and persists the collection before returning the stored record.
func (r *Repository) Add(ctx context.Context, accountID string, draft models.ApplicationRecord) (*models.ApplicationRecord, error) {
	draft = normalize(draft)
	if err := validate(draft); err != nil {
		return nil, err
	}

	var created models.ApplicationRecord
	err := runTx(ctx, r.store, func(s storage.KVStore) error {
		records, err := load(ctx, s, accountID)
		if err != nil {
			return err
		}

		draft.ID = nextID(records)
		draft.OwnerID = accountID
		created = draft

		return save(ctx, s, accountID, append(records, draft))
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces every field of the record except its id and owner,
// re-validates, and persists. A missing id fails with ErrNotFound.
func (r *Repository) Update(ctx context.Context, accountID string, id int64, fields models.ApplicationRecord) (*models.ApplicationRecord, error) {
	fields = normalize(fields)
	if err := validate(fields); err != nil {
		return nil, err
	}

	var updated models.ApplicationRecord
	err := runTx(ctx, r.store, func(s storage.KVStore) error {
		records, err := load(ctx, s, accountID)
		if err != nil {
			return err
		}

		pos := indexOf(records, id)
		if pos < 0 {
			return common.ErrNotFound
		}

		fields.ID = id
		fields.OwnerID = records[pos].OwnerID
		records[pos] = fields
		updated = fields

		return save(ctx, s, accountID, records)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Remove deletes the record with the given id and persists the collection.
// A missing id fails with ErrNotFound and leaves the collection unchanged;
// Remove is strict, not a no-op.
func (r *Repository) Remove(ctx context.Context, accountID string, id int64) error {
	return runTx(ctx, r.store, func(s storage.KVStore) error {
		records, err := load(ctx, s, accountID)
		if err != nil {
			return err
		}

		pos := indexOf(records, id)
		if pos < 0 {
			return common.ErrNotFound
		}

		records = append(records[:pos], records[pos+1:]...)
		return save(ctx, s, accountID, records)
	})
}

// runTx runs fn against the backing store, atomically when the store
// supports transactions. Transaction plumbing failures surface as storage
// errors; domain errors pass through unchanged.
func runTx(ctx context.Context, s storage.KVStore, fn func(storage.KVStore) error) error {
	err := storage.InTx(ctx, s, fn)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, common.ErrNotFound),
		errors.Is(err, common.ErrValidation),
		errors.Is(err, common.ErrStorageUnavailable):
		return err
	default:
		return fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}
}

// normalize fills the defaults the add/edit forms would: a draft without an
// explicit status starts as Applied.
func normalize(rec models.ApplicationRecord) models.ApplicationRecord {
	if rec.Status == "" {
		rec.Status = models.StatusApplied
	}
	return rec
}

// validate reports every missing required field at once.
func validate(rec models.ApplicationRecord) error {
	var missing []string
	if rec.Company == "" {
		missing = append(missing, "company")
	}
	if rec.Position == "" {
		missing = append(missing, "position")
	}
	if rec.Portal == "" {
		missing = append(missing, "portal")
	}
	if rec.DateApplied == "" {
		missing = append(missing, "dateApplied")
	}
	if len(missing) > 0 {
		return &common.ValidationError{Fields: missing}
	}
	return nil
}

// nextID assigns a creation-time token, bumping past any id already present
// so rapid sequential adds within the same millisecond cannot collide.
func nextID(records []models.ApplicationRecord) int64 {
	id := now().UnixMilli()
	for indexOf(records, id) >= 0 {
		id++
	}
	return id
}

func indexOf(records []models.ApplicationRecord, id int64) int {
	for i, rec := range records {
		if rec.ID == id {
			return i
		}
	}
	return -1
}

func load(ctx context.Context, s storage.KVStore, accountID string) ([]models.ApplicationRecord, error) {
	data, err := s.Get(ctx, collectionKey(accountID))
	if err != nil {
		return nil, common.ErrStorageUnavailable
	}
	if data == nil {
		return nil, nil
	}

	var records []models.ApplicationRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: undecodable collection for account %s", common.ErrStorageUnavailable, accountID)
	}
	return records, nil
}

func save(ctx context.Context, s storage.KVStore, accountID string, records []models.ApplicationRecord) error {
	data, err := json.Marshal(records)
	if err != nil {
		return common.ErrStorageUnavailable
	}
	if err := s.Set(ctx, collectionKey(accountID), data); err != nil {
		return common.ErrStorageUnavailable
	}
	return nil
}

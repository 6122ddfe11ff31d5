// Package session implements the session manager: the single owner of the
// current authenticated identity inside the ephemeral store.
package session

import (
	"context"
	"encoding/json"

	"github.com/SandhraKrishnan10/ASCEND-Job-Application-Tracker-App/internal/common"
	"github.com/SandhraKrishnan10/ASCEND-Job-Application-Tracker-App/internal/models"
	"github.com/SandhraKrishnan10/ASCEND-Job-Application-Tracker-App/internal/storage"
)

// currentUserKey is the ephemeral-store key holding the session identity.
const currentUserKey = "currentUser"

// Manager establishes, exposes, and tears down the current authenticated
// identity. At most one session exists at a time; the identity lives only as
// long as the ephemeral store does.
type Manager struct {
	store storage.KVStore
}

// NewManager returns a Manager bound to the given ephemeral store.
func NewManager(store storage.KVStore) *Manager {
	return &Manager{store: store}
}

// Establish stores account as the current identity, replacing any prior
// session.
func (m *Manager) Establish(ctx context.Context, account *models.Account) error {
	data, err := json.Marshal(account)
	if err != nil {
		return common.ErrStorageUnavailable
	}
	if err := m.store.Set(ctx, currentUserKey, data); err != nil {
		return common.ErrStorageUnavailable
	}
	return nil
}

// Current returns the current identity, or (nil, nil) when no session exists.
// An unreadable or undecodable session value counts as no session.
func (m *Manager) Current(ctx context.Context) (*models.Account, error) {
	data, err := m.store.Get(ctx, currentUserKey)
	if err != nil || data == nil {
		return nil, nil
	}

	var account models.Account
	if err := json.Unmarshal(data, &account); err != nil {
		return nil, nil
	}
	return &account, nil
}

// End clears the current session. Ending an absent session is a no-op.
func (m *Manager) End(ctx context.Context) error {
	if err := m.store.Delete(ctx, currentUserKey); err != nil {
		return common.ErrStorageUnavailable
	}
	return nil
}

// Restore hydrates the identity at startup. A fresh ephemeral store is empty,
// so a new run always starts with no session.
func (m *Manager) Restore(ctx context.Context) (*models.Account, error) {
	return m.Current(ctx)
}

// Package accounts implements the account directory: the single owner of the
// registered-accounts list in the backing store. Accounts are created by
// registration and never updated or deleted afterwards.
package accounts

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SandhraKrishnan10/ASCEND-Job-Application-Tracker-App/internal/common"
	"github.com/SandhraKrishnan10/ASCEND-Job-Application-Tracker-App/internal/models"
	"github.com/SandhraKrishnan10/ASCEND-Job-Application-Tracker-App/internal/storage"
)

// usersKey is the backing-store key holding the full account list.
const usersKey = "users"

// storedAccount is the persisted account shape. The password never leaves
// this package: everything Directory returns is a public view.
type storedAccount struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func (a storedAccount) publicView() *models.Account {
	return &models.Account{
		ID:        a.ID,
		Email:     a.Email,
		Name:      a.Name,
		CreatedAt: a.CreatedAt,
	}
}

// Directory manages the global set of registered accounts on top of the
// persistent backing store.
type Directory struct {
	store storage.KVStore
}

// NewDirectory returns a Directory bound to the given backing store.
func NewDirectory(store storage.KVStore) *Directory {
	return &Directory{store: store}
}

// Register creates a new account and returns its public view.
//
// Email, password, and name must be non-empty and the password must meet the
// minimum length; violations are reported as validation errors. An account
// whose email exactly matches an existing one fails with ErrDuplicateAccount.
// The updated account list is written to the backing store before Register
// returns.
func (d *Directory) Register(ctx context.Context, email, password, name string) (*models.Account, error) {
	var missing []string
	if email == "" {
		missing = append(missing, "email")
	}
	if password == "" {
		missing = append(missing, "password")
	}
	if name == "" {
		missing = append(missing, "name")
	}
	if len(missing) > 0 {
		return nil, &common.ValidationError{Fields: missing}
	}
	if len(password) < common.MinPasswordLength {
		return nil, common.ErrPasswordTooShort
	}

	account := storedAccount{
		ID:        uuid.NewString(),
		Email:     email,
		Password:  password,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	err := storage.InTx(ctx, d.store, func(s storage.KVStore) error {
		list, err := loadAll(ctx, s)
		if err != nil {
			return err
		}
		for _, existing := range list {
			if existing.Email == email {
				return common.ErrDuplicateAccount
			}
		}
		return saveAll(ctx, s, append(list, account))
	})
	switch {
	case err == nil:
	case errors.Is(err, common.ErrDuplicateAccount), errors.Is(err, common.ErrStorageUnavailable):
		return nil, err
	default:
		// Transaction plumbing failures are storage failures too.
		return nil, fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}

	return account.publicView(), nil
}

// Authenticate returns the public view of the account matching both email and
// password exactly. Any mismatch — unknown email or wrong password — fails
// with the same ErrInvalidCredentials. An unreadable directory behaves like
// an empty one.
func (d *Directory) Authenticate(ctx context.Context, email, password string) (*models.Account, error) {
	list, err := loadAll(ctx, d.store)
	if err != nil {
		list = nil
	}

	for _, account := range list {
		if account.Email != email {
			continue
		}
		if subtle.ConstantTimeCompare([]byte(account.Password), []byte(password)) == 1 {
			return account.publicView(), nil
		}
	}
	return nil, common.ErrInvalidCredentials
}

// loadAll decodes the stored account list. A missing key means no accounts yet.
func loadAll(ctx context.Context, s storage.KVStore) ([]storedAccount, error) {
	data, err := s.Get(ctx, usersKey)
	if err != nil {
		return nil, common.ErrStorageUnavailable
	}
	if data == nil {
		return nil, nil
	}

	var list []storedAccount
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, common.ErrStorageUnavailable
	}
	return list, nil
}

func saveAll(ctx context.Context, s storage.KVStore, list []storedAccount) error {
	data, err := json.Marshal(list)
	if err != nil {
		return common.ErrStorageUnavailable
	}
	if err := s.Set(ctx, usersKey, data); err != nil {
		return common.ErrStorageUnavailable
	}
	return nil
}

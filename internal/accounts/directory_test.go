package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SandhraKrishnan10/ASCEND-Job-Application-Tracker-App/internal/common"
	"github.com/SandhraKrishnan10/ASCEND-Job-Application-Tracker-App/internal/storage"
)

func setupDirectory(t *testing.T) (*Directory, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	return NewDirectory(store), store
}

func TestRegister_ReturnsPublicView(t *testing.T) {
	d, _ := setupDirectory(t)
	ctx := context.Background()

	acc, err := d.Register(ctx, "a@x.com", "secret1", "Ann")
	require.NoError(t, err)

	assert.NotEmpty(t, acc.ID)
	assert.Equal(t, "a@x.com", acc.Email)
	assert.Equal(t, "Ann", acc.Name)
	assert.False(t, acc.CreatedAt.IsZero())
}

func TestRegister_PersistsSynchronously(t *testing.T) {
	d, store := setupDirectory(t)
	ctx := context.Background()

	_, err := d.Register(ctx, "a@x.com", "secret1", "Ann")
	require.NoError(t, err)

	data, err := store.Get(ctx, "users")
	require.NoError(t, err)
	require.NotNil(t, data, "account list must be written before Register returns")

	var list []map[string]any
	require.NoError(t, json.Unmarshal(data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "a@x.com", list[0]["email"])
	assert.Equal(t, "secret1", list[0]["password"], "stored form keeps the credential")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	d, _ := setupDirectory(t)
	ctx := context.Background()

	_, err := d.Register(ctx, "a@x.com", "secret1", "Ann")
	require.NoError(t, err)

	_, err = d.Register(ctx, "a@x.com", "secret2", "Other Ann")
	require.ErrorIs(t, err, common.ErrDuplicateAccount)
}

func TestRegister_DuplicateCheckIsCaseSensitive(t *testing.T) {
	d, _ := setupDirectory(t)
	ctx := context.Background()

	_, err := d.Register(ctx, "a@x.com", "secret1", "Ann")
	require.NoError(t, err)

	// Exact-match uniqueness: a differently-cased email is a new account.
	_, err = d.Register(ctx, "A@x.com", "secret2", "Ann Upper")
	require.NoError(t, err)
}

func TestRegister_MissingFields(t *testing.T) {
	d, _ := setupDirectory(t)

	_, err := d.Register(context.Background(), "", "", "Ann")
	require.ErrorIs(t, err, common.ErrValidation)

	var verr *common.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"email", "password"}, verr.Fields)
}

func TestRegister_PasswordTooShort(t *testing.T) {
	d, _ := setupDirectory(t)

	_, err := d.Register(context.Background(), "a@x.com", "short", "Ann")
	require.ErrorIs(t, err, common.ErrPasswordTooShort)
}

func TestRegister_AssignsUniqueIDs(t *testing.T) {
	d, _ := setupDirectory(t)
	ctx := context.Background()

	a, err := d.Register(ctx, "a@x.com", "secret1", "Ann")
	require.NoError(t, err)
	b, err := d.Register(ctx, "b@x.com", "secret2", "Ben")
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestAuthenticate_Success(t *testing.T) {
	d, _ := setupDirectory(t)
	ctx := context.Background()

	created, err := d.Register(ctx, "a@x.com", "secret1", "Ann")
	require.NoError(t, err)

	acc, err := d.Authenticate(ctx, "a@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, acc.ID)
	assert.Equal(t, "Ann", acc.Name)
}

func TestAuthenticate_PublicViewOmitsPassword(t *testing.T) {
	d, _ := setupDirectory(t)
	ctx := context.Background()

	_, err := d.Register(ctx, "a@x.com", "secret1", "Ann")
	require.NoError(t, err)

	acc, err := d.Authenticate(ctx, "a@x.com", "secret1")
	require.NoError(t, err)

	data, err := json.Marshal(acc)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret1")
	assert.NotContains(t, string(data), "password")
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	d, _ := setupDirectory(t)
	ctx := context.Background()

	_, err := d.Register(ctx, "a@x.com", "secret1", "Ann")
	require.NoError(t, err)

	_, err = d.Authenticate(ctx, "a@x.com", "wrong")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestAuthenticate_UnknownEmail_SameError(t *testing.T) {
	d, _ := setupDirectory(t)
	ctx := context.Background()

	_, err := d.Register(ctx, "a@x.com", "secret1", "Ann")
	require.NoError(t, err)

	_, wrongPass := d.Authenticate(ctx, "a@x.com", "wrong")
	_, unknown := d.Authenticate(ctx, "nobody@x.com", "secret1")

	// Login must not reveal whether the email exists.
	require.ErrorIs(t, wrongPass, common.ErrInvalidCredentials)
	require.ErrorIs(t, unknown, common.ErrInvalidCredentials)
	assert.Equal(t, wrongPass.Error(), unknown.Error())
}

func TestAuthenticate_CorruptDirectoryBehavesAsEmpty(t *testing.T) {
	d, store := setupDirectory(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "users", []byte("{not json")))

	_, err := d.Authenticate(ctx, "a@x.com", "secret1")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestRegister_CorruptDirectorySurfacesStorageError(t *testing.T) {
	d, store := setupDirectory(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "users", []byte("{not json")))

	_, err := d.Register(ctx, "a@x.com", "secret1", "Ann")
	require.True(t, errors.Is(err, common.ErrStorageUnavailable))
}

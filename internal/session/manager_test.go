package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SandhraKrishnan10/ASCEND-Job-Application-Tracker-App/internal/models"
	"github.com/SandhraKrishnan10/ASCEND-Job-Application-Tracker-App/internal/storage"
)

func testAccount(id, name string) *models.Account {
	return &models.Account{
		ID:        id,
		Email:     name + "@x.com",
		Name:      name,
		CreatedAt: time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestCurrent_NoSession(t *testing.T) {
	m := NewManager(storage.NewMemoryStore())

	acc, err := m.Current(context.Background())
	require.NoError(t, err)
	require.Nil(t, acc)
}

func TestEstablishThenCurrent(t *testing.T) {
	m := NewManager(storage.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, m.Establish(ctx, testAccount("1001", "Ann")))

	acc, err := m.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, acc)
	assert.Equal(t, "1001", acc.ID)
	assert.Equal(t, "Ann", acc.Name)
}

func TestEstablish_ReplacesPriorSession(t *testing.T) {
	m := NewManager(storage.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, m.Establish(ctx, testAccount("1001", "Ann")))
	require.NoError(t, m.Establish(ctx, testAccount("1002", "Ben")))

	acc, err := m.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, acc)
	assert.Equal(t, "1002", acc.ID)
}

func TestEnd_ClearsSession(t *testing.T) {
	m := NewManager(storage.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, m.Establish(ctx, testAccount("1001", "Ann")))
	require.NoError(t, m.End(ctx))

	acc, err := m.Current(ctx)
	require.NoError(t, err)
	require.Nil(t, acc)
}

func TestEnd_WithoutSessionIsNoop(t *testing.T) {
	m := NewManager(storage.NewMemoryStore())
	require.NoError(t, m.End(context.Background()))
}

func TestRestore_FreshStoreMeansNoSession(t *testing.T) {
	// A new run gets a new ephemeral store, so Restore finds nothing.
	m := NewManager(storage.NewMemoryStore())

	acc, err := m.Restore(context.Background())
	require.NoError(t, err)
	require.Nil(t, acc)
}

func TestRestore_SameStoreKeepsSession(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, NewManager(store).Establish(ctx, testAccount("1001", "Ann")))

	acc, err := NewManager(store).Restore(ctx)
	require.NoError(t, err)
	require.NotNil(t, acc)
	assert.Equal(t, "1001", acc.ID)
}

func TestCurrent_CorruptValueMeansNoSession(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "currentUser", []byte("{broken")))

	acc, err := NewManager(store).Current(ctx)
	require.NoError(t, err)
	require.Nil(t, acc)
}

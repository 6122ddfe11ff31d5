// Package storage implements the two string-keyed stores backing the tracker:
// a durable SQLite-backed store that survives restarts, and an in-process
// store whose contents live only as long as the program (the session scope).
package storage

import "context"

// KVStore is a string-keyed byte store. Values are opaque to the store; the
// layers above encode JSON into them. Get returns (nil, nil) when the key is
// absent — absence is not an error.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
	Clear(ctx context.Context) error
}

// Transactional is implemented by stores that can run several operations
// atomically. InTx uses it when available.
type Transactional interface {
	WithTx(ctx context.Context, fn func(KVStore) error) error
}

// InTx runs fn against s inside a transaction when the store supports one,
// and directly against s otherwise.
func InTx(ctx context.Context, s KVStore, fn func(KVStore) error) error {
	if tx, ok := s.(Transactional); ok {
		return tx.WithTx(ctx, fn)
	}
	return fn(s)
}

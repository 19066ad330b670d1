package cart

import (
	"context"
	"errors"
)

// ErrNoProvider means the store was requested outside of a provider scope.
var ErrNoProvider = errors.New("cart: store must be used within a cart provider")

type providerKey struct{}

// NewContext opens a provider scope for store.
func NewContext(ctx context.Context, store *Store) context.Context {
	return context.WithValue(ctx, providerKey{}, store)
}

// FromContext returns the store of the enclosing provider scope.
func FromContext(ctx context.Context) (*Store, error) {
	store, ok := ctx.Value(providerKey{}).(*Store)
	if !ok || store == nil {
		return nil, ErrNoProvider
	}
	return store, nil
}

// Use is FromContext for callers that cannot recover from a missing provider.
func Use(ctx context.Context) *Store {
	store, err := FromContext(ctx)
	if err != nil {
		panic(err)
	}
	return store
}

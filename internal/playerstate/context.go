package playerstate

import (
	"context"
	"errors"
)

// ErrNoProvider is returned when a store is looked up outside a provider scope.
var ErrNoProvider = errors.New("playerstate: no store in context, missing Provide")

type storeKey struct{}

// Provide mounts a new store into ctx. The returned unmount func closes the
// store; views must not use the context after calling it.
func Provide(ctx context.Context, opts ...Option) (context.Context, func()) {
	s := New(opts...)
	return WithStore(ctx, s), func() { _ = s.Close() }
}

// WithStore returns a copy of ctx carrying s.
func WithStore(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, storeKey{}, s)
}

// Use returns the store provided to ctx, or ErrNoProvider.
func Use(ctx context.Context) (*Store, error) {
	if ctx == nil {
		return nil, ErrNoProvider
	}
	s, ok := ctx.Value(storeKey{}).(*Store)
	if !ok || s == nil {
		return nil, ErrNoProvider
	}
	return s, nil
}

// MustUse is like Use but panics outside a provider scope.
func MustUse(ctx context.Context) *Store {
	s, err := Use(ctx)
	if err != nil {
		panic(err)
	}
	return s
}

// Package session keeps per-visitor state keyed by an opaque session ID.
package session

import "context"

// Store holds one value per visitor session.
type Store[T any] interface {
	Get(ctx context.Context, id string) (T, bool, error)
	Put(ctx context.Context, id string, v T) error
	Delete(ctx context.Context, id string) error
	NewID() string
}

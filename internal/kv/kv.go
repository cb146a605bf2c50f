// Package kv stores opaque named blobs. It backs the persisted application
// state (design settings and message templates).
package kv

import (
	"context"

	apperrors "reviewdesk/internal/errors"
)

// BlobStore reads and writes blobs by key.
type BlobStore interface {
	// Get returns the blob stored under key. A missing key yields an error
	// with code not_found.
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

func notFound(key string) error {
	return apperrors.New(apperrors.CodeNotFound, "no blob stored under "+key, nil)
}

func storageFailed(msg string, err error) error {
	return apperrors.New(apperrors.CodeStorageFailed, msg, err)
}

// Package storage keeps uploaded documents in S3-compatible object storage.
package storage

import (
	"context"
)

type Object struct {
	Body        []byte
	ContentType string
}

// ObjectStore is the narrow surface usecases need. Bodies are held in memory.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, body []byte) error
	Get(ctx context.Context, key string) (*Object, error)
	Delete(ctx context.Context, key string) error
}

// File is an upload read fully into memory.
type File struct {
	Name        string
	ContentType string
	Body        []byte
}

package repo

import "context"

// ObjectStore archives generated documents.
type ObjectStore interface {
	PutObject(ctx context.Context, key string, data []byte, contentType string) (string, error)
	// Ping checks the store answers, a missing bucket is not an error.
	Ping(ctx context.Context) error
}

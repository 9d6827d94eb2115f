package storage

import (
	"context"
	"fmt"
)

// Supported backend providers.
const (
	ProviderMinio = "minio"
	ProviderGCS   = "gcs"
)

// Backend is the narrow capability surface the client needs from an
// object-storage SDK. Implementations map their provider's missing-object
// errors to ErrObjectNotFound so callers can match with errors.Is.
type Backend interface {
	// Get returns the full contents of an object.
	Get(ctx context.Context, bucket, object string) ([]byte, error)
	// Put stores data as the full contents of an object, replacing any
	// previous contents.
	Put(ctx context.Context, bucket, object string, data []byte) error
	// Exists reports whether an object is present.
	Exists(ctx context.Context, bucket, object string) (bool, error)
}

// ObjectRef identifies an object within a bucket.
type ObjectRef struct {
	Bucket string
	Name   string
}

func (r ObjectRef) String() string {
	return r.Bucket + "/" + r.Name
}

// NewBackend creates the backend selected by the configuration.
func NewBackend(ctx context.Context, cfg Config) (Backend, error) {
	switch cfg.Provider {
	case ProviderMinio:
		return NewMinioBackend(cfg)
	case ProviderGCS:
		return NewGCSBackend(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown storage provider %q", cfg.Provider)
	}
}

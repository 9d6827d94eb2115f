package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

type gcsBackend struct {
	client *gcs.Client
}

// NewGCSBackend creates a Backend talking to Google Cloud Storage.
// Credentials come from a service account key file, an inline key, or the
// ambient environment, in that order.
func NewGCSBackend(ctx context.Context, cfg Config) (Backend, error) {
	var opts []option.ClientOption
	switch {
	case cfg.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	case cfg.CredentialsJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	}

	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gcs client: %w", err)
	}
	return &gcsBackend{client: client}, nil
}

func (b *gcsBackend) Get(ctx context.Context, bucket, object string) ([]byte, error) {
	r, err := b.client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		return nil, gcsErr(err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, gcsErr(err)
	}
	return data, nil
}

func (b *gcsBackend) Put(ctx context.Context, bucket, object string, data []byte) error {
	w := b.client.Bucket(bucket).Object(object).NewWriter(ctx)
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return gcsErr(err)
	}
	// The write is committed on Close, so its error is the upload result.
	if err := w.Close(); err != nil {
		return gcsErr(err)
	}
	return nil
}

func (b *gcsBackend) Exists(ctx context.Context, bucket, object string) (bool, error) {
	_, err := b.client.Bucket(bucket).Object(object).Attrs(ctx)
	if err != nil {
		if errors.Is(err, gcs.ErrObjectNotExist) || errors.Is(err, gcs.ErrBucketNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func gcsErr(err error) error {
	if errors.Is(err, gcs.ErrObjectNotExist) || errors.Is(err, gcs.ErrBucketNotExist) {
		return ErrObjectNotFound
	}
	return err
}

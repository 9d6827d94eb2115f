package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Record is a single JSON document in a newline-delimited payload.
type Record = map[string]any

// Client is a convenience facade over a storage Backend. It resolves the
// effective bucket for each call (argument, then configured default),
// requires a project id, and converts between Go values and the text, JSON,
// and NDJSON formats stored remotely.
//
// All methods are synchronous and materialize payloads fully in memory;
// there is no streaming, caching, or retrying.
type Client struct {
	backend       Backend
	projectID     string
	defaultBucket string
	logger        *zap.Logger
}

// NewClient creates a new storage client. Construction never fails on
// missing configuration; a missing project id or bucket surfaces as an
// error from the first operation that needs it.
func NewClient(backend Backend, cfg Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		backend:       backend,
		projectID:     cfg.ProjectID,
		defaultBucket: cfg.DefaultBucket,
		logger:        logger,
	}
}

// resolveBucket applies the argument > default > error resolution order and
// enforces the project id requirement. It runs before any backend call.
func (c *Client) resolveBucket(bucket string) (string, error) {
	if c.projectID == "" {
		return "", ErrProjectRequired
	}
	if bucket == "" {
		bucket = c.defaultBucket
	}
	if bucket == "" {
		return "", ErrBucketRequired
	}
	return bucket, nil
}

// DownloadFile writes the remote object's bytes to destPath and returns the
// path written. The parent directory is created if needed. A missing object
// fails with ErrObjectNotFound and leaves no local file behind.
func (c *Client) DownloadFile(ctx context.Context, bucket, object, destPath string) (string, error) {
	bucket, err := c.resolveBucket(bucket)
	if err != nil {
		return "", err
	}

	ok, err := c.backend.Exists(ctx, bucket, object)
	if err != nil {
		return "", fmt.Errorf("stat %s/%s: %w", bucket, object, err)
	}
	if !ok {
		return "", fmt.Errorf("download %s/%s: %w", bucket, object, ErrObjectNotFound)
	}

	data, err := c.backend.Get(ctx, bucket, object)
	if err != nil {
		return "", fmt.Errorf("download %s/%s: %w", bucket, object, err)
	}

	dir := filepath.Dir(destPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	// Write to a temporary name and rename, so a failed write never leaves
	// a partial file at destPath.
	tmp := filepath.Join(dir, "."+filepath.Base(destPath)+"."+uuid.NewString())
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return "", err
	}
	if err := os.Rename(tmp, destPath); err != nil {
		_ = os.Remove(tmp)
		return "", err
	}

	c.logger.Debug("downloaded object",
		zap.String("bucket", bucket),
		zap.String("object", object),
		zap.String("path", destPath),
		zap.Int("bytes", len(data)))
	return destPath, nil
}

// UploadFileOptions adjusts UploadFile behavior.
type UploadFileOptions struct {
	// RemoteName overrides the object name. Defaults to the file's base name.
	RemoteName string
	// DeleteAfterUpload removes the local file once the upload succeeds.
	DeleteAfterUpload bool
}

// UploadFile uploads a local file's bytes to the resolved bucket and returns
// the remote object reference. With DeleteAfterUpload set, the local file is
// removed only after the upload succeeds.
func (c *Client) UploadFile(ctx context.Context, bucket, filePath string, opts UploadFileOptions) (ObjectRef, error) {
	bucket, err := c.resolveBucket(bucket)
	if err != nil {
		return ObjectRef{}, err
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return ObjectRef{}, err
	}

	name := opts.RemoteName
	if name == "" {
		name = filepath.Base(filePath)
	}

	if err := c.backend.Put(ctx, bucket, name, data); err != nil {
		return ObjectRef{}, fmt.Errorf("upload %s/%s: %w", bucket, name, err)
	}

	if opts.DeleteAfterUpload {
		if err := os.Remove(filePath); err != nil {
			return ObjectRef{}, err
		}
	}

	c.logger.Debug("uploaded file",
		zap.String("bucket", bucket),
		zap.String("object", name),
		zap.String("path", filePath),
		zap.Bool("deleted", opts.DeleteAfterUpload))
	return ObjectRef{Bucket: bucket, Name: name}, nil
}

// ReadText returns the object's full contents decoded as UTF-8 text.
func (c *Client) ReadText(ctx context.Context, bucket, object string) (string, error) {
	bucket, err := c.resolveBucket(bucket)
	if err != nil {
		return "", err
	}

	data, err := c.backend.Get(ctx, bucket, object)
	if err != nil {
		return "", fmt.Errorf("read %s/%s: %w", bucket, object, err)
	}
	if !utf8.Valid(data) {
		return "", &DecodeError{Object: object}
	}
	return string(data), nil
}

// ReadJSON parses the object's contents as a single JSON document into v,
// which follows encoding/json unmarshalling rules.
func (c *Client) ReadJSON(ctx context.Context, bucket, object string, v any) error {
	text, err := c.ReadText(ctx, bucket, object)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(text), v); err != nil {
		return &ParseError{Object: object, Err: err}
	}
	return nil
}

// ReadNDJSON parses the object's contents as newline-delimited JSON and
// returns the records in line order. Blank lines yield no record. A line
// that fails to parse fails the whole read; no partial results are returned.
func (c *Client) ReadNDJSON(ctx context.Context, bucket, object string) ([]Record, error) {
	text, err := c.ReadText(ctx, bucket, object)
	if err != nil {
		return nil, err
	}

	lines := strings.Split(text, "\n")
	records := make([]Record, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		var rec Record
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return nil, &ParseError{Object: object, Line: i + 1, Err: err}
		}
		records = append(records, rec)
	}
	return records, nil
}

// UploadText uploads the given text verbatim as the object's contents and
// returns the remote object reference.
func (c *Client) UploadText(ctx context.Context, bucket, data, object string) (ObjectRef, error) {
	bucket, err := c.resolveBucket(bucket)
	if err != nil {
		return ObjectRef{}, err
	}

	if err := c.backend.Put(ctx, bucket, object, []byte(data)); err != nil {
		return ObjectRef{}, fmt.Errorf("upload %s/%s: %w", bucket, object, err)
	}

	c.logger.Debug("uploaded object",
		zap.String("bucket", bucket),
		zap.String("object", object),
		zap.Int("bytes", len(data)))
	return ObjectRef{Bucket: bucket, Name: object}, nil
}

// UploadJSON serializes data as a single JSON document and uploads it.
func (c *Client) UploadJSON(ctx context.Context, bucket string, data any, object string) (ObjectRef, error) {
	encoded, err := json.Marshal(data)
	if err != nil {
		return ObjectRef{}, fmt.Errorf("encode %s: %w", object, err)
	}
	return c.UploadText(ctx, bucket, string(encoded), object)
}

// UploadNDJSON serializes each record as one JSON document per line, in
// input order, with every line newline-terminated, and uploads the result.
// ReadNDJSON round-trips the encoding.
func (c *Client) UploadNDJSON(ctx context.Context, bucket string, records []Record, object string) (ObjectRef, error) {
	var sb strings.Builder
	for _, rec := range records {
		encoded, err := json.Marshal(rec)
		if err != nil {
			return ObjectRef{}, fmt.Errorf("encode %s: %w", object, err)
		}
		sb.Write(encoded)
		sb.WriteByte('\n')
	}
	return c.UploadText(ctx, bucket, sb.String(), object)
}

package storage_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"cloud-storage-manager/core/storage"
	"cloud-storage-manager/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newTestClient(backend storage.Backend) *storage.Client {
	cfg := storage.Config{
		ProjectID:     "test-project",
		DefaultBucket: "data",
	}
	return storage.NewClient(backend, cfg, zap.NewNop())
}

func TestUploadTextReadTextRoundTrip(t *testing.T) {
	backend := new(mocks.Backend)
	client := newTestClient(backend)

	text := "hello, wörld\nsecond line"

	var stored []byte
	backend.On("Put", mock.Anything, "data", "greeting.txt", []byte(text)).
		Run(func(args mock.Arguments) {
			stored = args.Get(3).([]byte)
		}).
		Return(nil)

	ref, err := client.UploadText(context.Background(), "", text, "greeting.txt")
	assert.NoError(t, err)
	assert.Equal(t, storage.ObjectRef{Bucket: "data", Name: "greeting.txt"}, ref)

	backend.On("Get", mock.Anything, "data", "greeting.txt").Return(stored, nil)

	got, err := client.ReadText(context.Background(), "", "greeting.txt")
	assert.NoError(t, err)
	assert.Equal(t, text, got)
}

func TestUploadJSONReadJSONRoundTrip(t *testing.T) {
	backend := new(mocks.Backend)
	client := newTestClient(backend)

	data := map[string]any{
		"name":  "Peter",
		"age":   float64(42),
		"tags":  []any{"a", "b"},
		"inner": map[string]any{"ok": true},
	}

	var stored []byte
	backend.On("Put", mock.Anything, "data", "doc.json", mock.Anything).
		Run(func(args mock.Arguments) {
			stored = args.Get(3).([]byte)
		}).
		Return(nil)

	_, err := client.UploadJSON(context.Background(), "", data, "doc.json")
	assert.NoError(t, err)

	backend.On("Get", mock.Anything, "data", "doc.json").Return(stored, nil)

	var got map[string]any
	err = client.ReadJSON(context.Background(), "", "doc.json", &got)
	assert.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestUploadNDJSONReadNDJSONRoundTrip(t *testing.T) {
	backend := new(mocks.Backend)
	client := newTestClient(backend)

	records := []storage.Record{
		{"Name": "Peter"},
		{"Name": "Jane"},
	}

	var stored []byte
	backend.On("Put", mock.Anything, "data", "employees.ndjson", mock.Anything).
		Run(func(args mock.Arguments) {
			stored = args.Get(3).([]byte)
		}).
		Return(nil)

	_, err := client.UploadNDJSON(context.Background(), "", records, "employees.ndjson")
	assert.NoError(t, err)

	// One document per line, input order, every line newline-terminated.
	assert.Equal(t, "{\"Name\":\"Peter\"}\n{\"Name\":\"Jane\"}\n", string(stored))

	backend.On("Get", mock.Anything, "data", "employees.ndjson").Return(stored, nil)

	got, err := client.ReadNDJSON(context.Background(), "", "employees.ndjson")
	assert.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestReadNDJSONSkipsBlankLines(t *testing.T) {
	backend := new(mocks.Backend)
	client := newTestClient(backend)

	payload := "{\"a\":1}\n\n{\"b\":2}\n"
	backend.On("Get", mock.Anything, "data", "rows.ndjson").Return([]byte(payload), nil)

	got, err := client.ReadNDJSON(context.Background(), "", "rows.ndjson")
	assert.NoError(t, err)
	assert.Equal(t, []storage.Record{{"a": float64(1)}, {"b": float64(2)}}, got)
}

func TestReadNDJSONBadLine(t *testing.T) {
	backend := new(mocks.Backend)
	client := newTestClient(backend)

	payload := "{\"a\":1}\nnot json\n{\"b\":2}\n"
	backend.On("Get", mock.Anything, "data", "rows.ndjson").Return([]byte(payload), nil)

	got, err := client.ReadNDJSON(context.Background(), "", "rows.ndjson")
	assert.Nil(t, got)

	var parseErr *storage.ParseError
	assert.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 2, parseErr.Line)
	assert.Equal(t, "rows.ndjson", parseErr.Object)
}

func TestReadJSONMalformed(t *testing.T) {
	backend := new(mocks.Backend)
	client := newTestClient(backend)

	backend.On("Get", mock.Anything, "data", "doc.json").Return([]byte("{nope"), nil)

	var got map[string]any
	err := client.ReadJSON(context.Background(), "", "doc.json", &got)

	var parseErr *storage.ParseError
	assert.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 0, parseErr.Line)
}

func TestReadTextInvalidUTF8(t *testing.T) {
	backend := new(mocks.Backend)
	client := newTestClient(backend)

	backend.On("Get", mock.Anything, "data", "blob.bin").Return([]byte{0xff, 0xfe, 0xfd}, nil)

	_, err := client.ReadText(context.Background(), "", "blob.bin")

	var decodeErr *storage.DecodeError
	assert.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "blob.bin", decodeErr.Object)
}

func TestBucketResolution(t *testing.T) {
	t.Run("ArgumentOverridesDefault", func(t *testing.T) {
		backend := new(mocks.Backend)
		client := newTestClient(backend)

		backend.On("Put", mock.Anything, "other", "o.txt", []byte("x")).Return(nil)

		ref, err := client.UploadText(context.Background(), "other", "x", "o.txt")
		assert.NoError(t, err)
		assert.Equal(t, "other", ref.Bucket)
	})

	t.Run("NoBucketAnywhere", func(t *testing.T) {
		backend := new(mocks.Backend)
		client := storage.NewClient(backend, storage.Config{ProjectID: "test-project"}, zap.NewNop())

		_, err := client.ReadText(context.Background(), "", "o.txt")
		assert.ErrorIs(t, err, storage.ErrBucketRequired)

		// The configuration error fires before any backend call.
		backend.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("NoProjectID", func(t *testing.T) {
		backend := new(mocks.Backend)
		client := storage.NewClient(backend, storage.Config{DefaultBucket: "data"}, zap.NewNop())

		_, err := client.UploadText(context.Background(), "", "x", "o.txt")
		assert.ErrorIs(t, err, storage.ErrProjectRequired)
		backend.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestDownloadFile(t *testing.T) {
	t.Run("WritesFile", func(t *testing.T) {
		backend := new(mocks.Backend)
		client := newTestClient(backend)

		backend.On("Exists", mock.Anything, "data", "report.csv").Return(true, nil)
		backend.On("Get", mock.Anything, "data", "report.csv").Return([]byte("a,b\n1,2\n"), nil)

		dest := filepath.Join(t.TempDir(), "nested", "report.csv")
		path, err := client.DownloadFile(context.Background(), "", "report.csv", dest)
		assert.NoError(t, err)
		assert.Equal(t, dest, path)

		contents, err := os.ReadFile(dest)
		assert.NoError(t, err)
		assert.Equal(t, "a,b\n1,2\n", string(contents))
	})

	t.Run("NotFoundCreatesNoFile", func(t *testing.T) {
		backend := new(mocks.Backend)
		client := newTestClient(backend)

		backend.On("Exists", mock.Anything, "data", "missing.csv").Return(false, nil)

		dest := filepath.Join(t.TempDir(), "missing.csv")
		_, err := client.DownloadFile(context.Background(), "", "missing.csv", dest)
		assert.ErrorIs(t, err, storage.ErrObjectNotFound)

		_, statErr := os.Stat(dest)
		assert.True(t, os.IsNotExist(statErr))
		backend.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUploadFile(t *testing.T) {
	writeTemp := func(t *testing.T, name, contents string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), name)
		assert.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
		return path
	}

	t.Run("DefaultsRemoteNameToBaseName", func(t *testing.T) {
		backend := new(mocks.Backend)
		client := newTestClient(backend)

		path := writeTemp(t, "local.txt", "payload")
		backend.On("Put", mock.Anything, "data", "local.txt", []byte("payload")).Return(nil)

		ref, err := client.UploadFile(context.Background(), "", path, storage.UploadFileOptions{})
		assert.NoError(t, err)
		assert.Equal(t, storage.ObjectRef{Bucket: "data", Name: "local.txt"}, ref)

		// The local file is kept unless asked otherwise.
		_, statErr := os.Stat(path)
		assert.NoError(t, statErr)
	})

	t.Run("RemoteNameOverride", func(t *testing.T) {
		backend := new(mocks.Backend)
		client := newTestClient(backend)

		path := writeTemp(t, "local.txt", "payload")
		backend.On("Put", mock.Anything, "data", "renamed.txt", []byte("payload")).Return(nil)

		ref, err := client.UploadFile(context.Background(), "", path, storage.UploadFileOptions{
			RemoteName: "renamed.txt",
		})
		assert.NoError(t, err)
		assert.Equal(t, "renamed.txt", ref.Name)
	})

	t.Run("DeleteAfterUpload", func(t *testing.T) {
		backend := new(mocks.Backend)
		client := newTestClient(backend)

		path := writeTemp(t, "local.txt", "payload")
		backend.On("Put", mock.Anything, "data", "local.txt", []byte("payload")).Return(nil)

		_, err := client.UploadFile(context.Background(), "", path, storage.UploadFileOptions{
			DeleteAfterUpload: true,
		})
		assert.NoError(t, err)

		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("KeepsFileWhenUploadFails", func(t *testing.T) {
		backend := new(mocks.Backend)
		client := newTestClient(backend)

		path := writeTemp(t, "local.txt", "payload")
		backend.On("Put", mock.Anything, "data", "local.txt", []byte("payload")).
			Return(errors.New("transport broke"))

		_, err := client.UploadFile(context.Background(), "", path, storage.UploadFileOptions{
			DeleteAfterUpload: true,
		})
		assert.Error(t, err)

		_, statErr := os.Stat(path)
		assert.NoError(t, statErr)
	})

	t.Run("MissingLocalFile", func(t *testing.T) {
		backend := new(mocks.Backend)
		client := newTestClient(backend)

		_, err := client.UploadFile(context.Background(), "", filepath.Join(t.TempDir(), "nope.txt"), storage.UploadFileOptions{})
		assert.True(t, os.IsNotExist(err))
		backend.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestBackendErrorsArePreserved(t *testing.T) {
	backend := new(mocks.Backend)
	client := newTestClient(backend)

	cause := errors.New("connection reset")
	backend.On("Get", mock.Anything, "data", "o.txt").Return(nil, cause)

	_, err := client.ReadText(context.Background(), "", "o.txt")
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "data/o.txt")
}

package storage_test

import (
	"errors"
	"testing"

	"cloud-storage-manager/core/storage"

	"github.com/stretchr/testify/assert"
)

func TestParseError(t *testing.T) {
	tests := []struct {
		name string
		err  *storage.ParseError
		want string
	}{
		{
			name: "WholeDocument",
			err:  &storage.ParseError{Object: "doc.json", Err: errors.New("unexpected end of JSON input")},
			want: "object doc.json: invalid JSON: unexpected end of JSON input",
		},
		{
			name: "WithLine",
			err:  &storage.ParseError{Object: "rows.ndjson", Line: 3, Err: errors.New("invalid character")},
			want: "object rows.ndjson: invalid JSON on line 3: invalid character",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestParseErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &storage.ParseError{Object: "x", Err: cause}
	assert.ErrorIs(t, err, cause)
}

func TestDecodeErrorMessage(t *testing.T) {
	err := &storage.DecodeError{Object: "blob.bin"}
	assert.Equal(t, "object blob.bin is not valid UTF-8 text", err.Error())
}

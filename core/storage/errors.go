package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrProjectRequired indicates that no project id was configured.
	ErrProjectRequired = errors.New("no project id configured")
	// ErrBucketRequired indicates that a call named no bucket and no
	// default bucket is configured.
	ErrBucketRequired = errors.New("no bucket provided")
	// ErrObjectNotFound indicates that the remote object does not exist.
	ErrObjectNotFound = errors.New("object not found")
)

// DecodeError reports object contents that are not valid UTF-8 text.
type DecodeError struct {
	Object string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("object %s is not valid UTF-8 text", e.Object)
}

// ParseError reports object contents that are not valid JSON. Line is the
// 1-based offending line for newline-delimited payloads and zero for
// whole-document parses.
type ParseError struct {
	Object string
	Line   int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("object %s: invalid JSON on line %d: %v", e.Object, e.Line, e.Err)
	}
	return fmt.Sprintf("object %s: invalid JSON: %v", e.Object, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Backend is a mock implementation of storage.Backend
type Backend struct {
	mock.Mock
}

func (m *Backend) Get(ctx context.Context, bucket, object string) ([]byte, error) {
	args := m.Called(ctx, bucket, object)
	if data, ok := args.Get(0).([]byte); ok {
		return data, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Backend) Put(ctx context.Context, bucket, object string, data []byte) error {
	args := m.Called(ctx, bucket, object, data)
	return args.Error(0)
}

func (m *Backend) Exists(ctx context.Context, bucket, object string) (bool, error) {
	args := m.Called(ctx, bucket, object)
	return args.Bool(0), args.Error(1)
}

package mocks

import (
	"context"

	"lynx-bridge/core/history"

	"github.com/stretchr/testify/mock"
)

// Store is a mock implementation of history.Store
type Store struct {
	mock.Mock
}

func (m *Store) Record(ctx context.Context, rec *history.UpdateRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *Store) List(ctx context.Context, limit int) ([]history.UpdateRecord, error) {
	args := m.Called(ctx, limit)
	if records, ok := args.Get(0).([]history.UpdateRecord); ok {
		return records, args.Error(1)
	}
	return nil, args.Error(1)
}

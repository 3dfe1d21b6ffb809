package service

import (
	"context"

	"ai-tutor/internal/domain"
	"ai-tutor/internal/store"

	"github.com/stretchr/testify/mock"
)

// --- MockSnapshotProvider ---
type MockSnapshotProvider struct {
	mock.Mock
}

func (m *MockSnapshotProvider) Current() *store.Snapshot {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*store.Snapshot)
}

func (m *MockSnapshotProvider) Reload(ctx context.Context) (*store.Snapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Snapshot), args.Error(1)
}

// --- MockAttemptWriter ---
type MockAttemptWriter struct {
	mock.Mock
}

func (m *MockAttemptWriter) InsertAttempts(ctx context.Context, attempts []domain.Attempt) (int, error) {
	args := m.Called(ctx, attempts)
	return args.Int(0), args.Error(1)
}

func (m *MockAttemptWriter) CountAttempts(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockAttemptWriter) DeleteAllAttempts(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- MockTransactionManager ---
// Runs fn directly so writer calls are observable; records the resulting error.
type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Called(ctx)
	return fn(ctx)
}

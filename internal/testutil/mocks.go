package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/wortkiste/core/internal/models"
	"github.com/wortkiste/core/internal/modules/ai"
)

// MockOracle is a mock for the AI oracle consumed by the engines.
type MockOracle struct {
	mock.Mock
}

func (m *MockOracle) Complete(ctx context.Context, task ai.Task, req ai.Request) (*ai.Result, error) {
	args := m.Called(ctx, task, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ai.Result), args.Error(1)
}

// MockAlternativeStore is a mock for the alternatives store.
type MockAlternativeStore struct {
	mock.Mock
}

func (m *MockAlternativeStore) FindByItem(item string) ([]models.AlternativeModel, error) {
	args := m.Called(item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AlternativeModel), args.Error(1)
}

func (m *MockAlternativeStore) InsertBatch(records []models.AlternativeModel) error {
	args := m.Called(records)
	return args.Error(0)
}

func (m *MockAlternativeStore) DeleteByItem(item string) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockAlternativeStore) CountByItem() (map[string]int64, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

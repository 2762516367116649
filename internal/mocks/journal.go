package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/nutriscope/backend/internal/journal"
	"github.com/pageza/nutriscope/backend/internal/model"
	"github.com/pageza/nutriscope/backend/internal/service"
)

type MockJournalService struct {
	mock.Mock
}

func (m *MockJournalService) AddEntry(ctx context.Context, entry *model.FoodJournalEntry) (*model.FoodJournalEntry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FoodJournalEntry), args.Error(1)
}

func (m *MockJournalService) Entries(ctx context.Context, date time.Time) ([]model.FoodJournalEntry, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FoodJournalEntry), args.Error(1)
}

func (m *MockJournalService) DayView(ctx context.Context, date time.Time) ([]journal.DayView, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]journal.DayView), args.Error(1)
}

// Archive mocks the Archive method
func (m *MockJournalService) Archive(ctx context.Context, date time.Time) (*service.ArchiveResult, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ArchiveResult), args.Error(1)
}

package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/nutriscope/backend/internal/goals"
	"github.com/pageza/nutriscope/backend/internal/service"
)

type MockGoalService struct {
	mock.Mock
}

func (m *MockGoalService) ActiveOn(ctx context.Context, date time.Time) ([]*goals.GoalSet, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*goals.GoalSet), args.Error(1)
}

func (m *MockGoalService) Create(ctx context.Context, spec goals.Spec) (*goals.GoalSet, error) {
	args := m.Called(ctx, spec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*goals.GoalSet), args.Error(1)
}

func (m *MockGoalService) Get(ctx context.Context, id uuid.UUID) (*goals.GoalSet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*goals.GoalSet), args.Error(1)
}

func (m *MockGoalService) Targets(ctx context.Context, id uuid.UUID, date time.Time) (*service.TargetsView, error) {
	args := m.Called(ctx, id, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TargetsView), args.Error(1)
}

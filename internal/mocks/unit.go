package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/nutriscope/backend/internal/units"
)

// MockUnitService is a mock implementation of the unit service
type MockUnitService struct {
	mock.Mock
}

func (m *MockUnitService) Graph(ctx context.Context) (*units.Graph, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*units.Graph), args.Error(1)
}

func (m *MockUnitService) ListUnits(ctx context.Context) ([]units.Unit, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]units.Unit), args.Error(1)
}

func (m *MockUnitService) AddUnit(ctx context.Context, u units.Unit) (units.Unit, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(units.Unit), args.Error(1)
}

func (m *MockUnitService) AddConversion(ctx context.Context, c units.Conversion, oneWay bool) ([]units.Conversion, error) {
	args := m.Called(ctx, c, oneWay)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]units.Conversion), args.Error(1)
}

// Ratio mocks the Ratio method
func (m *MockUnitService) Ratio(ctx context.Context, from, to uuid.UUID) (float64, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(float64), args.Error(1)
}

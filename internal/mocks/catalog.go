package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/nutriscope/backend/internal/model"
	"github.com/pageza/nutriscope/backend/internal/nutrition"
)

// MockCatalogService is a mock implementation of the catalog service
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Calculator(ctx context.Context, foodItemIDs []uuid.UUID) (*nutrition.Calculator, error) {
	args := m.Called(ctx, foodItemIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*nutrition.Calculator), args.Error(1)
}

func (m *MockCatalogService) CreateNutrient(ctx context.Context, n *model.Nutrient) (*model.Nutrient, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Nutrient), args.Error(1)
}

func (m *MockCatalogService) ListNutrients(ctx context.Context) ([]model.Nutrient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Nutrient), args.Error(1)
}

func (m *MockCatalogService) CreateFoodItem(ctx context.Context, f *model.FoodItem) (*model.FoodItem, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FoodItem), args.Error(1)
}

func (m *MockCatalogService) GetFoodItem(ctx context.Context, id uuid.UUID) (*model.FoodItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FoodItem), args.Error(1)
}

package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/nutriscope/backend/internal/model"
	"github.com/pageza/nutriscope/backend/internal/nutrition"
)

// CatalogService handles nutrient and food item records and builds engine snapshots from them.
type CatalogService struct {
	db     *gorm.DB
	graphs GraphProvider
	log    *slog.Logger
}

// NewCatalogService creates a new CatalogService instance
func NewCatalogService(db *gorm.DB, graphs GraphProvider, logger *slog.Logger) *CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogService{db: db, graphs: graphs, log: logger}
}

// CreateNutrient stores a nutrient after checking its default unit exists.
func (s *CatalogService) CreateNutrient(ctx context.Context, n *model.Nutrient) (*model.Nutrient, error) {
	if n.Name == "" {
		return nil, fmt.Errorf("%w: nutrient name is required", ErrInvalidInput)
	}
	if n.DailyValue != nil && *n.DailyValue < 0 {
		return nil, fmt.Errorf("%w: daily value must not be negative", ErrInvalidInput)
	}
	if err := s.requireUnits(ctx, n.DefaultUnitID); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(n).Error; err != nil {
		return nil, err
	}
	return n, nil
}

// ListNutrients returns nutrients in display order.
func (s *CatalogService) ListNutrients(ctx context.Context) ([]model.Nutrient, error) {
	var rows []model.Nutrient
	if err := s.db.WithContext(ctx).Order("display_order, name").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// CreateFoodItem stores a food item with its serving sizes and nutrient records.
func (s *CatalogService) CreateFoodItem(ctx context.Context, f *model.FoodItem) (*model.FoodItem, error) {
	if f.Name == "" {
		return nil, fmt.Errorf("%w: food item name is required", ErrInvalidInput)
	}
	unitIDs := make([]uuid.UUID, 0, len(f.ServingSizes)+len(f.Nutrients))
	for i, ss := range f.ServingSizes {
		if ss.Quantity < 0 {
			return nil, fmt.Errorf("%w: serving size %d is negative", ErrInvalidInput, i)
		}
		f.ServingSizes[i].Position = i
		unitIDs = append(unitIDs, ss.UnitID)
	}
	for i, n := range f.Nutrients {
		if n.Percent == nil && n.UnitID == nil {
			return nil, fmt.Errorf("%w: nutrient %d needs a unit or a percent", ErrInvalidInput, i)
		}
		if n.UnitID != nil {
			unitIDs = append(unitIDs, *n.UnitID)
		}
	}
	if err := s.requireUnits(ctx, unitIDs...); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(f).Error; err != nil {
		return nil, err
	}
	return f, nil
}

// GetFoodItem retrieves a food item by ID
func (s *CatalogService) GetFoodItem(ctx context.Context, id uuid.UUID) (*model.FoodItem, error) {
	var f model.FoodItem
	err := s.db.WithContext(ctx).
		Preload("ServingSizes").
		Preload("Nutrients").
		First(&f, "id = ?", id).Error
	if err != nil {
		return nil, notFound(err, "food item", id)
	}
	return &f, nil
}

// Calculator loads a read-only snapshot holding the conversion graph, every nutrient and
// the listed food items. Food items that do not exist are simply absent from the snapshot.
func (s *CatalogService) Calculator(ctx context.Context, foodItemIDs []uuid.UUID) (*nutrition.Calculator, error) {
	graph, err := s.graphs.Graph(ctx)
	if err != nil {
		return nil, err
	}

	var nutrientRows []model.Nutrient
	if err := s.db.WithContext(ctx).Find(&nutrientRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load nutrients: %w", err)
	}
	nutrients := make([]nutrition.Nutrient, len(nutrientRows))
	for i, n := range nutrientRows {
		nutrients[i] = n.ToEngine()
	}

	var foodRows []model.FoodItem
	if len(foodItemIDs) > 0 {
		err := s.db.WithContext(ctx).
			Preload("ServingSizes").
			Preload("Nutrients").
			Where("id IN ?", foodItemIDs).
			Find(&foodRows).Error
		if err != nil {
			return nil, fmt.Errorf("failed to load food items: %w", err)
		}
	}
	foods := make([]nutrition.FoodItem, len(foodRows))
	for i, f := range foodRows {
		foods[i] = f.ToEngine()
	}

	catalog := nutrition.NewCatalog(graph, nutrients, foods)
	return nutrition.NewCalculator(catalog, s.log), nil
}

func (s *CatalogService) requireUnits(ctx context.Context, ids ...uuid.UUID) error {
	distinct := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		distinct[id] = true
	}
	if len(distinct) == 0 {
		return nil
	}
	list := make([]uuid.UUID, 0, len(distinct))
	for id := range distinct {
		list = append(list, id)
	}
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Unit{}).Where("id IN ?", list).Count(&count).Error; err != nil {
		return err
	}
	if int(count) != len(list) {
		return fmt.Errorf("unit: %w", ErrNotFound)
	}
	return nil
}

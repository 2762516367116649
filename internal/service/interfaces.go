package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pageza/nutriscope/backend/internal/goals"
	"github.com/pageza/nutriscope/backend/internal/journal"
	"github.com/pageza/nutriscope/backend/internal/model"
	"github.com/pageza/nutriscope/backend/internal/nutrition"
	"github.com/pageza/nutriscope/backend/internal/units"
)

// GraphProvider supplies the current conversion graph.
type GraphProvider interface {
	Graph(ctx context.Context) (*units.Graph, error)
}

// CatalogProvider builds engine snapshots for a set of food items.
type CatalogProvider interface {
	Calculator(ctx context.Context, foodItemIDs []uuid.UUID) (*nutrition.Calculator, error)
}

// GoalProvider lists the goal sets active on a date.
type GoalProvider interface {
	ActiveOn(ctx context.Context, date time.Time) ([]*goals.GoalSet, error)
}

// IUnitService defines the interface for unit and conversion operations
type IUnitService interface {
	GraphProvider
	ListUnits(ctx context.Context) ([]units.Unit, error)
	AddUnit(ctx context.Context, u units.Unit) (units.Unit, error)
	AddConversion(ctx context.Context, c units.Conversion, oneWay bool) ([]units.Conversion, error)
	Ratio(ctx context.Context, from, to uuid.UUID) (float64, error)
}

// ICatalogService defines the interface for nutrient and food item operations
type ICatalogService interface {
	CatalogProvider
	CreateNutrient(ctx context.Context, n *model.Nutrient) (*model.Nutrient, error)
	ListNutrients(ctx context.Context) ([]model.Nutrient, error)
	CreateFoodItem(ctx context.Context, f *model.FoodItem) (*model.FoodItem, error)
	GetFoodItem(ctx context.Context, id uuid.UUID) (*model.FoodItem, error)
}

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	CreateRecipe(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error)
	GetRecipe(ctx context.Context, id uuid.UUID) (*model.Recipe, error)
	Nutrition(ctx context.Context, id uuid.UUID) (*RecipeNutrition, error)
	Scale(ctx context.Context, id uuid.UUID, req ScaleRequest) (*ScaleResult, error)
}

// IGoalService defines the interface for goal set operations
type IGoalService interface {
	GoalProvider
	Create(ctx context.Context, spec goals.Spec) (*goals.GoalSet, error)
	Get(ctx context.Context, id uuid.UUID) (*goals.GoalSet, error)
	Targets(ctx context.Context, id uuid.UUID, date time.Time) (*TargetsView, error)
}

// IJournalService defines the interface for journal operations
type IJournalService interface {
	AddEntry(ctx context.Context, entry *model.FoodJournalEntry) (*model.FoodJournalEntry, error)
	Entries(ctx context.Context, date time.Time) ([]model.FoodJournalEntry, error)
	DayView(ctx context.Context, date time.Time) ([]journal.DayView, error)
	Archive(ctx context.Context, date time.Time) (*ArchiveResult, error)
}

var (
	_ IUnitService    = (*UnitService)(nil)
	_ ICatalogService = (*CatalogService)(nil)
	_ IRecipeService  = (*RecipeService)(nil)
	_ IGoalService    = (*GoalService)(nil)
	_ IJournalService = (*JournalService)(nil)
	_ GraphCache      = (*RedisGraphCache)(nil)
	_ GraphCache      = NoGraphCache{}
)

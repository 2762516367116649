package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pageza/nutriscope/backend/internal/database"
	"github.com/pageza/nutriscope/backend/internal/model"
	"github.com/pageza/nutriscope/backend/internal/units"
)

type memoryGraphCache struct {
	snap          *GraphSnapshot
	hits          int
	sets          int
	invalidations int
}

func (c *memoryGraphCache) Get(context.Context) (*GraphSnapshot, error) {
	if c.snap != nil {
		c.hits++
	}
	return c.snap, nil
}

func (c *memoryGraphCache) Set(_ context.Context, snap *GraphSnapshot) error {
	c.sets++
	c.snap = snap
	return nil
}

func (c *memoryGraphCache) Invalidate(context.Context) error {
	c.invalidations++
	c.snap = nil
	return nil
}

type fixture struct {
	db      *gorm.DB
	cache   *memoryGraphCache
	units   *UnitService
	catalog *CatalogService
	recipes *RecipeService
	goals   *GoalService
	journal *JournalService

	cups, floz, grams, mg, each uuid.UUID

	protein, iron, vitaminC model.Nutrient
	oats, apple             model.FoodItem
}

func floatPtr(v float64) *float64 { return &v }

func uuidPtr(v uuid.UUID) *uuid.UUID { return &v }

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenSQLiteMemory()
	require.NoError(t, err)
	return db
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	db := newTestDB(t)

	f := &fixture{
		db:    db,
		cache: &memoryGraphCache{},
		cups:  units.SeedUnitID("Cups"),
		floz:  units.SeedUnitID("Fluid Ounces"),
		grams: units.SeedUnitID("Grams"),
		mg:    units.SeedUnitID("Milligrams"),
		each:  units.SeedUnitID("Each"),
	}
	f.units = NewUnitService(db, f.cache, nil)
	f.catalog = NewCatalogService(db, f.units, nil)
	f.recipes = NewRecipeService(db, f.catalog, nil)
	f.goals = NewGoalService(db, nil)
	f.journal = NewJournalService(db, f.catalog, f.goals, nil, nil)

	_, err := f.units.Seed(ctx)
	require.NoError(t, err)

	f.protein = model.Nutrient{Name: "Protein", DefaultUnitID: f.grams, DailyValue: floatPtr(50), DisplayOrder: 1}
	f.iron = model.Nutrient{Name: "Iron", DefaultUnitID: f.mg, DailyValue: floatPtr(18), DisplayOrder: 2}
	f.vitaminC = model.Nutrient{Name: "Vitamin C", DefaultUnitID: f.mg, DisplayOrder: 3}
	for _, n := range []*model.Nutrient{&f.protein, &f.iron, &f.vitaminC} {
		_, err := f.catalog.CreateNutrient(ctx, n)
		require.NoError(t, err)
	}

	f.oats = model.FoodItem{
		Name:         "Oats",
		ServingSizes: []model.ServingSize{{Quantity: 1, UnitID: f.cups}},
		Nutrients: []model.FoodItemNutrient{
			{NutrientID: f.protein.ID, Quantity: 2, UnitID: uuidPtr(f.grams)},
			{NutrientID: f.iron.ID, Percent: floatPtr(10)},
		},
	}
	f.apple = model.FoodItem{
		Name:         "Apple",
		ServingSizes: []model.ServingSize{{Quantity: 1, UnitID: f.each}},
		Nutrients: []model.FoodItemNutrient{
			{NutrientID: f.vitaminC.ID, Quantity: 8, UnitID: uuidPtr(f.mg)},
		},
	}
	for _, food := range []*model.FoodItem{&f.oats, &f.apple} {
		_, err := f.catalog.CreateFoodItem(ctx, food)
		require.NoError(t, err)
	}
	return f
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

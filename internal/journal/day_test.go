package journal

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/nutriscope/backend/internal/goals"
	"github.com/pageza/nutriscope/backend/internal/nutrition"
	"github.com/pageza/nutriscope/backend/internal/units"
)

func floatPtr(v float64) *float64 { return &v }

type dayFixture struct {
	cups, grams, milligrams uuid.UUID
	protein, iron           uuid.UUID
	oats                    nutrition.FoodItem
	builder                 *Builder
	goalSet                 *goals.GoalSet
}

func newDayFixture() *dayFixture {
	f := &dayFixture{
		cups:       units.SeedUnitID("Cups"),
		grams:      units.SeedUnitID("Grams"),
		milligrams: units.SeedUnitID("Milligrams"),
		protein:    uuid.New(),
		iron:       uuid.New(),
	}
	f.oats = nutrition.FoodItem{
		ID:           uuid.New(),
		Name:         "Oats",
		ServingSizes: []nutrition.ServingSize{{Quantity: 1, Unit: f.cups}},
		Nutrients: []nutrition.FoodItemNutrient{
			{NutrientID: f.protein, Amount: nutrition.Absolute{Quantity: 10, Unit: f.grams}},
		},
	}
	catalog := nutrition.NewCatalog(units.DefaultGraph(),
		[]nutrition.Nutrient{
			{ID: f.protein, Name: "Protein", DefaultUnit: f.grams},
			{ID: f.iron, Name: "Iron", DefaultUnit: f.milligrams, DailyValue: floatPtr(18)},
		},
		[]nutrition.FoodItem{f.oats},
	)
	f.builder = NewBuilder(nutrition.NewCalculator(catalog, nil), nil)
	f.goalSet = &goals.GoalSet{
		ID:        uuid.New(),
		Name:      "Maintenance",
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Period:    2,
		DayModes:  []goals.DayMode{goals.DifferentGoal, goals.DifferentGoal},
		Nutrients: []goals.TrackedNutrient{
			{NutrientID: f.protein, Unit: f.grams, Targets: []goals.Target{
				{Minimum: floatPtr(20), Maximum: floatPtr(40), StartDay: 0, EndDay: 0},
				{Minimum: floatPtr(50), StartDay: 1, EndDay: 1},
			}},
			{NutrientID: f.iron, Unit: f.milligrams, Targets: []goals.Target{
				{Minimum: floatPtr(8), StartDay: 0, EndDay: 1},
			}},
		},
	}
	return f
}

func TestBuildDayTotals(t *testing.T) {
	f := newDayFixture()
	day := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	entries := []nutrition.JournalEntry{
		{ID: uuid.New(), Date: day, FoodItemID: f.oats.ID, Quantity: 1.5, Unit: f.cups},
		{ID: uuid.New(), Date: day, FoodItemID: f.oats.ID, Quantity: 1, Unit: f.cups},
	}

	views := f.builder.Build(day, []*goals.GoalSet{f.goalSet}, entries)
	require.Len(t, views, 1)
	view := views[0]
	assert.Equal(t, 0, view.DayInPeriod)
	require.Len(t, view.Nutrients, 2)

	protein := view.Nutrients[0]
	assert.Equal(t, "Protein", protein.NutrientName)
	assert.Equal(t, "Grams", protein.UnitName)
	assert.InDelta(t, 25, protein.Total, 1e-9)
	assert.Equal(t, 20.0, *protein.Target.Minimum)
	assert.Equal(t, StatusWithin, protein.Status)

	// oats report no iron: zero, not unavailable
	iron := view.Nutrients[1]
	assert.Equal(t, 0.0, iron.Total)
	assert.Equal(t, 0, iron.Unavailable)
	assert.Equal(t, StatusBelow, iron.Status)
}

func TestBuildDayCountsFailedProjections(t *testing.T) {
	f := newDayFixture()
	day := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	entries := []nutrition.JournalEntry{
		{ID: uuid.New(), Date: day, FoodItemID: f.oats.ID, Quantity: 100, Unit: f.grams},
		{ID: uuid.New(), Date: day, FoodItemID: f.oats.ID, Quantity: 2, Unit: f.cups},
	}

	views := f.builder.Build(day, []*goals.GoalSet{f.goalSet}, entries)
	require.Len(t, views, 1)
	protein := views[0].Nutrients[0]
	assert.Equal(t, 1, views[0].DayInPeriod)
	assert.InDelta(t, 20, protein.Total, 1e-9)
	assert.Equal(t, 1, protein.Unavailable)
	assert.Equal(t, StatusBelow, protein.Status)
}

func TestBuildDaySkipsInactiveGoalSets(t *testing.T) {
	f := newDayFixture()
	views := f.builder.Build(time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), []*goals.GoalSet{f.goalSet}, nil)
	assert.Empty(t, views)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, StatusWithin, Classify(5, Target{}))
	assert.Equal(t, StatusBelow, Classify(5, Target{Minimum: floatPtr(6)}))
	assert.Equal(t, StatusWithin, Classify(6, Target{Minimum: floatPtr(6), Maximum: floatPtr(6)}))
	assert.Equal(t, StatusAbove, Classify(7, Target{Maximum: floatPtr(6)}))
}

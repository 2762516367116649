package nutrition

import (
	"github.com/google/uuid"
	"github.com/pageza/nutriscope/backend/internal/units"
)

type fixture struct {
	cups, ounces, grams, milligrams, each uuid.UUID
	protein, iron, vitaminC           uuid.UUID
	oats, milk, apple                 FoodItem
	graph                             *units.Graph
	calc                              *Calculator
}

func floatPtr(v float64) *float64 { return &v }

func newFixture() *fixture {
	f := &fixture{
		cups:       uuid.New(),
		ounces:     uuid.New(),
		grams:      uuid.New(),
		milligrams: uuid.New(),
		each:       uuid.New(),
		protein:    uuid.New(),
		iron:       uuid.New(),
		vitaminC:   uuid.New(),
	}
	f.graph = units.NewGraph(
		[]units.Unit{
			{ID: f.cups, Name: "Cups", Type: units.TypeVolume},
			{ID: f.ounces, Name: "Ounces", Type: units.TypeVolume},
			{ID: f.grams, Name: "Grams", Type: units.TypeMass},
			{ID: f.milligrams, Name: "Milligrams", Type: units.TypeMass},
			{ID: f.each, Name: "Each", Type: units.TypeCount},
		},
		[]units.Conversion{
			{From: f.cups, To: f.ounces, Ratio: 8},
			{From: f.ounces, To: f.cups, Ratio: 0.125},
			{From: f.grams, To: f.milligrams, Ratio: 1000},
			{From: f.milligrams, To: f.grams, Ratio: 0.001},
		},
	)

	f.oats = FoodItem{
		ID:           uuid.New(),
		Name:         "Oats",
		ServingSizes: []ServingSize{{Quantity: 1, Unit: f.cups}},
		Nutrients: []FoodItemNutrient{
			{NutrientID: f.protein, Amount: Absolute{Quantity: 2, Unit: f.grams}},
			{NutrientID: f.iron, Amount: PercentOfDailyValue{Percent: 10}},
		},
	}
	f.milk = FoodItem{
		ID:           uuid.New(),
		Name:         "Milk",
		ServingSizes: []ServingSize{{Quantity: 8, Unit: f.ounces}, {Quantity: 240, Unit: f.grams}},
		Nutrients: []FoodItemNutrient{
			{NutrientID: f.protein, Amount: Absolute{Quantity: 8000, Unit: f.milligrams}},
		},
	}
	f.apple = FoodItem{
		ID:           uuid.New(),
		Name:         "Apple",
		ServingSizes: []ServingSize{{Quantity: 1, Unit: f.each}},
		Nutrients: []FoodItemNutrient{
			{NutrientID: f.vitaminC, Amount: Absolute{Quantity: 8, Unit: f.milligrams}},
		},
	}

	catalog := NewCatalog(f.graph,
		[]Nutrient{
			{ID: f.protein, Name: "Protein", DefaultUnit: f.grams, DailyValue: floatPtr(50), DisplayOrder: 1},
			{ID: f.iron, Name: "Iron", DefaultUnit: f.milligrams, DailyValue: floatPtr(18), DisplayOrder: 5},
			{ID: f.vitaminC, Name: "Vitamin C", DefaultUnit: f.milligrams, DisplayOrder: 6},
		},
		[]FoodItem{f.oats, f.milk, f.apple},
	)
	f.calc = NewCalculator(catalog, nil)
	return f
}

func findSummary(summaries []NutrientSummary, id uuid.UUID) (NutrientSummary, bool) {
	for _, s := range summaries {
		if s.NutrientID == id {
			return s, true
		}
	}
	return NutrientSummary{}, false
}

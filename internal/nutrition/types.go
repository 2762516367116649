package nutrition

import (
	"time"

	"github.com/google/uuid"
)

// Nutrient is a catalog entry. DailyValue is expressed in DefaultUnit.
type Nutrient struct {
	ID           uuid.UUID
	Name         string
	DefaultUnit  uuid.UUID
	DailyValue   *float64
	Group        string
	DisplayOrder int
}

// Quantity is a magnitude in a unit.
type Quantity struct {
	Quantity float64   `json:"quantity"`
	Unit     uuid.UUID `json:"unit_id"`
}

// ServingSize is the per-serving pivot used for nutrient math.
type ServingSize Quantity

// Amount is how a food item states one nutrient: Absolute or PercentOfDailyValue.
type Amount interface {
	isAmount()
}

// Absolute is a nutrient quantity per serving in an explicit unit.
type Absolute struct {
	Quantity float64
	Unit     uuid.UUID
}

// PercentOfDailyValue is a nutrient quantity per serving relative to the nutrient's daily value.
type PercentOfDailyValue struct {
	Percent float64
}

func (Absolute) isAmount()            {}
func (PercentOfDailyValue) isAmount() {}

// FoodItemNutrient is one nutrient carried by a food item per serving.
type FoodItemNutrient struct {
	NutrientID uuid.UUID
	Amount     Amount
}

// FoodItem is a read-only snapshot of a food with its servings and nutrients.
type FoodItem struct {
	ID           uuid.UUID
	Name         string
	Brand        string
	ServingSizes []ServingSize
	Nutrients    []FoodItemNutrient
}

// Nutrient returns the food item's record for a nutrient, if any.
func (f FoodItem) Nutrient(id uuid.UUID) (FoodItemNutrient, bool) {
	for _, n := range f.Nutrients {
		if n.NutrientID == id {
			return n, true
		}
	}
	return FoodItemNutrient{}, false
}

// Ingredient is one line of a recipe.
type Ingredient struct {
	FoodItemID uuid.UUID
	Quantity   float64
	Unit       uuid.UUID
}

// Recipe lists ingredients and the batch sizes the recipe yields. Each AmountMade
// entry describes the same physical batch in a different unit.
type Recipe struct {
	ID          uuid.UUID
	Name        string
	Source      string
	Notes       string
	Ingredients []Ingredient
	AmountsMade []Quantity
}

// JournalEntry is one logged quantity of a food item.
type JournalEntry struct {
	ID         uuid.UUID
	Date       time.Time
	Time       *time.Time
	FoodItemID uuid.UUID
	Quantity   float64
	Unit       uuid.UUID
}

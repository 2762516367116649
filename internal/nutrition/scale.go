package nutrition

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

// ScaledIngredient is an ingredient quantity after scaling. The unit never changes.
type ScaledIngredient struct {
	FoodItemID     uuid.UUID `json:"food_item_id"`
	ScaledQuantity float64   `json:"scaled_quantity"`
	Unit           uuid.UUID `json:"unit_id"`
}

// ScaledRecipe is a recipe re-expressed under a unitless scale ratio.
type ScaledRecipe struct {
	Ratio       float64            `json:"ratio"`
	Ingredients []ScaledIngredient `json:"ingredients"`
	AmountsMade []Quantity         `json:"amounts_made"`
}

// ScaleByFactor multiplies every ingredient and yield quantity by factor.
func ScaleByFactor(recipe Recipe, factor float64) (ScaledRecipe, error) {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return ScaledRecipe{}, fmt.Errorf("%w: %v", ErrInvalidScaleFactor, factor)
	}
	out := ScaledRecipe{
		Ratio:       factor,
		Ingredients: make([]ScaledIngredient, len(recipe.Ingredients)),
		AmountsMade: make([]Quantity, len(recipe.AmountsMade)),
	}
	for i, ing := range recipe.Ingredients {
		out.Ingredients[i] = ScaledIngredient{
			FoodItemID:     ing.FoodItemID,
			ScaledQuantity: ing.Quantity * factor,
			Unit:           ing.Unit,
		}
	}
	for i, am := range recipe.AmountsMade {
		out.AmountsMade[i] = Quantity{Quantity: am.Quantity * factor, Unit: am.Unit}
	}
	return out, nil
}

// PivotRatio returns desired.Quantity * ratio(desired.Unit, original.Unit) / original.Quantity.
func (c *Calculator) PivotRatio(original, desired Quantity) (float64, error) {
	if original.Quantity == 0 {
		return 0, ErrZeroPivotQuantity
	}
	if desired.Quantity <= 0 {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidPivotQuantity, desired.Quantity)
	}
	r, err := c.catalog.Graph.Ratio(desired.Unit, original.Unit)
	if err != nil {
		return 0, err
	}
	return desired.Quantity * r / original.Quantity, nil
}

// ScaleByIngredient scales the recipe so ingredient index ends up at desired.
func (c *Calculator) ScaleByIngredient(recipe Recipe, index int, desired Quantity) (ScaledRecipe, error) {
	if index < 0 || index >= len(recipe.Ingredients) {
		return ScaledRecipe{}, fmt.Errorf("ingredient %d: %w", index, ErrIndexOutOfRange)
	}
	ing := recipe.Ingredients[index]
	ratio, err := c.PivotRatio(Quantity{Quantity: ing.Quantity, Unit: ing.Unit}, desired)
	if err != nil {
		return ScaledRecipe{}, fmt.Errorf("ingredient %d: %w", index, err)
	}
	return ScaleByFactor(recipe, ratio)
}

// ScaleByAmountMade scales the recipe so that yield entry index ends up at desired.
func (c *Calculator) ScaleByAmountMade(recipe Recipe, index int, desired Quantity) (ScaledRecipe, error) {
	if index < 0 || index >= len(recipe.AmountsMade) {
		return ScaledRecipe{}, fmt.Errorf("amount made %d: %w", index, ErrIndexOutOfRange)
	}
	ratio, err := c.PivotRatio(recipe.AmountsMade[index], desired)
	if err != nil {
		return ScaledRecipe{}, fmt.Errorf("amount made %d: %w", index, err)
	}
	return ScaleByFactor(recipe, ratio)
}

// Reexpress converts a quantity into another unit, independent of any scaling.
func (c *Calculator) Reexpress(q Quantity, to uuid.UUID) (Quantity, error) {
	v, err := c.catalog.Graph.Convert(q.Quantity, q.Unit, to)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Quantity: v, Unit: to}, nil
}

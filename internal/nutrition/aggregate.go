package nutrition

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"
)

// FoodItemContribution is the amount of one nutrient supplied by one ingredient.
// Quantity is nil when the contribution is unavailable; Reason then says why.
type FoodItemContribution struct {
	IngredientIndex int       `json:"ingredient_index"`
	FoodItemID      uuid.UUID `json:"food_item_id"`
	FoodItemName    string    `json:"food_item_name"`
	Quantity        *float64  `json:"quantity,omitempty"`
	UnitID          uuid.UUID `json:"unit_id,omitempty"`
	UnitName        string    `json:"unit_name,omitempty"`
	Reason          string    `json:"reason,omitempty"`
	Err             error     `json:"-"`
}

// Available reports whether the contribution has a quantity.
func (f FoodItemContribution) Available() bool {
	return f.Quantity != nil
}

// NutrientSummary is one row of a recipe nutrition table.
// TotalQuantity is expressed in the nutrient's default unit.
type NutrientSummary struct {
	NutrientID        uuid.UUID              `json:"nutrient_id"`
	NutrientName      string                 `json:"nutrient_name"`
	UnitID            uuid.UUID              `json:"unit_id"`
	UnitName          string                 `json:"unit_name"`
	DisplayOrder      int                    `json:"unit_display_order"`
	TotalQuantity     float64                `json:"total_quantity"`
	PercentDailyValue *float64               `json:"percent_daily_value,omitempty"`
	Contributions     []FoodItemContribution `json:"contributions"`
	Unaligned         int                    `json:"unaligned,omitempty"`
}

// Aggregate builds the nutrition table of a recipe: one summary per distinct nutrient
// reported by any ingredient. Per-ingredient failures mark a contribution unavailable
// and never abort the table. Negative ingredient quantities reject the whole recipe.
func (c *Calculator) Aggregate(recipe Recipe) ([]NutrientSummary, error) {
	for i, ing := range recipe.Ingredients {
		if ing.Quantity < 0 {
			return nil, fmt.Errorf("ingredient %d: %w", i, ErrNegativeQuantity)
		}
	}

	type ingredientState struct {
		food     FoodItem
		servings float64
		err      error
	}
	states := make([]ingredientState, len(recipe.Ingredients))
	seen := make(map[uuid.UUID]bool)
	var nutrientIDs []uuid.UUID

	for i, ing := range recipe.Ingredients {
		food, ok := c.catalog.FoodItems[ing.FoodItemID]
		if !ok {
			states[i] = ingredientState{err: fmt.Errorf("%w: %s", ErrUnknownFoodItem, ing.FoodItemID)}
			c.log.Warn("Recipe ingredient references unknown food item",
				slog.String("recipe_id", recipe.ID.String()),
				slog.String("food_item_id", ing.FoodItemID.String()))
			continue
		}
		servings, err := c.servingsUsed(food, ing.Quantity, ing.Unit)
		if err != nil {
			c.logContained("Ingredient contribution unavailable", err,
				slog.String("recipe_id", recipe.ID.String()),
				slog.String("food_item_id", food.ID.String()),
				slog.String("unit_id", ing.Unit.String()))
		}
		states[i] = ingredientState{food: food, servings: servings, err: err}

		for _, fin := range food.Nutrients {
			if seen[fin.NutrientID] {
				continue
			}
			seen[fin.NutrientID] = true
			nutrientIDs = append(nutrientIDs, fin.NutrientID)
		}
	}

	summaries := make([]NutrientSummary, 0, len(nutrientIDs))
	for _, nid := range nutrientIDs {
		nutrient, ok := c.catalog.Nutrients[nid]
		if !ok {
			c.log.Warn("Skipping nutrient missing from catalog", slog.String("nutrient_id", nid.String()))
			continue
		}

		summary := NutrientSummary{
			NutrientID:    nutrient.ID,
			NutrientName:  nutrient.Name,
			UnitID:        nutrient.DefaultUnit,
			UnitName:      c.catalog.Graph.UnitName(nutrient.DefaultUnit),
			DisplayOrder:  nutrient.DisplayOrder,
			Contributions: make([]FoodItemContribution, 0, len(recipe.Ingredients)),
		}

		for i, ing := range recipe.Ingredients {
			st := states[i]
			contribution := FoodItemContribution{
				IngredientIndex: i,
				FoodItemID:      ing.FoodItemID,
				FoodItemName:    st.food.Name,
			}
			q, unit, err := c.contribution(st.food, st.servings, st.err, nid)
			if err != nil {
				contribution.Err = err
				contribution.Reason = err.Error()
				summary.Contributions = append(summary.Contributions, contribution)
				continue
			}
			contribution.Quantity = &q
			contribution.UnitID = unit
			contribution.UnitName = c.catalog.Graph.UnitName(unit)
			summary.Contributions = append(summary.Contributions, contribution)

			aligned, err := c.catalog.Graph.Convert(q, unit, nutrient.DefaultUnit)
			if err != nil {
				summary.Unaligned++
				c.log.Warn("Contribution unit cannot be aligned with nutrient unit",
					slog.String("nutrient_id", nid.String()),
					slog.String("from_unit", unit.String()),
					slog.String("to_unit", nutrient.DefaultUnit.String()))
				continue
			}
			summary.TotalQuantity += aligned
		}

		if nutrient.DailyValue != nil && *nutrient.DailyValue > 0 {
			pdv := summary.TotalQuantity / *nutrient.DailyValue * 100
			summary.PercentDailyValue = &pdv
		}
		summaries = append(summaries, summary)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		a, b := summaries[i], summaries[j]
		if a.DisplayOrder != b.DisplayOrder {
			return a.DisplayOrder < b.DisplayOrder
		}
		if a.NutrientName != b.NutrientName {
			return a.NutrientName < b.NutrientName
		}
		return a.NutrientID.String() < b.NutrientID.String()
	})
	return summaries, nil
}

// contribution returns servingsUsed * Qn for one nutrient, in the record's unit.
func (c *Calculator) contribution(food FoodItem, servings float64, servingsErr error, nutrientID uuid.UUID) (float64, uuid.UUID, error) {
	if servingsErr != nil {
		return 0, uuid.Nil, servingsErr
	}
	fin, ok := food.Nutrient(nutrientID)
	if !ok {
		return 0, uuid.Nil, ErrNutrientNotReported
	}
	perServing, unit, err := c.perServing(fin)
	if err != nil {
		return 0, uuid.Nil, err
	}
	return servings * perServing, unit, nil
}

func (c *Calculator) logContained(msg string, err error, attrs ...any) {
	attrs = append(attrs, slog.String("error", err.Error()))
	if errors.Is(err, ErrDivisionByZeroServingSize) || errors.Is(err, ErrNoMatchingServingSizeType) {
		c.log.Error(msg, attrs...)
		return
	}
	c.log.Warn(msg, attrs...)
}

package nutrition

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Project returns how much of a nutrient a journal entry contributes, expressed in targetUnit.
// A food item that does not report the nutrient contributes exactly 0 with no error.
// Every other failure also yields 0 and is returned so the caller can count it.
func (c *Calculator) Project(entry JournalEntry, nutrientID, targetUnit uuid.UUID) (float64, error) {
	if entry.Quantity < 0 {
		return 0, fmt.Errorf("journal entry %s: %w", entry.ID, ErrNegativeQuantity)
	}
	food, ok := c.catalog.FoodItems[entry.FoodItemID]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownFoodItem, entry.FoodItemID)
	}
	fin, ok := food.Nutrient(nutrientID)
	if !ok {
		return 0, nil
	}

	servings, err := c.servingsUsed(food, entry.Quantity, entry.Unit)
	if err != nil {
		c.logContained("Journal entry projection failed", err,
			slog.String("journal_entry_id", entry.ID.String()),
			slog.String("food_item_id", food.ID.String()),
			slog.String("nutrient_id", nutrientID.String()))
		return 0, err
	}
	perServing, unit, err := c.perServing(fin)
	if err != nil {
		c.logContained("Journal entry projection failed", err,
			slog.String("journal_entry_id", entry.ID.String()),
			slog.String("nutrient_id", nutrientID.String()))
		return 0, err
	}
	r, err := c.catalog.Graph.Ratio(unit, targetUnit)
	if err != nil {
		c.log.Warn("Journal entry nutrient cannot be expressed in target unit",
			slog.String("journal_entry_id", entry.ID.String()),
			slog.String("from_unit", unit.String()),
			slog.String("to_unit", targetUnit.String()))
		return 0, err
	}
	return servings * perServing * r, nil
}

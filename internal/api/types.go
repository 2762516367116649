package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/pageza/nutriscope/backend/internal/goals"
	"github.com/pageza/nutriscope/backend/internal/units"
)

const dateLayout = "2006-01-02"

// UnitResponse represents a unit in API responses
type UnitResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	Abbreviations []string  `json:"abbreviations"`
	FoodQuantity  bool      `json:"food_quantity"`
}

func newUnitResponse(u units.Unit) UnitResponse {
	abbr := u.Abbreviations
	if abbr == nil {
		abbr = []string{}
	}
	return UnitResponse{
		ID:            u.ID,
		Name:          u.Name,
		Type:          string(u.Type),
		Abbreviations: abbr,
		FoodQuantity:  u.FoodQuantity,
	}
}

type CreateUnitRequest struct {
	Name          string   `json:"name" binding:"required,max=100"`
	Type          string   `json:"type" binding:"required,max=50"`
	Abbreviations []string `json:"abbreviations"`
	FoodQuantity  bool     `json:"food_quantity"`
}

type CreateConversionRequest struct {
	FromUnitID uuid.UUID `json:"from_unit_id" binding:"required"`
	ToUnitID   uuid.UUID `json:"to_unit_id" binding:"required"`
	Ratio      float64   `json:"ratio" binding:"required,gt=0"`
	OneWay     bool      `json:"one_way"`
}

type ConversionResponse struct {
	FromUnitID uuid.UUID `json:"from_unit_id"`
	ToUnitID   uuid.UUID `json:"to_unit_id"`
	Ratio      float64   `json:"ratio"`
}

type RatioResponse struct {
	FromUnitID uuid.UUID `json:"from_unit_id"`
	ToUnitID   uuid.UUID `json:"to_unit_id"`
	Ratio      float64   `json:"ratio"`
}

type CreateNutrientRequest struct {
	Name          string    `json:"name" binding:"required,max=100"`
	DefaultUnitID uuid.UUID `json:"default_unit_id" binding:"required"`
	DailyValue    *float64  `json:"daily_value" binding:"omitempty,gte=0"`
	Group         string    `json:"group" binding:"max=50"`
	DisplayOrder  int       `json:"display_order"`
}

type QuantityRequest struct {
	Quantity float64   `json:"quantity" binding:"gte=0"`
	UnitID   uuid.UUID `json:"unit_id" binding:"required"`
}

// FoodNutrientRequest carries either quantity + unit_id or percent.
type FoodNutrientRequest struct {
	NutrientID uuid.UUID  `json:"nutrient_id" binding:"required"`
	Quantity   float64    `json:"quantity" binding:"gte=0"`
	UnitID     *uuid.UUID `json:"unit_id" binding:"required_without=Percent"`
	Percent    *float64   `json:"percent" binding:"omitempty,gte=0"`
}

type CreateFoodItemRequest struct {
	Name         string                `json:"name" binding:"required,max=255"`
	Brand        string                `json:"brand" binding:"max=255"`
	ServingSizes []QuantityRequest     `json:"serving_sizes" binding:"dive"`
	Nutrients    []FoodNutrientRequest `json:"nutrients" binding:"dive"`
}

type IngredientRequest struct {
	FoodItemID uuid.UUID `json:"food_item_id" binding:"required"`
	Quantity   float64   `json:"quantity" binding:"gte=0"`
	UnitID     uuid.UUID `json:"unit_id" binding:"required"`
}

type CreateRecipeRequest struct {
	Name        string              `json:"name" binding:"required,max=255"`
	Source      string              `json:"source" binding:"max=255"`
	Notes       string              `json:"notes"`
	Ingredients []IngredientRequest `json:"ingredients" binding:"dive"`
	AmountsMade []QuantityRequest   `json:"amounts_made" binding:"dive"`
}

// GoalSetRequest takes calendar dates as YYYY-MM-DD.
type GoalSetRequest struct {
	Name      string               `json:"name" binding:"required"`
	StartDate string               `json:"start_date" binding:"required"`
	EndDate   *string              `json:"end_date"`
	Period    int                  `json:"period"`
	DayModes  []goals.DayMode      `json:"day_modes"`
	Nutrients []goals.NutrientSpec `json:"nutrients"`
}

type TrackedNutrientResponse struct {
	NutrientID uuid.UUID      `json:"nutrient_id"`
	UnitID     uuid.UUID      `json:"unit_id"`
	Targets    []goals.Target `json:"targets"`
}

type GoalSetResponse struct {
	ID        uuid.UUID                 `json:"id"`
	Name      string                    `json:"name"`
	StartDate string                    `json:"start_date"`
	EndDate   *string                   `json:"end_date,omitempty"`
	Period    int                       `json:"period"`
	DayModes  []goals.DayMode           `json:"day_modes"`
	Ranges    []goals.Range             `json:"ranges"`
	Nutrients []TrackedNutrientResponse `json:"nutrients"`
}

func newGoalSetResponse(g *goals.GoalSet) GoalSetResponse {
	resp := GoalSetResponse{
		ID:        g.ID,
		Name:      g.Name,
		StartDate: g.StartDate.Format(dateLayout),
		Period:    g.Period,
		DayModes:  g.DayModes,
		Ranges:    g.Ranges(),
		Nutrients: make([]TrackedNutrientResponse, 0, len(g.Nutrients)),
	}
	if g.EndDate != nil {
		end := g.EndDate.Format(dateLayout)
		resp.EndDate = &end
	}
	for _, n := range g.Nutrients {
		resp.Nutrients = append(resp.Nutrients, TrackedNutrientResponse{
			NutrientID: n.NutrientID,
			UnitID:     n.Unit,
			Targets:    n.Targets,
		})
	}
	return resp
}

type JournalEntryRequest struct {
	Date       string     `json:"date" binding:"required"`
	Time       *time.Time `json:"time"`
	FoodItemID uuid.UUID  `json:"food_item_id" binding:"required"`
	Quantity   float64    `json:"quantity"`
	UnitID     uuid.UUID  `json:"unit_id" binding:"required"`
}

package model

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/nutriscope/backend/internal/nutrition"
)

type Nutrient struct {
	Base
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Name          string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	DefaultUnitID uuid.UUID `gorm:"type:varchar(36);not null" json:"default_unit_id"`
	DailyValue    *float64  `json:"daily_value,omitempty"`
	NutrientGroup string    `gorm:"size:50" json:"nutrient_group"`
	DisplayOrder  int       `gorm:"not null;default:0" json:"display_order"`
}

func (Nutrient) TableName() string { return "nutrients" }

type FoodItem struct {
	Base
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
	DeletedAt    gorm.DeletedAt     `gorm:"index" json:"-"`
	Name         string             `gorm:"size:255;not null" json:"name"`
	Brand        string             `gorm:"size:255" json:"brand"`
	ServingSizes []ServingSize      `gorm:"foreignKey:FoodItemID;constraint:OnDelete:CASCADE" json:"serving_sizes"`
	Nutrients    []FoodItemNutrient `gorm:"foreignKey:FoodItemID;constraint:OnDelete:CASCADE" json:"nutrients"`
}

func (FoodItem) TableName() string { return "food_items" }

type ServingSize struct {
	Base
	FoodItemID uuid.UUID `gorm:"type:varchar(36);not null;index" json:"food_item_id"`
	Quantity   float64   `gorm:"not null" json:"quantity"`
	UnitID     uuid.UUID `gorm:"type:varchar(36);not null" json:"unit_id"`
	Position   int       `gorm:"not null;default:0" json:"position"`
}

func (ServingSize) TableName() string { return "serving_sizes" }

// FoodItemNutrient stores either an absolute quantity (Quantity + UnitID) or,
// when Percent is set, a percentage of the nutrient's daily value.
type FoodItemNutrient struct {
	Base
	FoodItemID uuid.UUID  `gorm:"type:varchar(36);not null;uniqueIndex:idx_food_nutrient" json:"food_item_id"`
	NutrientID uuid.UUID  `gorm:"type:varchar(36);not null;uniqueIndex:idx_food_nutrient" json:"nutrient_id"`
	Quantity   float64    `json:"quantity"`
	UnitID     *uuid.UUID `gorm:"type:varchar(36)" json:"unit_id,omitempty"`
	Percent    *float64   `json:"percent,omitempty"`
}

func (FoodItemNutrient) TableName() string { return "food_item_nutrients" }

func (n Nutrient) ToEngine() nutrition.Nutrient {
	return nutrition.Nutrient{
		ID:           n.ID,
		Name:         n.Name,
		DefaultUnit:  n.DefaultUnitID,
		DailyValue:   n.DailyValue,
		Group:        n.NutrientGroup,
		DisplayOrder: n.DisplayOrder,
	}
}

// ToEngine converts the row into its tagged amount. A row with neither a percent
// nor a unit cannot be interpreted and is reported as not ok.
func (n FoodItemNutrient) ToEngine() (nutrition.FoodItemNutrient, bool) {
	out := nutrition.FoodItemNutrient{NutrientID: n.NutrientID}
	switch {
	case n.Percent != nil:
		out.Amount = nutrition.PercentOfDailyValue{Percent: *n.Percent}
	case n.UnitID != nil:
		out.Amount = nutrition.Absolute{Quantity: n.Quantity, Unit: *n.UnitID}
	default:
		return out, false
	}
	return out, true
}

// FoodItemNutrientFromEngine converts a tagged amount into a row.
func FoodItemNutrientFromEngine(foodItemID uuid.UUID, n nutrition.FoodItemNutrient) FoodItemNutrient {
	row := FoodItemNutrient{FoodItemID: foodItemID, NutrientID: n.NutrientID}
	switch a := n.Amount.(type) {
	case nutrition.Absolute:
		unit := a.Unit
		row.Quantity = a.Quantity
		row.UnitID = &unit
	case nutrition.PercentOfDailyValue:
		p := a.Percent
		row.Percent = &p
	}
	return row
}

// ToEngine converts the row and its loaded associations. Serving sizes keep their
// stored position order.
func (f FoodItem) ToEngine() nutrition.FoodItem {
	out := nutrition.FoodItem{
		ID:    f.ID,
		Name:  f.Name,
		Brand: f.Brand,
	}
	sizes := append([]ServingSize(nil), f.ServingSizes...)
	sort.SliceStable(sizes, func(i, j int) bool { return sizes[i].Position < sizes[j].Position })
	for _, s := range sizes {
		out.ServingSizes = append(out.ServingSizes, nutrition.ServingSize{Quantity: s.Quantity, Unit: s.UnitID})
	}
	for _, n := range f.Nutrients {
		if fin, ok := n.ToEngine(); ok {
			out.Nutrients = append(out.Nutrients, fin)
		}
	}
	return out
}


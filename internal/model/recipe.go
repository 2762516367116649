package model

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/nutriscope/backend/internal/nutrition"
)

type Recipe struct {
	Base
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	DeletedAt   gorm.DeletedAt     `gorm:"index" json:"-"`
	Name        string             `gorm:"size:255;not null" json:"name"`
	Source      string             `gorm:"size:255" json:"source"`
	Notes       string             `gorm:"type:text" json:"notes"`
	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"ingredients"`
	AmountsMade []AmountMade       `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"amounts_made"`
}

func (Recipe) TableName() string { return "recipes" }

type RecipeIngredient struct {
	Base
	RecipeID   uuid.UUID `gorm:"type:varchar(36);not null;index" json:"recipe_id"`
	FoodItemID uuid.UUID `gorm:"type:varchar(36);not null" json:"food_item_id"`
	Quantity   float64   `gorm:"not null" json:"quantity"`
	UnitID     uuid.UUID `gorm:"type:varchar(36);not null" json:"unit_id"`
	Position   int       `gorm:"not null;default:0" json:"position"`
}

func (RecipeIngredient) TableName() string { return "recipe_ingredients" }

// AmountMade is one description of the batch a recipe yields.
type AmountMade struct {
	Base
	RecipeID uuid.UUID `gorm:"type:varchar(36);not null;index" json:"recipe_id"`
	Quantity float64   `gorm:"not null" json:"quantity"`
	UnitID   uuid.UUID `gorm:"type:varchar(36);not null" json:"unit_id"`
	Position int       `gorm:"not null;default:0" json:"position"`
}

func (AmountMade) TableName() string { return "recipe_amounts_made" }

// ToEngine converts the recipe with its loaded ingredients, ordered by position.
func (r Recipe) ToEngine() nutrition.Recipe {
	out := nutrition.Recipe{
		ID:     r.ID,
		Name:   r.Name,
		Source: r.Source,
		Notes:  r.Notes,
	}

	ingredients := append([]RecipeIngredient(nil), r.Ingredients...)
	sort.SliceStable(ingredients, func(i, j int) bool { return ingredients[i].Position < ingredients[j].Position })
	for _, ing := range ingredients {
		out.Ingredients = append(out.Ingredients, nutrition.Ingredient{
			FoodItemID: ing.FoodItemID,
			Quantity:   ing.Quantity,
			Unit:       ing.UnitID,
		})
	}

	made := append([]AmountMade(nil), r.AmountsMade...)
	sort.SliceStable(made, func(i, j int) bool { return made[i].Position < made[j].Position })
	for _, m := range made {
		out.AmountsMade = append(out.AmountsMade, nutrition.Quantity{Quantity: m.Quantity, Unit: m.UnitID})
	}
	return out
}

// FoodItemIDs lists the distinct food items the recipe references.
func (r Recipe) FoodItemIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(r.Ingredients))
	var ids []uuid.UUID
	for _, ing := range r.Ingredients {
		if !seen[ing.FoodItemID] {
			seen[ing.FoodItemID] = true
			ids = append(ids, ing.FoodItemID)
		}
	}
	return ids
}

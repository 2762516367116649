package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/nutriscope/backend/internal/model"
	"github.com/pageza/nutriscope/backend/internal/nutrition"
)

// RecipeService handles recipe operations
type RecipeService struct {
	db      *gorm.DB
	catalog CatalogProvider
	log     *slog.Logger
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB, catalog CatalogProvider, logger *slog.Logger) *RecipeService {
	if logger == nil {
		logger = slog.Default()
	}
	return &RecipeService{db: db, catalog: catalog, log: logger}
}

// CreateRecipe stores a recipe with its ingredients and yields, numbering lines in order.
func (s *RecipeService) CreateRecipe(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error) {
	if recipe.Name == "" {
		return nil, fmt.Errorf("%w: recipe name is required", ErrInvalidInput)
	}
	for i := range recipe.Ingredients {
		if recipe.Ingredients[i].Quantity < 0 {
			return nil, fmt.Errorf("%w: ingredient %d quantity is negative", ErrInvalidInput, i)
		}
		recipe.Ingredients[i].Position = i
	}
	for i := range recipe.AmountsMade {
		recipe.AmountsMade[i].Position = i
	}
	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

// GetRecipe retrieves a recipe by ID
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	var recipe model.Recipe
	err := s.db.WithContext(ctx).
		Preload("Ingredients").
		Preload("AmountsMade").
		First(&recipe, "id = ?", id).Error
	if err != nil {
		return nil, notFound(err, "recipe", id)
	}
	return &recipe, nil
}

// RecipeNutrition is the aggregated nutrient table of one recipe.
type RecipeNutrition struct {
	RecipeID   uuid.UUID                   `json:"recipe_id"`
	RecipeName string                      `json:"recipe_name"`
	Nutrients  []nutrition.NutrientSummary `json:"nutrients"`
}

// Nutrition aggregates every nutrient carried by the recipe's ingredients.
func (s *RecipeService) Nutrition(ctx context.Context, id uuid.UUID) (*RecipeNutrition, error) {
	recipe, err := s.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}
	calc, err := s.catalog.Calculator(ctx, recipe.FoodItemIDs())
	if err != nil {
		return nil, err
	}
	summaries, err := calc.Aggregate(recipe.ToEngine())
	if err != nil {
		return nil, err
	}
	return &RecipeNutrition{RecipeID: recipe.ID, RecipeName: recipe.Name, Nutrients: summaries}, nil
}

// ScaleRequest selects one scaling mode: a plain factor, an ingredient pivot or a yield pivot.
// ExpressIn optionally re-expresses scaled ingredient lines, keyed by index, in another unit.
type ScaleRequest struct {
	Factor          *float64          `json:"factor,omitempty"`
	IngredientIndex *int              `json:"ingredient_index,omitempty"`
	AmountMadeIndex *int              `json:"amount_made_index,omitempty"`
	Quantity        float64           `json:"quantity"`
	UnitID          uuid.UUID         `json:"unit_id"`
	ExpressIn       map[int]uuid.UUID `json:"express_in,omitempty"`
}

func (r ScaleRequest) modes() int {
	n := 0
	for _, set := range []bool{r.Factor != nil, r.IngredientIndex != nil, r.AmountMadeIndex != nil} {
		if set {
			n++
		}
	}
	return n
}

// ScaledLine is one scaled ingredient, optionally re-expressed in another unit.
type ScaledLine struct {
	nutrition.ScaledIngredient
	FoodItemName string              `json:"food_item_name"`
	UnitName     string              `json:"unit_name"`
	Expressed    *nutrition.Quantity `json:"expressed,omitempty"`
	Reason       string              `json:"reason,omitempty"`
}

// ScaleResult is a scaled recipe ready for display.
type ScaleResult struct {
	RecipeID    uuid.UUID            `json:"recipe_id"`
	Ratio       float64              `json:"ratio"`
	Ingredients []ScaledLine         `json:"ingredients"`
	AmountsMade []nutrition.Quantity `json:"amounts_made"`
}

// Scale computes a scaled copy of the recipe. The stored recipe is never changed.
func (s *RecipeService) Scale(ctx context.Context, id uuid.UUID, req ScaleRequest) (*ScaleResult, error) {
	if req.modes() != 1 {
		return nil, ErrInvalidScaleRequest
	}
	recipe, err := s.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}
	calc, err := s.catalog.Calculator(ctx, recipe.FoodItemIDs())
	if err != nil {
		return nil, err
	}

	engineRecipe := recipe.ToEngine()
	desired := nutrition.Quantity{Quantity: req.Quantity, Unit: req.UnitID}

	var scaled nutrition.ScaledRecipe
	switch {
	case req.Factor != nil:
		scaled, err = nutrition.ScaleByFactor(engineRecipe, *req.Factor)
	case req.IngredientIndex != nil:
		scaled, err = calc.ScaleByIngredient(engineRecipe, *req.IngredientIndex, desired)
	default:
		scaled, err = calc.ScaleByAmountMade(engineRecipe, *req.AmountMadeIndex, desired)
	}
	if err != nil {
		return nil, err
	}

	catalog := calc.Catalog()
	out := &ScaleResult{
		RecipeID:    recipe.ID,
		Ratio:       scaled.Ratio,
		Ingredients: make([]ScaledLine, len(scaled.Ingredients)),
		AmountsMade: scaled.AmountsMade,
	}
	for i, ing := range scaled.Ingredients {
		line := ScaledLine{
			ScaledIngredient: ing,
			FoodItemName:     catalog.FoodItems[ing.FoodItemID].Name,
			UnitName:         catalog.Graph.UnitName(ing.Unit),
		}
		if to, ok := req.ExpressIn[i]; ok {
			q, err := calc.Reexpress(nutrition.Quantity{Quantity: ing.ScaledQuantity, Unit: ing.Unit}, to)
			if err != nil {
				line.Reason = err.Error()
				s.log.Warn("Scaled ingredient kept in its own unit",
					slog.Int("ingredient_index", i),
					slog.String("from_unit", ing.Unit.String()),
					slog.String("to_unit", to.String()),
					slog.String("error", err.Error()))
			} else {
				line.Expressed = &q
			}
		}
		out.Ingredients[i] = line
	}
	return out, nil
}

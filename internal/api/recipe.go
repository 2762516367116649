package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/nutriscope/backend/internal/model"
	"github.com/pageza/nutriscope/backend/internal/service"
)

// RecipeHandler serves recipe storage, nutrition tables and scaling.
type RecipeHandler struct {
	recipes service.IRecipeService
}

func NewRecipeHandler(recipes service.IRecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.POST("", h.CreateRecipe)
		recipes.GET("/:id", h.GetRecipe)
		recipes.GET("/:id/nutrition", h.GetNutrition)
		recipes.POST("/:id/scale", h.ScaleRecipe)
	}
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	recipe := &model.Recipe{Name: req.Name, Source: req.Source, Notes: req.Notes}
	for _, ing := range req.Ingredients {
		recipe.Ingredients = append(recipe.Ingredients, model.RecipeIngredient{
			FoodItemID: ing.FoodItemID,
			Quantity:   ing.Quantity,
			UnitID:     ing.UnitID,
		})
	}
	for _, am := range req.AmountsMade {
		recipe.AmountsMade = append(recipe.AmountsMade, model.AmountMade{Quantity: am.Quantity, UnitID: am.UnitID})
	}
	created, err := h.recipes.CreateRecipe(c.Request.Context(), recipe)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	recipe, err := h.recipes.GetRecipe(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) GetNutrition(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	table, err := h.recipes.Nutrition(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, table)
}

// ScaleRecipe takes exactly one of factor, ingredient_index or amount_made_index.
func (h *RecipeHandler) ScaleRecipe(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req service.ScaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	result, err := h.recipes.Scale(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/nutriscope/backend/internal/model"
	"github.com/pageza/nutriscope/backend/internal/service"
)

type CatalogHandler struct {
	catalog service.ICatalogService
}

func NewCatalogHandler(catalog service.ICatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/nutrients", h.ListNutrients)
	router.POST("/nutrients", h.CreateNutrient)

	foods := router.Group("/food-items")
	{
		foods.POST("", h.CreateFoodItem)
		foods.GET("/:id", h.GetFoodItem)
	}
}

func (h *CatalogHandler) ListNutrients(c *gin.Context) {
	rows, err := h.catalog.ListNutrients(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	if rows == nil {
		rows = []model.Nutrient{}
	}
	c.JSON(http.StatusOK, gin.H{"nutrients": rows})
}

func (h *CatalogHandler) CreateNutrient(c *gin.Context) {
	var req CreateNutrientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	n, err := h.catalog.CreateNutrient(c.Request.Context(), &model.Nutrient{
		Name:          req.Name,
		DefaultUnitID: req.DefaultUnitID,
		DailyValue:    req.DailyValue,
		NutrientGroup: req.Group,
		DisplayOrder:  req.DisplayOrder,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, n)
}

func (h *CatalogHandler) CreateFoodItem(c *gin.Context) {
	var req CreateFoodItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	food := &model.FoodItem{Name: req.Name, Brand: req.Brand}
	for _, ss := range req.ServingSizes {
		food.ServingSizes = append(food.ServingSizes, model.ServingSize{Quantity: ss.Quantity, UnitID: ss.UnitID})
	}
	for _, n := range req.Nutrients {
		food.Nutrients = append(food.Nutrients, model.FoodItemNutrient{
			NutrientID: n.NutrientID,
			Quantity:   n.Quantity,
			UnitID:     n.UnitID,
			Percent:    n.Percent,
		})
	}
	created, err := h.catalog.CreateFoodItem(c.Request.Context(), food)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CatalogHandler) GetFoodItem(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	food, err := h.catalog.GetFoodItem(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, food)
}

package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pageza/nutriscope/backend/internal/service"
	"github.com/pageza/nutriscope/backend/internal/units"
)

type UnitHandler struct {
	units service.IUnitService
}

func NewUnitHandler(units service.IUnitService) *UnitHandler {
	return &UnitHandler{units: units}
}

func (h *UnitHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/units", h.ListUnits)
	router.POST("/units", h.CreateUnit)
	router.GET("/conversions/ratio", h.GetRatio)
	router.POST("/conversions", h.CreateConversion)
}

func (h *UnitHandler) ListUnits(c *gin.Context) {
	list, err := h.units.ListUnits(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	resp := make([]UnitResponse, len(list))
	for i, u := range list {
		resp[i] = newUnitResponse(u)
	}
	c.JSON(http.StatusOK, gin.H{"units": resp})
}

func (h *UnitHandler) CreateUnit(c *gin.Context) {
	var req CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	u, err := h.units.AddUnit(c.Request.Context(), units.Unit{
		Name:          req.Name,
		Type:          units.Type(req.Type),
		Abbreviations: req.Abbreviations,
		FoodQuantity:  req.FoodQuantity,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, newUnitResponse(u))
}

// GetRatio answers GET /conversions/ratio?from=<id>&to=<id>.
func (h *UnitHandler) GetRatio(c *gin.Context) {
	from, err := uuid.Parse(c.Query("from"))
	if err != nil {
		badRequest(c, fmt.Errorf("invalid from: %w", err))
		return
	}
	to, err := uuid.Parse(c.Query("to"))
	if err != nil {
		badRequest(c, fmt.Errorf("invalid to: %w", err))
		return
	}
	r, err := h.units.Ratio(c.Request.Context(), from, to)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, RatioResponse{FromUnitID: from, ToUnitID: to, Ratio: r})
}

func (h *UnitHandler) CreateConversion(c *gin.Context) {
	var req CreateConversionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	edges, err := h.units.AddConversion(c.Request.Context(), units.Conversion{
		From:  req.FromUnitID,
		To:    req.ToUnitID,
		Ratio: req.Ratio,
	}, req.OneWay)
	if err != nil {
		c.Error(err)
		return
	}
	resp := make([]ConversionResponse, len(edges))
	for i, e := range edges {
		resp[i] = ConversionResponse{FromUnitID: e.From, ToUnitID: e.To, Ratio: e.Ratio}
	}
	c.JSON(http.StatusCreated, gin.H{"conversions": resp})
}

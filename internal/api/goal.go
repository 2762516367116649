package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pageza/nutriscope/backend/internal/goals"
	"github.com/pageza/nutriscope/backend/internal/service"
)

type GoalHandler struct {
	goals service.IGoalService
}

func NewGoalHandler(goals service.IGoalService) *GoalHandler {
	return &GoalHandler{goals: goals}
}

func (h *GoalHandler) RegisterRoutes(router *gin.RouterGroup) {
	sets := router.Group("/goal-sets")
	{
		sets.POST("", h.CreateGoalSet)
		sets.GET("/:id", h.GetGoalSet)
		sets.GET("/:id/targets", h.GetTargets)
	}
}

func (h *GoalHandler) CreateGoalSet(c *gin.Context) {
	var req GoalSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		badRequest(c, err)
		return
	}
	spec := goals.Spec{
		Name:      req.Name,
		StartDate: start,
		Period:    req.Period,
		DayModes:  req.DayModes,
		Nutrients: req.Nutrients,
	}
	if req.EndDate != nil {
		end, err := parseDate(*req.EndDate)
		if err != nil {
			badRequest(c, err)
			return
		}
		spec.EndDate = &end
	}

	g, err := h.goals.Create(c.Request.Context(), spec)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, newGoalSetResponse(g))
}

func (h *GoalHandler) GetGoalSet(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	g, err := h.goals.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, newGoalSetResponse(g))
}

// GetTargets resolves the schedule for ?date=YYYY-MM-DD, defaulting to today (UTC).
func (h *GoalHandler) GetTargets(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	date := service.Day(time.Now().UTC())
	if raw := c.Query("date"); raw != "" {
		d, err := parseDate(raw)
		if err != nil {
			badRequest(c, err)
			return
		}
		date = d
	}
	view, err := h.goals.Targets(c.Request.Context(), id, date)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, view)
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/nutriscope/backend/internal/journal"
	"github.com/pageza/nutriscope/backend/internal/model"
	"github.com/pageza/nutriscope/backend/internal/service"
)

type JournalHandler struct {
	journal service.IJournalService
}

func NewJournalHandler(journal service.IJournalService) *JournalHandler {
	return &JournalHandler{journal: journal}
}

func (h *JournalHandler) RegisterRoutes(router *gin.RouterGroup) {
	j := router.Group("/journal")
	{
		j.POST("", h.AddEntry)
		j.GET("/:date", h.GetDay)
		j.POST("/:date/archive", h.ArchiveDay)
	}
}

func (h *JournalHandler) AddEntry(c *gin.Context) {
	var req JournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		badRequest(c, err)
		return
	}
	entry, err := h.journal.AddEntry(c.Request.Context(), &model.FoodJournalEntry{
		Date:       date,
		Time:       req.Time,
		FoodItemID: req.FoodItemID,
		Quantity:   req.Quantity,
		UnitID:     req.UnitID,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GetDay returns the entries logged on a date and the progress against every active goal set.
func (h *JournalHandler) GetDay(c *gin.Context) {
	date, ok := dateParam(c, "date")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	entries, err := h.journal.Entries(ctx, date)
	if err != nil {
		c.Error(err)
		return
	}
	views, err := h.journal.DayView(ctx, date)
	if err != nil {
		c.Error(err)
		return
	}
	if entries == nil {
		entries = []model.FoodJournalEntry{}
	}
	if views == nil {
		views = []journal.DayView{}
	}
	c.JSON(http.StatusOK, gin.H{
		"date":    date.Format(dateLayout),
		"entries": entries,
		"goals":   views,
	})
}

func (h *JournalHandler) ArchiveDay(c *gin.Context) {
	date, ok := dateParam(c, "date")
	if !ok {
		return
	}
	result, err := h.journal.Archive(c.Request.Context(), date)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

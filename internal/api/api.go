package api

import (
	"github.com/gin-gonic/gin"

	"github.com/pageza/nutriscope/backend/internal/service"
)

// Services groups the service layer the API is built on.
type Services struct {
	Units   service.IUnitService
	Catalog service.ICatalogService
	Recipes service.IRecipeService
	Goals   service.IGoalService
	Journal service.IJournalService
}

// Register mounts every handler on the versioned group.
func Register(v1 *gin.RouterGroup, s Services) {
	NewUnitHandler(s.Units).RegisterRoutes(v1)
	NewCatalogHandler(s.Catalog).RegisterRoutes(v1)
	NewRecipeHandler(s.Recipes).RegisterRoutes(v1)
	NewGoalHandler(s.Goals).RegisterRoutes(v1)
	NewJournalHandler(s.Journal).RegisterRoutes(v1)
}

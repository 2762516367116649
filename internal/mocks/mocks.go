// Package mocks holds testify mocks of the service interfaces used by the HTTP layer.
package mocks

import (
	"github.com/pageza/nutriscope/backend/internal/service"
)

var (
	_ service.IUnitService    = (*MockUnitService)(nil)
	_ service.ICatalogService = (*MockCatalogService)(nil)
	_ service.IRecipeService  = (*MockRecipeService)(nil)
	_ service.IGoalService    = (*MockGoalService)(nil)
	_ service.IJournalService = (*MockJournalService)(nil)
)

package service

import (
	"context"
	"log/slog"

	"github.com/pageza/nutriscope/backend/internal/model"
	"github.com/pageza/nutriscope/backend/internal/units"
)

type seedNutrient struct {
	name  string
	unit  string
	dv    float64
	group string
}

// label nutrients in panel order; a zero dv means no daily value
var defaultNutrients = []seedNutrient{
	{"Calories", "Calories", 2000, "Energy"},
	{"Total Fat", "Grams", 78, "Macronutrients"},
	{"Saturated Fat", "Grams", 20, "Macronutrients"},
	{"Trans Fat", "Grams", 0, "Macronutrients"},
	{"Cholesterol", "Milligrams", 300, "Macronutrients"},
	{"Sodium", "Milligrams", 2300, "Minerals"},
	{"Total Carbohydrate", "Grams", 275, "Macronutrients"},
	{"Dietary Fiber", "Grams", 28, "Macronutrients"},
	{"Total Sugars", "Grams", 0, "Macronutrients"},
	{"Added Sugars", "Grams", 50, "Macronutrients"},
	{"Protein", "Grams", 50, "Macronutrients"},
	{"Vitamin D", "Micrograms", 20, "Vitamins"},
	{"Calcium", "Milligrams", 1300, "Minerals"},
	{"Iron", "Milligrams", 18, "Minerals"},
	{"Potassium", "Milligrams", 4700, "Minerals"},
	{"Vitamin C", "Milligrams", 90, "Vitamins"},
}

// SeedNutrients inserts the standard label nutrients that are not yet present by name
// and returns how many were added. Units must be seeded first.
func (s *CatalogService) SeedNutrients(ctx context.Context) (int, error) {
	inserted := 0
	for i, sn := range defaultNutrients {
		var count int64
		if err := s.db.WithContext(ctx).Model(&model.Nutrient{}).Where("name = ?", sn.name).Count(&count).Error; err != nil {
			return inserted, err
		}
		if count > 0 {
			continue
		}
		n := &model.Nutrient{
			Name:          sn.name,
			DefaultUnitID: units.SeedUnitID(sn.unit),
			NutrientGroup: sn.group,
			DisplayOrder:  i + 1,
		}
		if sn.dv > 0 {
			dv := sn.dv
			n.DailyValue = &dv
		}
		if _, err := s.CreateNutrient(ctx, n); err != nil {
			return inserted, err
		}
		inserted++
	}
	s.log.Info("Seeded nutrients", slog.Int("inserted", inserted))
	return inserted, nil
}

package nutrition

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pageza/nutriscope/backend/internal/units"
)

// Catalog is the arena the engine resolves identifiers against.
type Catalog struct {
	Graph     *units.Graph
	Nutrients map[uuid.UUID]Nutrient
	FoodItems map[uuid.UUID]FoodItem
}

// NewCatalog indexes nutrients and food items by id.
func NewCatalog(graph *units.Graph, nutrients []Nutrient, foodItems []FoodItem) *Catalog {
	c := &Catalog{
		Graph:     graph,
		Nutrients: make(map[uuid.UUID]Nutrient, len(nutrients)),
		FoodItems: make(map[uuid.UUID]FoodItem, len(foodItems)),
	}
	for _, n := range nutrients {
		c.Nutrients[n.ID] = n
	}
	for _, f := range foodItems {
		c.FoodItems[f.ID] = f
	}
	return c
}

// Calculator runs the aggregation, scaling and projection formulas against one catalog.
// It never mutates the catalog and may be shared between goroutines.
type Calculator struct {
	catalog *Catalog
	log     *slog.Logger
}

// NewCalculator creates a Calculator. A nil logger discards output.
func NewCalculator(catalog *Catalog, logger *slog.Logger) *Calculator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if catalog == nil {
		catalog = NewCatalog(nil, nil, nil)
	}
	return &Calculator{catalog: catalog, log: logger}
}

// Catalog returns the catalog the calculator reads from.
func (c *Calculator) Catalog() *Catalog {
	return c.catalog
}

// servingSizeFor picks the serving size used as the pivot for a quantity in unit.
// An exact unit match wins; otherwise the first serving size of the same unit type.
func (c *Calculator) servingSizeFor(food FoodItem, unit uuid.UUID) (ServingSize, error) {
	for _, ss := range food.ServingSizes {
		if ss.Unit == unit {
			return ss, nil
		}
	}
	graph := c.catalog.Graph
	typ, ok := graph.TypeOf(unit)
	if ok {
		for _, ss := range food.ServingSizes {
			if t, ok := graph.TypeOf(ss.Unit); ok && t == typ {
				return ss, nil
			}
		}
	}
	return ServingSize{}, fmt.Errorf("%w: food item %s, unit %s", ErrNoMatchingServingSizeType, food.ID, unit)
}

// servingsUsed computes (q * ratio(unit, serving.Unit)) / serving.Quantity.
func (c *Calculator) servingsUsed(food FoodItem, q float64, unit uuid.UUID) (float64, error) {
	ss, err := c.servingSizeFor(food, unit)
	if err != nil {
		return 0, err
	}
	if ss.Quantity == 0 {
		return 0, fmt.Errorf("%w: food item %s", ErrDivisionByZeroServingSize, food.ID)
	}
	r, err := c.catalog.Graph.Ratio(unit, ss.Unit)
	if err != nil {
		return 0, err
	}
	return q * r / ss.Quantity, nil
}

// perServing resolves a food item nutrient record into an absolute quantity and unit.
// Percent records take precedence over units and need the nutrient's daily value.
func (c *Calculator) perServing(fin FoodItemNutrient) (float64, uuid.UUID, error) {
	switch a := fin.Amount.(type) {
	case Absolute:
		return a.Quantity, a.Unit, nil
	case PercentOfDailyValue:
		n, ok := c.catalog.Nutrients[fin.NutrientID]
		if !ok {
			return 0, uuid.Nil, fmt.Errorf("%w: %s", ErrUnknownNutrient, fin.NutrientID)
		}
		if n.DailyValue == nil {
			return 0, uuid.Nil, fmt.Errorf("%w: %s", ErrNoDailyValue, n.Name)
		}
		return a.Percent / 100 * *n.DailyValue, n.DefaultUnit, nil
	default:
		return 0, uuid.Nil, fmt.Errorf("%w: nutrient %s has no amount", ErrNutrientNotReported, fin.NutrientID)
	}
}

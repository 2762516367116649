package units

import (
	"github.com/google/uuid"
)

// seedNamespace keeps seeded unit ids stable across runs so reseeding is idempotent.
var seedNamespace = uuid.MustParse("6f1c7d2e-3b4a-5c6d-8e9f-0a1b2c3d4e5f")

type seedUnit struct {
	name          string
	typ           Type
	abbreviations string
	foodQuantity  bool
	toBase        float64
}

// base units: Grams, Milliliters, Calories, Percent, Each
var seedUnits = []seedUnit{
	{"Micrograms", TypeMass, "mcg,µg", false, 0.000001},
	{"Milligrams", TypeMass, "mg", false, 0.001},
	{"Grams", TypeMass, "g,gram,grams", true, 1},
	{"Kilograms", TypeMass, "kg", true, 1000},
	{"Ounces", TypeMass, "oz", true, 28.349523125},
	{"Pounds", TypeMass, "lb,lbs", true, 453.59237},

	{"Milliliters", TypeVolume, "ml,mL", true, 1},
	{"Liters", TypeVolume, "l,L", true, 1000},
	{"Teaspoons", TypeVolume, "tsp", true, 4.92892159375},
	{"Tablespoons", TypeVolume, "tbsp,Tbsp", true, 14.78676478125},
	{"Fluid Ounces", TypeVolume, "fl oz,fl-oz", true, 29.5735295625},
	{"Cups", TypeVolume, "c,cup,cups", true, 236.5882365},

	{"Calories", TypeEnergy, "kcal,Cal", false, 1},
	{"Kilojoules", TypeEnergy, "kJ", false, 1 / 4.184},

	{"Percent", TypePercent, "%", false, 1},

	{"Each", TypeCount, "ea,piece,pieces", true, 1},
}

// SeedUnitID returns the stable id used for a seeded unit name.
func SeedUnitID(name string) uuid.UUID {
	return uuid.NewSHA1(seedNamespace, []byte(name))
}

// DefaultSeed returns the default unit catalog and every intra-family conversion.
// Each pair is emitted in both directions, as ratio and 1/ratio.
func DefaultSeed() ([]Unit, []Conversion) {
	out := make([]Unit, 0, len(seedUnits))
	for _, s := range seedUnits {
		out = append(out, Unit{
			ID:            SeedUnitID(s.name),
			Name:          s.name,
			Type:          s.typ,
			Abbreviations: ParseAbbreviations(s.abbreviations),
			FoodQuantity:  s.foodQuantity,
		})
	}

	var conversions []Conversion
	for i := range seedUnits {
		for j := i + 1; j < len(seedUnits); j++ {
			a, b := seedUnits[i], seedUnits[j]
			if a.typ != b.typ {
				continue
			}
			ratio := a.toBase / b.toBase
			conversions = append(conversions,
				Conversion{From: SeedUnitID(a.name), To: SeedUnitID(b.name), Ratio: ratio},
				Conversion{From: SeedUnitID(b.name), To: SeedUnitID(a.name), Ratio: 1 / ratio},
			)
		}
	}
	return out, conversions
}

// DefaultGraph builds a Graph from DefaultSeed.
func DefaultGraph() *Graph {
	u, c := DefaultSeed()
	return NewGraph(u, c)
}

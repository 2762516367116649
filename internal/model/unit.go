package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/pageza/nutriscope/backend/internal/units"
)

type Unit struct {
	Base
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
	Name          string      `gorm:"size:100;not null;uniqueIndex" json:"name"`
	UnitType      string      `gorm:"size:50;not null" json:"unit_type"`
	Abbreviations StringArray `gorm:"type:text" json:"abbreviations"`
	FoodQuantity  bool        `gorm:"not null;default:false" json:"food_quantity"`
}

func (Unit) TableName() string { return "units" }

// UnitConversion is a directed edge: quantity in ToUnit = quantity in FromUnit * Ratio.
type UnitConversion struct {
	Base
	CreatedAt  time.Time `json:"created_at"`
	FromUnitID uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_conversion_pair" json:"from_unit_id"`
	ToUnitID   uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_conversion_pair" json:"to_unit_id"`
	Ratio      float64   `gorm:"not null" json:"ratio"`
}

func (UnitConversion) TableName() string { return "unit_conversions" }

// ToEngine converts the row into a graph unit.
func (u Unit) ToEngine() units.Unit {
	return units.Unit{
		ID:            u.ID,
		Name:          u.Name,
		Type:          units.Type(u.UnitType),
		Abbreviations: []string(u.Abbreviations),
		FoodQuantity:  u.FoodQuantity,
	}
}

// UnitFromEngine converts a graph unit into a row.
func UnitFromEngine(u units.Unit) Unit {
	return Unit{
		Base:          Base{ID: u.ID},
		Name:          u.Name,
		UnitType:      string(u.Type),
		Abbreviations: StringArray(u.Abbreviations),
		FoodQuantity:  u.FoodQuantity,
	}
}

func (c UnitConversion) ToEngine() units.Conversion {
	return units.Conversion{From: c.FromUnitID, To: c.ToUnitID, Ratio: c.Ratio}
}

func ConversionFromEngine(c units.Conversion) UnitConversion {
	return UnitConversion{FromUnitID: c.From, ToUnitID: c.To, Ratio: c.Ratio}
}

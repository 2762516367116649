package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StringArray stores a string list as JSON text so it works on postgres and sqlite alike.
type StringArray []string

// Value implements the driver.Valuer interface
func (a StringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal([]string(a))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = StringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for StringArray", value)
	}

	return json.Unmarshal(bytes, a)
}

// Base carries the identifier and audit columns shared by every table.
type Base struct {
	ID uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
}

// BeforeCreate assigns an id when the caller did not.
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// All lists every persisted entity, in dependency order, for auto-migration.
func All() []interface{} {
	return []interface{}{
		&Unit{},
		&UnitConversion{},
		&Nutrient{},
		&FoodItem{},
		&ServingSize{},
		&FoodItemNutrient{},
		&Recipe{},
		&RecipeIngredient{},
		&AmountMade{},
		&NutritionGoalSet{},
		&GoalDayMode{},
		&GoalNutrient{},
		&GoalNutrientTarget{},
		&FoodJournalEntry{},
	}
}

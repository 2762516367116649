package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/pageza/nutriscope/backend/internal/nutrition"
)

type FoodJournalEntry struct {
	Base
	CreatedAt  time.Time  `json:"created_at"`
	Date       time.Time  `gorm:"column:entry_date;type:date;not null;index" json:"date"`
	Time       *time.Time `gorm:"column:entry_time" json:"time,omitempty"`
	FoodItemID uuid.UUID  `gorm:"type:varchar(36);not null" json:"food_item_id"`
	Quantity   float64    `gorm:"not null" json:"quantity"`
	UnitID     uuid.UUID  `gorm:"type:varchar(36);not null" json:"unit_id"`
}

func (FoodJournalEntry) TableName() string { return "food_journal_entries" }

func (e FoodJournalEntry) ToEngine() nutrition.JournalEntry {
	return nutrition.JournalEntry{
		ID:         e.ID,
		Date:       e.Date,
		Time:       e.Time,
		FoodItemID: e.FoodItemID,
		Quantity:   e.Quantity,
		Unit:       e.UnitID,
	}
}

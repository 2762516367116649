package model

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/nutriscope/backend/internal/goals"
)

type NutritionGoalSet struct {
	Base
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	StartDate time.Time      `gorm:"type:date;not null" json:"start_date"`
	EndDate   *time.Time     `gorm:"type:date" json:"end_date,omitempty"`
	Period    int            `gorm:"not null;check:period >= 1 AND period <= 31" json:"period"`
	DayModes  []GoalDayMode  `gorm:"foreignKey:GoalSetID;constraint:OnDelete:CASCADE" json:"day_modes"`
	Nutrients []GoalNutrient `gorm:"foreignKey:GoalSetID;constraint:OnDelete:CASCADE" json:"nutrients"`
}

func (NutritionGoalSet) TableName() string { return "nutrition_goal_sets" }

type GoalDayMode struct {
	Base
	GoalSetID uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_goal_day" json:"goal_set_id"`
	Day       int       `gorm:"not null;uniqueIndex:idx_goal_day" json:"day"`
	Mode      string    `gorm:"size:20;not null" json:"mode"`
}

func (GoalDayMode) TableName() string { return "goal_day_modes" }

type GoalNutrient struct {
	Base
	GoalSetID  uuid.UUID            `gorm:"type:varchar(36);not null;index" json:"goal_set_id"`
	NutrientID uuid.UUID            `gorm:"type:varchar(36);not null" json:"nutrient_id"`
	UnitID     uuid.UUID            `gorm:"type:varchar(36);not null" json:"unit_id"`
	Targets    []GoalNutrientTarget `gorm:"foreignKey:GoalNutrientID;constraint:OnDelete:CASCADE" json:"targets"`
}

func (GoalNutrient) TableName() string { return "goal_nutrients" }

type GoalNutrientTarget struct {
	Base
	GoalNutrientID uuid.UUID `gorm:"type:varchar(36);not null;index" json:"goal_nutrient_id"`
	Minimum        *float64  `json:"minimum,omitempty"`
	Maximum        *float64  `json:"maximum,omitempty"`
	StartDay       int       `gorm:"not null" json:"start_day"`
	EndDay         int       `gorm:"not null" json:"end_day"`
}

func (GoalNutrientTarget) TableName() string { return "goal_nutrient_targets" }

// ToEngine rebuilds the schedule from the stored rows.
func (g NutritionGoalSet) ToEngine() *goals.GoalSet {
	modes := append([]GoalDayMode(nil), g.DayModes...)
	sort.Slice(modes, func(i, j int) bool { return modes[i].Day < modes[j].Day })
	dayModes := make([]goals.DayMode, 0, len(modes))
	for _, m := range modes {
		dayModes = append(dayModes, goals.DayMode(m.Mode))
	}

	out := &goals.GoalSet{
		ID:        g.ID,
		Name:      g.Name,
		StartDate: g.StartDate,
		EndDate:   g.EndDate,
		Period:    g.Period,
		DayModes:  goals.NormalizeDayModes(g.Period, dayModes),
	}
	for _, n := range g.Nutrients {
		tn := goals.TrackedNutrient{NutrientID: n.NutrientID, Unit: n.UnitID}
		targets := append([]GoalNutrientTarget(nil), n.Targets...)
		sort.Slice(targets, func(i, j int) bool { return targets[i].StartDay < targets[j].StartDay })
		for _, t := range targets {
			tn.Targets = append(tn.Targets, goals.Target{
				Minimum:  t.Minimum,
				Maximum:  t.Maximum,
				StartDay: t.StartDay,
				EndDay:   t.EndDay,
			})
		}
		out.Nutrients = append(out.Nutrients, tn)
	}
	return out
}

// GoalSetFromEngine converts a validated schedule into rows ready to insert.
func GoalSetFromEngine(g *goals.GoalSet) NutritionGoalSet {
	row := NutritionGoalSet{
		Base:      Base{ID: g.ID},
		Name:      g.Name,
		StartDate: g.StartDate,
		EndDate:   g.EndDate,
		Period:    g.Period,
	}
	for day, mode := range g.DayModes {
		row.DayModes = append(row.DayModes, GoalDayMode{GoalSetID: g.ID, Day: day, Mode: string(mode)})
	}
	for _, n := range g.Nutrients {
		gn := GoalNutrient{Base: Base{ID: uuid.New()}, GoalSetID: g.ID, NutrientID: n.NutrientID, UnitID: n.Unit}
		for _, t := range n.Targets {
			gn.Targets = append(gn.Targets, GoalNutrientTarget{
				GoalNutrientID: gn.ID,
				Minimum:        t.Minimum,
				Maximum:        t.Maximum,
				StartDay:       t.StartDay,
				EndDay:         t.EndDay,
			})
		}
		row.Nutrients = append(row.Nutrients, gn)
	}
	return row
}

package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/nutriscope/backend/internal/goals"
	"github.com/pageza/nutriscope/backend/internal/model"
)

// GoalService handles nutrition goal sets
type GoalService struct {
	db  *gorm.DB
	log *slog.Logger
}

// NewGoalService creates a new GoalService instance
func NewGoalService(db *gorm.DB, logger *slog.Logger) *GoalService {
	if logger == nil {
		logger = slog.Default()
	}
	return &GoalService{db: db, log: logger}
}

// Create validates and normalises spec, then stores the resulting goal set.
// Targets that do not line up with a day-mode range are accepted but logged.
func (s *GoalService) Create(ctx context.Context, spec goals.Spec) (*goals.GoalSet, error) {
	g, err := goals.NewGoalSet(spec)
	if err != nil {
		return nil, err
	}
	if err := g.CheckAlignment(); err != nil {
		s.log.Warn("Goal targets do not match day ranges",
			slog.String("goal_set_id", g.ID.String()),
			slog.String("error", err.Error()))
	}

	row := model.GoalSetFromEngine(g)
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to store goal set: %w", err)
	}
	return g, nil
}

// Get loads a goal set with its schedule.
func (s *GoalService) Get(ctx context.Context, id uuid.UUID) (*goals.GoalSet, error) {
	var row model.NutritionGoalSet
	err := s.db.WithContext(ctx).
		Preload("DayModes").
		Preload("Nutrients.Targets").
		First(&row, "id = ?", id).Error
	if err != nil {
		return nil, notFound(err, "goal set", id)
	}
	return row.ToEngine(), nil
}

// ActiveOn returns every goal set whose date range includes date.
func (s *GoalService) ActiveOn(ctx context.Context, date time.Time) ([]*goals.GoalSet, error) {
	var rows []model.NutritionGoalSet
	err := s.db.WithContext(ctx).
		Preload("DayModes").
		Preload("Nutrients.Targets").
		Order("start_date").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	var out []*goals.GoalSet
	for _, r := range rows {
		g := r.ToEngine()
		if g.ActiveOn(date) {
			out = append(out, g)
		}
	}
	return out, nil
}

// TargetsView is the schedule resolved against one date.
type TargetsView struct {
	GoalSetID   uuid.UUID            `json:"goal_set_id"`
	Date        string               `json:"date"`
	Active      bool                 `json:"active"`
	DayInPeriod int                  `json:"day_in_period"`
	Ranges      []goals.Range        `json:"ranges"`
	Targets     []goals.ActiveTarget `json:"targets"`
	Problems    []string             `json:"problems,omitempty"`
}

// Targets resolves the targets of goal set id that apply on date.
func (s *GoalService) Targets(ctx context.Context, id uuid.UUID, date time.Time) (*TargetsView, error) {
	g, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	ev := g.Evaluate(date)
	view := &TargetsView{
		GoalSetID:   g.ID,
		Date:        date.Format("2006-01-02"),
		Active:      ev.Active,
		DayInPeriod: ev.DayInPeriod,
		Ranges:      g.Ranges(),
		Targets:     ev.Targets,
	}
	if view.Targets == nil {
		view.Targets = []goals.ActiveTarget{}
	}
	for _, p := range ev.Problems {
		view.Problems = append(view.Problems, p.Error())
	}
	return view, nil
}

package journal

import (
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pageza/nutriscope/backend/internal/goals"
	"github.com/pageza/nutriscope/backend/internal/nutrition"
)

// Status places a total relative to its target range.
type Status string

const (
	StatusBelow  Status = "below"
	StatusWithin Status = "within"
	StatusAbove  Status = "above"
)

// Target is the active min/max bound for a nutrient.
type Target struct {
	Minimum *float64 `json:"minimum,omitempty"`
	Maximum *float64 `json:"maximum,omitempty"`
}

// NutrientProgress is one tracked nutrient on the day view.
type NutrientProgress struct {
	NutrientID   uuid.UUID `json:"nutrient_id"`
	NutrientName string    `json:"nutrient_name"`
	UnitID       uuid.UUID `json:"unit_id"`
	UnitName     string    `json:"unit_name"`
	Target       Target    `json:"target"`
	Total        float64   `json:"total"`
	Status       Status    `json:"status"`
	// Unavailable counts entries whose projection failed and were counted as zero.
	Unavailable int `json:"unavailable,omitempty"`
}

// DayView is the progress against one goal set on one date.
type DayView struct {
	Date        time.Time          `json:"date"`
	GoalSetID   uuid.UUID          `json:"goal_set_id"`
	GoalSetName string             `json:"goal_set_name"`
	DayInPeriod int                `json:"day_in_period"`
	Nutrients   []NutrientProgress `json:"nutrients"`
}

// Builder combines goal schedules with journal projections.
type Builder struct {
	calc *nutrition.Calculator
	log  *slog.Logger
}

// NewBuilder creates a Builder. A nil logger discards output.
func NewBuilder(calc *nutrition.Calculator, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Builder{calc: calc, log: logger}
}

// Build returns one view per goal set active on date. Entries are expected to belong to
// that date; failed projections count as zero and are logged.
func (b *Builder) Build(date time.Time, goalSets []*goals.GoalSet, entries []nutrition.JournalEntry) []DayView {
	catalog := b.calc.Catalog()
	views := make([]DayView, 0, len(goalSets))

	for _, g := range goalSets {
		ev := g.Evaluate(date)
		if !ev.Active {
			continue
		}
		for _, p := range ev.Problems {
			b.log.Warn("Goal schedule has no target for day",
				slog.String("goal_set_id", g.ID.String()),
				slog.Int("day_in_period", ev.DayInPeriod),
				slog.String("error", p.Error()))
		}

		view := DayView{
			Date:        date,
			GoalSetID:   g.ID,
			GoalSetName: g.Name,
			DayInPeriod: ev.DayInPeriod,
			Nutrients:   make([]NutrientProgress, 0, len(ev.Targets)),
		}
		for _, t := range ev.Targets {
			progress := NutrientProgress{
				NutrientID: t.NutrientID,
				UnitID:     t.Unit,
				UnitName:   catalog.Graph.UnitName(t.Unit),
				Target:     Target{Minimum: t.Minimum, Maximum: t.Maximum},
			}
			if n, ok := catalog.Nutrients[t.NutrientID]; ok {
				progress.NutrientName = n.Name
			}
			for _, e := range entries {
				v, err := b.calc.Project(e, t.NutrientID, t.Unit)
				if err != nil {
					progress.Unavailable++
					b.log.Error("Journal entry counted as zero",
						slog.String("journal_entry_id", e.ID.String()),
						slog.String("nutrient_id", t.NutrientID.String()),
						slog.String("error", err.Error()))
					continue
				}
				progress.Total += v
			}
			progress.Status = Classify(progress.Total, progress.Target)
			view.Nutrients = append(view.Nutrients, progress)
		}
		views = append(views, view)
	}
	return views
}

// Classify compares a total with a target range. Bounds are inclusive.
func Classify(total float64, t Target) Status {
	if t.Minimum != nil && total < *t.Minimum {
		return StatusBelow
	}
	if t.Maximum != nil && total > *t.Maximum {
		return StatusAbove
	}
	return StatusWithin
}

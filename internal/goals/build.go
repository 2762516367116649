package goals

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// TargetSpec is the caller-supplied form of a Target.
type TargetSpec struct {
	Minimum  *float64 `json:"minimum" validate:"omitempty,gte=0"`
	Maximum  *float64 `json:"maximum" validate:"omitempty,gte=0"`
	StartDay int      `json:"start_day" validate:"gte=0"`
	EndDay   int      `json:"end_day" validate:"gte=0"`
}

// NutrientSpec is the caller-supplied form of a TrackedNutrient.
type NutrientSpec struct {
	NutrientID uuid.UUID    `json:"nutrient_id" validate:"required"`
	UnitID     uuid.UUID    `json:"unit_id" validate:"required"`
	Targets    []TargetSpec `json:"targets" validate:"required,min=1,dive"`
}

// Spec describes a goal set to construct.
type Spec struct {
	Name      string         `json:"name" validate:"required,max=255"`
	StartDate time.Time      `json:"start_date" validate:"required"`
	EndDate   *time.Time     `json:"end_date"`
	Period    int            `json:"period"`
	DayModes  []DayMode      `json:"day_modes" validate:"dive,oneof=DifferentGoal SameGoal"`
	Nutrients []NutrientSpec `json:"nutrients" validate:"dive"`
}

// NewGoalSet validates spec and builds a GoalSet, normalising its day modes.
// The period is checked before anything else so an out-of-range period is always
// reported as ErrInvalidGoalPeriod.
func NewGoalSet(spec Spec) (*GoalSet, error) {
	if spec.Period < MinPeriod || spec.Period > MaxPeriod {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidGoalPeriod, spec.Period)
	}
	if err := validate.Struct(spec); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidGoalSet, verrs.Error())
		}
		return nil, err
	}

	g := &GoalSet{
		ID:        uuid.New(),
		Name:      spec.Name,
		StartDate: spec.StartDate,
		EndDate:   spec.EndDate,
		Period:    spec.Period,
		DayModes:  NormalizeDayModes(spec.Period, spec.DayModes),
	}
	for _, ns := range spec.Nutrients {
		tn := TrackedNutrient{NutrientID: ns.NutrientID, Unit: ns.UnitID}
		for _, ts := range ns.Targets {
			tn.Targets = append(tn.Targets, Target{
				Minimum:  ts.Minimum,
				Maximum:  ts.Maximum,
				StartDay: ts.StartDay,
				EndDay:   ts.EndDay,
			})
		}
		g.Nutrients = append(g.Nutrients, tn)
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

package goals

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	MinPeriod = 1
	MaxPeriod = 31
)

// DayMode marks whether a day starts a new target range or extends the previous one.
type DayMode string

const (
	DifferentGoal DayMode = "DifferentGoal"
	SameGoal      DayMode = "SameGoal"
)

// Range is an inclusive span of day indices within a period.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Contains reports whether day lies within the range.
func (r Range) Contains(day int) bool {
	return day >= r.Start && day <= r.End
}

// Target is a min/max bound that applies to days [StartDay, EndDay] of the period.
type Target struct {
	Minimum  *float64 `json:"minimum,omitempty"`
	Maximum  *float64 `json:"maximum,omitempty"`
	StartDay int      `json:"start_day"`
	EndDay   int      `json:"end_day"`
}

// Range returns the span the target covers.
func (t Target) Range() Range {
	return Range{Start: t.StartDay, End: t.EndDay}
}

// TrackedNutrient is one nutrient followed by a goal set, reported in Unit.
type TrackedNutrient struct {
	NutrientID uuid.UUID
	Unit       uuid.UUID
	Targets    []Target
}

// GoalSet is a cyclic schedule of nutrient targets, Period days long.
type GoalSet struct {
	ID        uuid.UUID
	Name      string
	StartDate time.Time
	EndDate   *time.Time
	Period    int
	DayModes  []DayMode
	Nutrients []TrackedNutrient
}

// NormalizeDayModes sizes modes to period, padding with SameGoal, and forces day 0 to DifferentGoal.
func NormalizeDayModes(period int, modes []DayMode) []DayMode {
	if period < 1 {
		return nil
	}
	out := make([]DayMode, period)
	for i := range out {
		out[i] = SameGoal
		if i < len(modes) && modes[i] == DifferentGoal {
			out[i] = DifferentGoal
		}
	}
	out[0] = DifferentGoal
	return out
}

// Ranges groups day indices into target ranges: DifferentGoal opens [i, i], SameGoal extends
// the open range to i. A leading SameGoal with no open range is ignored.
func Ranges(modes []DayMode) []Range {
	var out []Range
	for i, m := range modes {
		switch {
		case m == DifferentGoal:
			out = append(out, Range{Start: i, End: i})
		case len(out) > 0:
			out[len(out)-1].End = i
		}
	}
	return out
}

// DaysBetween counts calendar days from a to b; negative when b precedes a.
func DaysBetween(a, b time.Time) int {
	return int(civil(b).Sub(civil(a)).Hours() / 24)
}

// civil reads the calendar date in UTC, whatever location t was decoded into.
func civil(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ActiveOn reports whether d lies inside [StartDate, EndDate].
func (g *GoalSet) ActiveOn(d time.Time) bool {
	if DaysBetween(g.StartDate, d) < 0 {
		return false
	}
	if g.EndDate != nil && DaysBetween(*g.EndDate, d) > 0 {
		return false
	}
	return true
}

// DayInPeriod maps d onto the cycle. ok is false when the goal set is not active on d.
func (g *GoalSet) DayInPeriod(d time.Time) (int, bool) {
	if !g.ActiveOn(d) || g.Period < 1 {
		return 0, false
	}
	offset := DaysBetween(g.StartDate, d)
	return ((offset % g.Period) + g.Period) % g.Period, true
}

// Ranges returns the target ranges implied by the goal set's day modes.
func (g *GoalSet) Ranges() []Range {
	return Ranges(g.DayModes)
}

// ActiveTarget is the bound that applies to one nutrient on one date.
type ActiveTarget struct {
	NutrientID uuid.UUID `json:"nutrient_id"`
	Unit       uuid.UUID `json:"unit_id"`
	Minimum    *float64  `json:"minimum,omitempty"`
	Maximum    *float64  `json:"maximum,omitempty"`
	Range      Range     `json:"range"`
}

// Evaluation is the result of resolving a goal set against a date.
type Evaluation struct {
	Active      bool
	DayInPeriod int
	Targets     []ActiveTarget
	// Problems lists nutrients that had no matching range; they are skipped, not fatal.
	Problems []error
}

// Evaluate resolves the targets active on d. Nutrients with no target covering the day are
// skipped and recorded in Problems.
func (g *GoalSet) Evaluate(d time.Time) Evaluation {
	day, ok := g.DayInPeriod(d)
	if !ok {
		return Evaluation{}
	}
	ev := Evaluation{Active: true, DayInPeriod: day}
	for _, n := range g.Nutrients {
		t, found := selectTarget(n.Targets, day)
		if !found {
			ev.Problems = append(ev.Problems, fmt.Errorf("%w: nutrient %s has no target for day %d", ErrMalformedGoalSchedule, n.NutrientID, day))
			continue
		}
		ev.Targets = append(ev.Targets, ActiveTarget{
			NutrientID: n.NutrientID,
			Unit:       n.Unit,
			Minimum:    t.Minimum,
			Maximum:    t.Maximum,
			Range:      t.Range(),
		})
	}
	return ev
}

// ActiveTargets is Evaluate without the diagnostics.
func (g *GoalSet) ActiveTargets(d time.Time) []ActiveTarget {
	return g.Evaluate(d).Targets
}

func selectTarget(targets []Target, day int) (Target, bool) {
	for _, t := range targets {
		if t.Range().Contains(day) {
			return t, true
		}
	}
	return Target{}, false
}

// Validate checks structural invariants of a goal set supplied directly by a caller.
func (g *GoalSet) Validate() error {
	var errs []error
	if g.Period < MinPeriod || g.Period > MaxPeriod {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrInvalidGoalPeriod, g.Period))
	}
	if g.EndDate != nil && DaysBetween(g.StartDate, *g.EndDate) < 0 {
		errs = append(errs, ErrInvalidDateRange)
	}
	if len(g.DayModes) != g.Period {
		errs = append(errs, fmt.Errorf("%w: %d day modes for a %d day period", ErrMalformedGoalSchedule, len(g.DayModes), g.Period))
	} else if g.Period > 0 && g.DayModes[0] != DifferentGoal {
		errs = append(errs, fmt.Errorf("%w: first day must start a new goal", ErrMalformedGoalSchedule))
	}
	for _, n := range g.Nutrients {
		for i, t := range n.Targets {
			if err := validateTarget(t, g.Period); err != nil {
				errs = append(errs, fmt.Errorf("nutrient %s target %d: %w", n.NutrientID, i, err))
			}
		}
	}
	return errors.Join(errs...)
}

// CheckAlignment reports targets whose span is not exactly one of the day-mode ranges.
func (g *GoalSet) CheckAlignment() error {
	ranges := make(map[Range]bool)
	for _, r := range g.Ranges() {
		ranges[r] = true
	}
	var errs []error
	for _, n := range g.Nutrients {
		for _, t := range n.Targets {
			if !ranges[t.Range()] {
				errs = append(errs, fmt.Errorf("%w: nutrient %s target [%d,%d] does not match a day range", ErrMalformedGoalSchedule, n.NutrientID, t.StartDay, t.EndDay))
			}
		}
	}
	return errors.Join(errs...)
}

func validateTarget(t Target, period int) error {
	if t.Minimum == nil && t.Maximum == nil {
		return fmt.Errorf("%w: minimum or maximum is required", ErrInvalidTarget)
	}
	if t.Minimum != nil && t.Maximum != nil && *t.Minimum > *t.Maximum {
		return fmt.Errorf("%w: minimum %v exceeds maximum %v", ErrInvalidTarget, *t.Minimum, *t.Maximum)
	}
	if t.StartDay < 0 || t.EndDay > period-1 || t.StartDay > t.EndDay {
		return fmt.Errorf("%w: day span [%d,%d] outside [0,%d]", ErrInvalidTarget, t.StartDay, t.EndDay, period-1)
	}
	return nil
}

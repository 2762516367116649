package goals

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func floatPtr(v float64) *float64 { return &v }

func weeklyModes() []DayMode {
	return []DayMode{DifferentGoal, SameGoal, SameGoal, DifferentGoal, SameGoal, SameGoal, SameGoal}
}

func weeklyGoalSet(protein uuid.UUID) *GoalSet {
	return &GoalSet{
		ID:        uuid.New(),
		Name:      "Training week",
		StartDate: date(2024, 1, 1),
		Period:    7,
		DayModes:  weeklyModes(),
		Nutrients: []TrackedNutrient{{
			NutrientID: protein,
			Unit:       uuid.New(),
			Targets: []Target{
				{Minimum: floatPtr(120), Maximum: floatPtr(160), StartDay: 0, EndDay: 2},
				{Minimum: floatPtr(90), StartDay: 3, EndDay: 6},
			},
		}},
	}
}

func TestRanges(t *testing.T) {
	assert.Equal(t, []Range{{Start: 0, End: 2}, {Start: 3, End: 6}}, Ranges(weeklyModes()))
	assert.Equal(t, []Range{{Start: 0, End: 0}}, Ranges([]DayMode{DifferentGoal}))
	assert.Equal(t, []Range{{Start: 0, End: 0}, {Start: 1, End: 1}}, Ranges([]DayMode{DifferentGoal, DifferentGoal}))
	assert.Nil(t, Ranges(nil))
}

func TestNormalizeDayModes(t *testing.T) {
	assert.Equal(t, []DayMode{DifferentGoal, SameGoal, DifferentGoal}, NormalizeDayModes(3, []DayMode{SameGoal, SameGoal, DifferentGoal}))
	assert.Equal(t, []DayMode{DifferentGoal, SameGoal, SameGoal}, NormalizeDayModes(3, nil))
	assert.Equal(t, []DayMode{DifferentGoal}, NormalizeDayModes(1, []DayMode{SameGoal, DifferentGoal}))
	assert.Nil(t, NormalizeDayModes(0, weeklyModes()))
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 9, DaysBetween(date(2024, 1, 1), date(2024, 1, 10)))
	assert.Equal(t, -1, DaysBetween(date(2024, 1, 1), date(2023, 12, 31)))
	// time of day is ignored
	assert.Equal(t, 1, DaysBetween(time.Date(2024, 3, 1, 23, 0, 0, 0, time.UTC), time.Date(2024, 3, 2, 1, 0, 0, 0, time.UTC)))
	// leap day
	assert.Equal(t, 2, DaysBetween(date(2024, 2, 28), date(2024, 3, 1)))
}

func TestDayInPeriod(t *testing.T) {
	g := weeklyGoalSet(uuid.New())

	day, ok := g.DayInPeriod(date(2024, 1, 10))
	require.True(t, ok)
	assert.Equal(t, 2, day)

	day, ok = g.DayInPeriod(date(2024, 1, 1))
	require.True(t, ok)
	assert.Equal(t, 0, day)

	_, ok = g.DayInPeriod(date(2023, 12, 31))
	assert.False(t, ok)
}

func TestDayInPeriodIgnoresDecodedLocation(t *testing.T) {
	est := time.FixedZone("EST", -5*60*60)
	g := weeklyGoalSet(uuid.New())
	// the same instant as 2024-01-01T00:00Z, as a driver would hand it back in a western zone
	g.StartDate = date(2024, 1, 1).In(est)

	day, ok := g.DayInPeriod(date(2024, 1, 10))
	require.True(t, ok)
	assert.Equal(t, 2, day)

	assert.False(t, g.ActiveOn(date(2023, 12, 31)))
	assert.True(t, g.ActiveOn(date(2024, 1, 1)))

	end := date(2024, 1, 5).In(est)
	g.EndDate = &end
	assert.True(t, g.ActiveOn(date(2024, 1, 5)))
	assert.False(t, g.ActiveOn(date(2024, 1, 6)))
}

func TestEvaluateSelectsRange(t *testing.T) {
	protein := uuid.New()
	g := weeklyGoalSet(protein)

	ev := g.Evaluate(date(2024, 1, 10))
	require.True(t, ev.Active)
	assert.Equal(t, 2, ev.DayInPeriod)
	require.Len(t, ev.Targets, 1)
	assert.Equal(t, protein, ev.Targets[0].NutrientID)
	assert.Equal(t, Range{Start: 0, End: 2}, ev.Targets[0].Range)
	assert.Equal(t, 120.0, *ev.Targets[0].Minimum)
	assert.Equal(t, 160.0, *ev.Targets[0].Maximum)

	targets := g.ActiveTargets(date(2024, 1, 12))
	require.Len(t, targets, 1)
	assert.Equal(t, Range{Start: 3, End: 6}, targets[0].Range)
	assert.Nil(t, targets[0].Maximum)
}

func TestEvaluateOutsideWindow(t *testing.T) {
	g := weeklyGoalSet(uuid.New())
	end := date(2024, 1, 31)
	g.EndDate = &end

	assert.Empty(t, g.ActiveTargets(date(2023, 12, 25)))
	assert.Empty(t, g.ActiveTargets(date(2024, 2, 1)))
	assert.Len(t, g.ActiveTargets(date(2024, 1, 31)), 1)
}

func TestEvaluateMissingRangeIsNotFatal(t *testing.T) {
	protein, fiber := uuid.New(), uuid.New()
	g := weeklyGoalSet(protein)
	g.Nutrients = append(g.Nutrients, TrackedNutrient{
		NutrientID: fiber,
		Targets:    []Target{{Minimum: floatPtr(30), StartDay: 0, EndDay: 2}},
	})

	ev := g.Evaluate(date(2024, 1, 5))
	require.True(t, ev.Active)
	assert.Equal(t, 4, ev.DayInPeriod)
	require.Len(t, ev.Targets, 1)
	assert.Equal(t, protein, ev.Targets[0].NutrientID)
	require.Len(t, ev.Problems, 1)
	assert.ErrorIs(t, ev.Problems[0], ErrMalformedGoalSchedule)
}

func TestValidate(t *testing.T) {
	g := weeklyGoalSet(uuid.New())
	assert.NoError(t, g.Validate())
	assert.NoError(t, g.CheckAlignment())

	g.Period = 40
	assert.ErrorIs(t, g.Validate(), ErrInvalidGoalPeriod)

	g = weeklyGoalSet(uuid.New())
	g.DayModes = g.DayModes[:5]
	assert.ErrorIs(t, g.Validate(), ErrMalformedGoalSchedule)

	g = weeklyGoalSet(uuid.New())
	g.DayModes[0] = SameGoal
	assert.ErrorIs(t, g.Validate(), ErrMalformedGoalSchedule)

	g = weeklyGoalSet(uuid.New())
	before := date(2023, 1, 1)
	g.EndDate = &before
	assert.ErrorIs(t, g.Validate(), ErrInvalidDateRange)

	g = weeklyGoalSet(uuid.New())
	g.Nutrients[0].Targets[1] = Target{StartDay: 3, EndDay: 6}
	assert.ErrorIs(t, g.Validate(), ErrInvalidTarget)

	g = weeklyGoalSet(uuid.New())
	g.Nutrients[0].Targets[1].EndDay = 7
	assert.ErrorIs(t, g.Validate(), ErrInvalidTarget)
}

func TestCheckAlignment(t *testing.T) {
	g := weeklyGoalSet(uuid.New())
	g.Nutrients[0].Targets[1].StartDay = 4
	assert.ErrorIs(t, g.CheckAlignment(), ErrMalformedGoalSchedule)
}

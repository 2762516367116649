package goals

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSpec() Spec {
	return Spec{
		Name:      "Cut",
		StartDate: date(2024, 1, 1),
		Period:    7,
		DayModes:  []DayMode{SameGoal, SameGoal, SameGoal, DifferentGoal, SameGoal, SameGoal, SameGoal},
		Nutrients: []NutrientSpec{{
			NutrientID: uuid.New(),
			UnitID:     uuid.New(),
			Targets: []TargetSpec{
				{Maximum: floatPtr(2000), StartDay: 0, EndDay: 2},
				{Minimum: floatPtr(1800), Maximum: floatPtr(2200), StartDay: 3, EndDay: 6},
			},
		}},
	}
}

func TestNewGoalSetNormalisesFirstDay(t *testing.T) {
	g, err := NewGoalSet(validSpec())
	require.NoError(t, err)

	assert.Equal(t, DifferentGoal, g.DayModes[0])
	assert.Equal(t, []Range{{Start: 0, End: 2}, {Start: 3, End: 6}}, g.Ranges())
	assert.NotEqual(t, uuid.Nil, g.ID)
	require.Len(t, g.Nutrients, 1)
	assert.Len(t, g.Nutrients[0].Targets, 2)
}

func TestNewGoalSetPadsDayModes(t *testing.T) {
	spec := validSpec()
	spec.DayModes = nil
	spec.Nutrients[0].Targets = []TargetSpec{{Minimum: floatPtr(1), StartDay: 0, EndDay: 6}}

	g, err := NewGoalSet(spec)
	require.NoError(t, err)
	assert.Len(t, g.DayModes, 7)
	assert.Equal(t, []Range{{Start: 0, End: 6}}, g.Ranges())
}

func TestNewGoalSetRejectsPeriod(t *testing.T) {
	for _, p := range []int{0, -3, 32} {
		spec := validSpec()
		spec.Period = p
		_, err := NewGoalSet(spec)
		assert.ErrorIs(t, err, ErrInvalidGoalPeriod, "period %d", p)
	}
}

func TestNewGoalSetRejectsInvalidInput(t *testing.T) {
	spec := validSpec()
	spec.Name = ""
	_, err := NewGoalSet(spec)
	assert.ErrorIs(t, err, ErrInvalidGoalSet)

	spec = validSpec()
	spec.DayModes[2] = "Sometimes"
	_, err = NewGoalSet(spec)
	assert.ErrorIs(t, err, ErrInvalidGoalSet)

	spec = validSpec()
	end := date(2023, 6, 1)
	spec.EndDate = &end
	_, err = NewGoalSet(spec)
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	spec = validSpec()
	spec.Nutrients[0].Targets[0] = TargetSpec{StartDay: 0, EndDay: 2}
	_, err = NewGoalSet(spec)
	assert.ErrorIs(t, err, ErrInvalidTarget)

	spec = validSpec()
	spec.Nutrients[0].Targets[0].Minimum = floatPtr(3000)
	_, err = NewGoalSet(spec)
	assert.ErrorIs(t, err, ErrInvalidTarget)
}

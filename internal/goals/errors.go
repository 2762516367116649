package goals

import "errors"

var (
	ErrInvalidGoalPeriod     = errors.New("goal period must be between 1 and 31 days")
	ErrInvalidDateRange      = errors.New("goal end date is before start date")
	ErrMalformedGoalSchedule = errors.New("malformed goal schedule")
	ErrInvalidTarget         = errors.New("invalid nutrient target")
	ErrInvalidGoalSet        = errors.New("invalid goal set")
)

package nutrition

import "errors"

var (
	ErrNoMatchingServingSizeType = errors.New("no serving size with a matching unit type")
	ErrDivisionByZeroServingSize = errors.New("serving size quantity is zero")
	ErrNutrientNotReported       = errors.New("food item does not report nutrient")
	ErrNoDailyValue              = errors.New("nutrient has no daily value")
	ErrUnknownFoodItem           = errors.New("unknown food item")
	ErrUnknownNutrient           = errors.New("unknown nutrient")
	ErrNegativeQuantity          = errors.New("quantity must not be negative")
	ErrInvalidScaleFactor        = errors.New("scale factor must be a positive number")
	ErrZeroPivotQuantity         = errors.New("pivot quantity is zero")
	ErrInvalidPivotQuantity      = errors.New("desired pivot quantity must be positive")
	ErrIndexOutOfRange           = errors.New("index out of range")
)

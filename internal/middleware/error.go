package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/nutriscope/backend/internal/goals"
	"github.com/pageza/nutriscope/backend/internal/nutrition"
	"github.com/pageza/nutriscope/backend/internal/service"
	"github.com/pageza/nutriscope/backend/internal/storage"
	"github.com/pageza/nutriscope/backend/internal/units"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

var statusByError = []struct {
	err    error
	status int
}{
	{service.ErrNotFound, http.StatusNotFound},
	{service.ErrInvalidInput, http.StatusBadRequest},
	{service.ErrInvalidScaleRequest, http.StatusBadRequest},
	{goals.ErrInvalidGoalPeriod, http.StatusBadRequest},
	{goals.ErrInvalidGoalSet, http.StatusBadRequest},
	{goals.ErrInvalidTarget, http.StatusBadRequest},
	{goals.ErrInvalidDateRange, http.StatusBadRequest},
	{goals.ErrMalformedGoalSchedule, http.StatusBadRequest},
	{nutrition.ErrNegativeQuantity, http.StatusBadRequest},
	{nutrition.ErrInvalidScaleFactor, http.StatusBadRequest},
	{nutrition.ErrInvalidPivotQuantity, http.StatusBadRequest},
	{nutrition.ErrIndexOutOfRange, http.StatusBadRequest},
	{nutrition.ErrZeroPivotQuantity, http.StatusUnprocessableEntity},
	{units.ErrConversionNotFound, http.StatusUnprocessableEntity},
	{nutrition.ErrNoMatchingServingSizeType, http.StatusUnprocessableEntity},
	{nutrition.ErrDivisionByZeroServingSize, http.StatusUnprocessableEntity},
	{storage.ErrArchiveDisabled, http.StatusServiceUnavailable},
}

// StatusFor maps a domain error onto an HTTP status. Unknown errors are 500.
func StatusFor(err error) int {
	for _, e := range statusByError {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// ErrorHandler renders the last error a handler attached with c.Error as JSON
// and turns panics into a 500.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("Recovered from panic",
					slog.Any("panic", r),
					slog.String("path", c.Request.URL.Path))
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal Server Error"})
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		status := StatusFor(err)
		if status >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.String("path", c.Request.URL.Path),
				slog.String("error", err.Error()))
			if status == http.StatusInternalServerError {
				c.JSON(status, ErrorResponse{Error: "Internal Server Error"})
				return
			}
		}
		c.JSON(status, ErrorResponse{Error: err.Error()})
	}
}

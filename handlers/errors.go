package handlers

import (
	"errors"
	"net/http"

	"beautybar/services/scheduling"
	"beautybar/utils"

	"github.com/gin-gonic/gin"
)

// respondSchedulingError translates engine errors into HTTP responses. The
// taxonomy is fixed: bad input 400, unknown ids 404, admission conflicts and
// illegal transitions 409, storage failures 500. Nothing is retried here.
func respondSchedulingError(c *gin.Context, err error) {
	switch {
	case scheduling.IsInvalidInput(err):
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
	case errors.Is(err, scheduling.ErrCategoryNotFound),
		errors.Is(err, scheduling.ErrServiceNotFound),
		errors.Is(err, scheduling.ErrBookingNotFound),
		errors.Is(err, scheduling.ErrBlockedDateNotFound):
		utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
	case errors.Is(err, scheduling.ErrSlotUnavailable):
		utils.JSONError(c, http.StatusConflict, "Slot unavailable", err.Error())
	case errors.Is(err, scheduling.ErrInvalidTransition):
		utils.JSONError(c, http.StatusConflict, "Invalid status transition", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Internal error", err.Error())
	}
}

package handlers

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"bookery/services"
	"bookery/utils"
)

// respondError maps an engine error class to its HTTP status.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "internal error"
	switch {
	case errors.Is(err, services.ErrInvalidArgument):
		status, message = http.StatusBadRequest, "invalid request"
	case errors.Is(err, services.ErrNotFound):
		status, message = http.StatusNotFound, "not found"
	case errors.Is(err, services.ErrConflict):
		status, message = http.StatusConflict, "conflict"
	case errors.Is(err, services.ErrFailedPrecondition):
		status, message = http.StatusConflict, "invalid state transition"
	case errors.Is(err, services.ErrResourceExhausted):
		status, message = http.StatusTooManyRequests, "capacity reached"
	}
	utils.JSONError(c, status, message, err.Error())
}

package controllers

import (
	"errors"
	"net/http"

	"testdesk/models"
	"testdesk/pages"
	"testdesk/tools"

	"github.com/gin-gonic/gin"
)

func RespondError(c *gin.Context, msg string, code int) {
	c.JSON(code, gin.H{"error": msg})
}

func RespondSuccess(c *gin.Context, payload any) {
	c.JSON(200, payload)
}

// RespondPage writes a page snapshot with the status that matches err.
// The snapshot is always sent so the shell can render inline errors.
func RespondPage(c *gin.Context, snapshot any, err error) {
	c.JSON(pageStatus(err), snapshot)
}

func pageStatus(err error) int {
	var apiErr *tools.BackendAPIError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, pages.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, pages.ErrInvalidAction):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrLegacyEntity):
		return http.StatusConflict
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &apiErr):
		if apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
			return apiErr.StatusCode
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

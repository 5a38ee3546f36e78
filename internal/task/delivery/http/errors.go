package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"smart-task-manager/internal/task"
	pkgErrors "smart-task-manager/pkg/errors"
	"smart-task-manager/pkg/response"
)

var (
	errMissingID       = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
	errEmptyUpdateBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "at least one field must be provided")
)

// mapError translates domain errors into HTTP errors from pkg/errors.
// It returns nil for errors the domain does not know about.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound),
		errors.Is(err, task.ErrSubtaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, task.ErrNoTasksParsed):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, task.ErrEmptyInput),
		errors.Is(err, task.ErrEmptyName),
		errors.Is(err, task.ErrEmptySubtask),
		errors.Is(err, task.ErrInvalidPriority),
		errors.Is(err, task.ErrInvalidSortField):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// abortWithError reports a use case error; unknown errors become a 500.
func (h *handler) abortWithError(c *gin.Context, method string, err error) {
	mapped := h.mapError(err)
	if mapped == nil {
		h.l.Errorf(c.Request.Context(), "task.delivery.http.%s: %v", method, err)
		response.InternalError(c, err)
		return
	}
	response.Error(c, mapped, nil)
}

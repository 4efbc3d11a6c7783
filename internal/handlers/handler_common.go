package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tablestack/resto_ledger_app/internal/apperrors"
	"github.com/tablestack/resto_ledger_app/internal/middleware"
)

// ErrorResponse is the standard error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps application errors to HTTP status codes.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperrors.IsDuplicate(err):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		logger.ErrorContext(c.Request.Context(), "unhandled error", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

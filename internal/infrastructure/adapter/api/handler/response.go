package handler

import (
	"errors"
	"net/http"
	"strconv"

	errs "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/error"
	coreport "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/core"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// StatusCode maps a domain error to its HTTP status
func StatusCode(err error) int {
	switch {
	case errors.Is(err, errs.ErrUserNotFound), errors.Is(err, errs.ErrUploadNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrDuplicateUser), errors.Is(err, errs.ErrDuplicateUpload), errors.Is(err, errs.ErrUserLocked):
		return http.StatusConflict
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, errs.ErrDatabaseConnection):
		return http.StatusServiceUnavailable
	case errs.IsClientError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error body and logs server side failures
func respondError(c *gin.Context, logger coreport.Logger, operation string, err error) {
	status := StatusCode(err)
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", map[string]any{
			"operation":  operation,
			"path":       c.Request.URL.Path,
			"request_id": c.GetString("request_id"),
			"error":      err.Error(),
		})
	}
	_ = c.Error(err)
	c.JSON(status, dto.NewErrorResponse(err))
}

// respondBindError reports a malformed body
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    errs.CodeInvalidRequest,
		Message: "Invalid request format: " + err.Error(),
	})
}

// parseID reads a positive numeric path or form value
func parseID(raw string) (uint64, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errs.ErrInvalidUserID
	}
	return id, nil
}

func respondInvalidID(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    errs.CodeInvalidUserID,
		Message: message,
	})
}

package dto

import errs "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/error"

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewErrorResponse uses the error's domain code. Server errors never
// expose their message.
func NewErrorResponse(err error) ErrorResponse {
	code := errs.ErrorCode(err)
	if !errs.IsClientError(err) {
		return ErrorResponse{Code: code, Message: "Internal server error"}
	}
	return ErrorResponse{Code: code, Message: err.Error()}
}

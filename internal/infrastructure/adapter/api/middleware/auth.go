package middleware

import (
	"net/http"
	"strings"

	errs "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/error"
	coreport "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/core"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/identity"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// Auth requires a bearer token and attaches the verified identity to the
// request context for the use cases' ownership checks
func Auth(verifier identity.Verifier, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			unauthorized(c, "Missing bearer token")
			return
		}

		id, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			logger.Debug("Token rejected", map[string]any{
				"request_id": c.GetString(RequestIDKey),
				"error":      err.Error(),
			})
			unauthorized(c, "Invalid or expired token")
			return
		}

		c.Request = c.Request.WithContext(identity.WithIdentity(c.Request.Context(), id))
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Code:    errs.CodeUnauthorized,
		Message: message,
	})
}

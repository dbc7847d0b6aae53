package middleware

import (
	"fmt"
	"net/http"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	errs "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/error"
	coreport "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/core"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/identity"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
)

// RateLimit allows cfg.Limit requests per cfg.Rate for each caller.
// Authenticated callers are keyed by email, others by client IP.
func RateLimit(cfg config.RateLimitConfig, timeProvider coreport.TimeProvider) gin.HandlerFunc {
	store := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  cfg.Rate,
		Limit: cfg.Limit,
	})
	return ratelimit.RateLimiter(store, &ratelimit.Options{
		ErrorHandler: func(c *gin.Context, info ratelimit.Info) {
			retryAfter := info.ResetTime.Sub(timeProvider.Now()).Seconds()
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", fmt.Sprintf("%.0f", retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Code:    errs.CodeRateLimited,
				Message: "Too many requests, try again later",
			})
		},
		KeyFunc: rateLimitKey,
	})
}

func rateLimitKey(c *gin.Context) string {
	if id, ok := identity.FromContext(c.Request.Context()); ok {
		return "user:" + id.Email
	}
	return "ip:" + c.ClientIP()
}

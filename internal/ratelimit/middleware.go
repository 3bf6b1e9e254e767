package ratelimit

import (
	"net/http"
	"shop-admin/internal/apierrors"
	"shop-admin/internal/observability"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Middleware throttles requests per client IP under policy.
func (s *Service) Middleware(policy Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		clientIP := observability.GetRealClientIP(c)

		result := s.CheckRateLimit(ctx, clientIP, policy)

		c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

		if !result.Allowed {
			retryAfter := (result.RetryAfterMs + 999) / 1000
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			ctx = observability.WithFields(ctx,
				observability.Field{Key: "rate_limit_policy", Value: policy.Prefix},
				observability.Field{Key: "limit", Value: result.Limit},
				observability.Field{Key: "retry_after_ms", Value: result.RetryAfterMs},
			)
			s.logger.Warn(ctx, "rate limit exceeded")

			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "Too many requests. Please try again later.",
				"code":        apierrors.CodeRateLimited,
				"retry_after": retryAfter,
			})
			return
		}

		c.Next()
	}
}

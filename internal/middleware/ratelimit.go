package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"shareit/internal/metrics"
	"shareit/internal/pkg/response"
	"shareit/internal/ratelimit"
)

// RateLimit keys requests by acting user when known, otherwise by client IP.
// Limiter failures let the request through.
func RateLimit(limiter ratelimit.Limiter, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()
		if uid := c.GetHeader(SharerUserHeader); uid != "" {
			if id, err := strconv.ParseInt(uid, 10, 64); err == nil {
				key = "user:" + strconv.FormatInt(id, 10)
			}
		}

		ok, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("rate limiter unavailable")
			c.Next()
			return
		}
		if !ok {
			metrics.IncRateLimited()
			response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests")
			c.Abort()
			return
		}
		c.Next()
	}
}

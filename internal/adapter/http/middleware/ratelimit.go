package middleware

import (
	"fmt"
	"time"

	redisstore "marketing-portal/internal/adapter/storage/redis"
	"marketing-portal/pkg/apperror"
	"marketing-portal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimitRule defines a request budget for a route group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

var rateLimitRules = map[string]RateLimitRule{
	"auth_login": {Limit: 10, Window: time.Minute},
	"dashboard":  {Limit: 120, Window: time.Minute},
	"voice":      {Limit: 20, Window: time.Minute},
}

// RateLimiter limits requests per client IP using a fixed window counter in
// Redis. A nil store disables limiting entirely. Store errors fail open so a
// Redis outage does not take the API down with it.
func RateLimiter(store *redisstore.RateLimitStore, rule string, log zerolog.Logger) gin.HandlerFunc {
	cfg, ok := rateLimitRules[rule]
	if store == nil || !ok {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", rule, c.ClientIP())
		res, err := store.Allow(c.Request.Context(), key, cfg.Limit, cfg.Window)
		if err != nil {
			log.Warn().Err(err).Str("rule", rule).Msg("rate limit store unavailable, allowing request")
			c.Next()
			return
		}
		if !res.Allowed {
			retryAfter := res.ResetAt - time.Now().Unix()
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			response.Error(c, apperror.ErrRateLimitExceeded())
			c.Abort()
			return
		}
		c.Next()
	}
}

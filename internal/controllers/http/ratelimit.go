package http

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

const rateLimitWindow = 15 * time.Minute

// RateLimit is a fixed-window per-IP limiter. Counters live in redis so
// the window is shared across instances. Localhost is exempt, and a
// redis outage fails open rather than blocking traffic.
func RateLimit(rdb *redis.Client, tier string, max int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if ip == "127.0.0.1" || ip == "::1" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := fmt.Sprintf("ratelimit:%s:%s", tier, ip)

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			log.Printf("rate limiter unavailable: %v", err)
			c.Next()
			return
		}
		if count == 1 {
			rdb.Expire(ctx, key, rateLimitWindow)
		}

		if count > max {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "too many requests from this IP, please try again later",
			})
			return
		}

		c.Next()
	}
}

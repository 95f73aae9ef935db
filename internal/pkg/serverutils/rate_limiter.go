package serverutils

import (
	"fmt"
	"strings"
	"time"

	"churchhub-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// CallerKey derives the rate-limit identifier for a request. Forwarded IP
// wins over the socket address because cron triggers arrive through the
// platform proxy.
func CallerKey(ctx *fiber.Ctx) string {
	if fwd := ctx.Get("X-Forwarded-For"); fwd != "" {
		// First hop is the original caller.
		if idx := strings.IndexByte(fwd, ','); idx > 0 {
			return strings.TrimSpace(fwd[:idx])
		}
		return strings.TrimSpace(fwd)
	}
	return ctx.IP()
}

// RateLimitMiddleware is a fixed-window limiter on Redis, keyed by caller
// identifier inside a category (e.g. "cron"). A Redis outage fails open with a
// warning: these endpoints sit behind a shared secret already, and dropping
// scheduled work because the cache is down is worse than skipping the limit.
func RateLimitMiddleware(rdb *redis.Client, log logger.ILogger, category string, limit int, window time.Duration) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if rdb == nil {
			return ctx.Next()
		}

		key := fmt.Sprintf("ratelimit:%s:%s", category, CallerKey(ctx))

		count, err := rdb.Incr(ctx.Context(), key).Result()
		if err != nil {
			log.Warn("RateLimiter", "Redis unavailable, failing open", map[string]interface{}{"error": err.Error()})
			return ctx.Next()
		}
		if count == 1 {
			if err := rdb.Expire(ctx.Context(), key, window).Err(); err != nil {
				// Without the expiry the window never resets and the caller
				// would be limited forever. Drop the key and fail open.
				log.Warn("RateLimiter", "Failed to set window expiry, failing open", map[string]interface{}{"error": err.Error()})
				rdb.Del(ctx.Context(), key)
				return ctx.Next()
			}
		}

		if count > int64(limit) {
			return ctx.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "Too many requests"})
		}
		return ctx.Next()
	}
}

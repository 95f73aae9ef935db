package serverutils

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// CronVerdict is the outcome of a scheduler-secret check.
type CronVerdict struct {
	Authorized bool
	StatusCode int
	Message    string
}

// VerifyCronSecret checks the Authorization header of a scheduler request
// against the configured secret. It fails closed: an unconfigured secret is a
// 500-class configuration error no matter what the caller sent.
//
// The comparison is constant-time over the full "Bearer <secret>" token. When
// the lengths differ a dummy compare against a zero buffer of the caller's
// length runs first, so rejection time does not reveal whether the length
// matched.
func VerifyCronSecret(secret, authHeader string) CronVerdict {
	if secret == "" {
		return CronVerdict{
			Authorized: false,
			StatusCode: fiber.StatusInternalServerError,
			Message:    "Internal server error",
		}
	}

	if authHeader == "" {
		return CronVerdict{
			Authorized: false,
			StatusCode: fiber.StatusUnauthorized,
			Message:    "Unauthorized",
		}
	}

	expected := []byte("Bearer " + secret)
	provided := []byte(authHeader)

	if len(provided) != len(expected) {
		zero := make([]byte, len(provided))
		subtle.ConstantTimeCompare(provided, zero)
		return CronVerdict{
			Authorized: false,
			StatusCode: fiber.StatusUnauthorized,
			Message:    "Unauthorized",
		}
	}

	if subtle.ConstantTimeCompare(provided, expected) != 1 {
		return CronVerdict{
			Authorized: false,
			StatusCode: fiber.StatusUnauthorized,
			Message:    "Unauthorized",
		}
	}

	return CronVerdict{Authorized: true, StatusCode: fiber.StatusOK}
}

// CronAuthMiddleware guards the scheduler endpoints with VerifyCronSecret.
func CronAuthMiddleware(secret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		verdict := VerifyCronSecret(secret, ctx.Get("Authorization"))
		if !verdict.Authorized {
			return ctx.Status(verdict.StatusCode).JSON(fiber.Map{"error": verdict.Message})
		}
		return ctx.Next()
	}
}

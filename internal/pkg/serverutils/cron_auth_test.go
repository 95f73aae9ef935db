package serverutils

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestVerifyCronSecret(t *testing.T) {
	tests := []struct {
		name       string
		secret     string
		authHeader string
		authorized bool
		statusCode int
	}{
		{
			name:       "correct secret",
			secret:     "super-secret",
			authHeader: "Bearer super-secret",
			authorized: true,
			statusCode: fiber.StatusOK,
		},
		{
			name:       "unconfigured secret fails closed",
			secret:     "",
			authHeader: "Bearer anything",
			authorized: false,
			statusCode: fiber.StatusInternalServerError,
		},
		{
			name:       "unconfigured secret fails closed even without header",
			secret:     "",
			authHeader: "",
			authorized: false,
			statusCode: fiber.StatusInternalServerError,
		},
		{
			name:       "missing header",
			secret:     "super-secret",
			authHeader: "",
			authorized: false,
			statusCode: fiber.StatusUnauthorized,
		},
		{
			name:       "single character mutation",
			secret:     "super-secret",
			authHeader: "Bearer super-secreT",
			authorized: false,
			statusCode: fiber.StatusUnauthorized,
		},
		{
			name:       "length mismatch",
			secret:     "super-secret",
			authHeader: "Bearer super",
			authorized: false,
			statusCode: fiber.StatusUnauthorized,
		},
		{
			name:       "missing bearer prefix",
			secret:     "super-secret",
			authHeader: "super-secret",
			authorized: false,
			statusCode: fiber.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			secret:     "super-secret",
			authHeader: "Basic super-secret",
			authorized: false,
			statusCode: fiber.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := VerifyCronSecret(tt.secret, tt.authHeader)
			assert.Equal(t, tt.authorized, verdict.Authorized)
			assert.Equal(t, tt.statusCode, verdict.StatusCode)
		})
	}
}

func TestCronAuthMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(CronAuthMiddleware("super-secret"))
	app.Get("/cron/job", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"success": true})
	})

	req := httptest.NewRequest("GET", "/cron/job", nil)
	req.Header.Set("Authorization", "Bearer super-secret")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest("GET", "/cron/job", nil)
	req.Header.Set("Authorization", "Bearer wrong-secret!")
	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest("GET", "/cron/job", nil)
	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

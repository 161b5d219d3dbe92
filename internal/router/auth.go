package router

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// RequireAPIKey gates a route on the shared secret the bot and the API
// both hold. The secret is accepted from X-API-Key or X-API-Secret
// (older bot builds send the latter); first non-empty header wins.
// The caller guarantees secret is non-empty — startup fails otherwise.
func RequireAPIKey(secret string) fiber.Handler {
	expected := []byte(secret)

	return func(c *fiber.Ctx) error {
		got := strings.TrimSpace(c.Get("X-API-Key"))
		if got == "" {
			got = strings.TrimSpace(c.Get("X-API-Secret"))
		}

		if subtle.ConstantTimeCompare([]byte(got), expected) != 1 {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}
		return c.Next()
	}
}

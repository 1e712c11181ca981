package webserver

import (
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
)

// RequireSession rejects requests not carrying a valid bearer token issued by
// the identity platform, and exposes the caller's identity to the handlers
func RequireSession(jwtSecret []byte) func(*fiber.Ctx) error {
	return jwtware.New(jwtware.Config{
		SigningKey:    jwtSecret,
		SigningMethod: "HS256",
		SuccessHandler: func(c *fiber.Ctx) error {
			c.Locals("Session", sessionData(c))
			return c.Next()
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: User ID not found in token claims.")
		},
	})
}

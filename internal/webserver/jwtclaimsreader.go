package webserver

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/svera/shareport/internal/webserver/model"
)

func sessionData(c *fiber.Ctx) model.Session {
	var session model.Session

	if t, ok := c.Locals("user").(*jwt.Token); ok {
		claims := t.Claims.(jwt.MapClaims)
		if value, ok := claims["sub"].(string); ok {
			session.UserID = value
		}
		if value, ok := claims["email"].(string); ok {
			session.Email = value
		}
		if value, ok := claims["exp"].(float64); ok {
			session.Exp = value
		}
	}

	return session
}

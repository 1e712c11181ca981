package webserver

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

type Config struct {
	// BaseURL is the absolute URL under which this service is reachable,
	// used to compose share, invite and presigned blob URLs
	BaseURL string
	// JwtSecret is the key shared with the identity platform to verify
	// session bearer tokens
	JwtSecret []byte
	// PresignExpiry is the lifetime of presigned blob read URLs
	PresignExpiry time.Duration
}

// New builds a new Fiber application and sets up the required routes
func New(cfg Config, controllers Controllers) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Shareport",
		ErrorHandler: controllers.ErrorHandler,
	})

	routes(app, controllers)

	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError
	message := "Internal server error. Please try again later."

	// Retrieve the custom status code and message if it's a *fiber.Error
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}

	// Detail of unexpected failures is logged server-side only
	if code == fiber.StatusInternalServerError {
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("request failed")
		message = "Internal server error. Please try again later."
	}

	return c.Status(code).JSON(fiber.Map{"error": message})
}

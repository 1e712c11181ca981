package blob

import (
	"errors"
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/svera/shareport/internal/webserver/infrastructure"
)

// Serve streams the object a presigned URL points at. The signed token is the
// only credential; no session is involved.
func (b *Controller) Serve(c *fiber.Ctx) error {
	file, attachmentName, err := b.blobs.Open(c.Params("token"))
	if errors.Is(err, infrastructure.ErrInvalidBlobToken) {
		return fiber.NewError(fiber.StatusForbidden, "This URL is invalid or has expired.")
	}
	if err != nil {
		log.Error().Err(err).Msg("error opening blob")
		return fiber.NewError(fiber.StatusNotFound, "Object not found.")
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		log.Error().Err(err).Msg("error reading blob")
		return fiber.ErrInternalServerError
	}

	if attachmentName != "" {
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", attachmentName))
	}
	return c.Send(content)
}

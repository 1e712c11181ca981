package sharelink

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/svera/shareport/internal/webserver/model"
)

func (s *Controller) Delete(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	link, err := s.links.FindByID(c.Params("id"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if link == nil {
		return fiber.NewError(fiber.StatusNotFound, "Share link not found.")
	}
	if link.UserID != session.UserID {
		return fiber.NewError(fiber.StatusForbidden, "You do not have permission to delete this share link.")
	}

	if err := s.links.Delete(link.ID); err != nil {
		return fiber.ErrInternalServerError
	}

	log.Info().Str("shareLinkID", link.ID).Str("userID", session.UserID).Msg("share link deleted")

	return c.JSON(fiber.Map{"message": "Share link deleted successfully"})
}

package sharelink

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Get is the anonymous lookup by public share code. Password-protected links
// only reveal a stub asking for the password; the resource is neither fetched
// nor counted as accessed until the password is presented.
func (s *Controller) Get(c *fiber.Ctx) error {
	link, err := s.links.FindByCode(c.Params("shareCode"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if link == nil {
		return fiber.NewError(fiber.StatusNotFound, "Share link not found.")
	}
	if link.Expired() {
		return fiber.NewError(fiber.StatusGone, "This share link has expired.")
	}

	if link.PasswordProtected() {
		return c.JSON(fiber.Map{
			"id":               link.ID,
			"shareCode":        link.ShareCode,
			"resourceType":     link.ResourceType,
			"passwordRequired": true,
			"allowDownload":    link.AllowDownload,
		})
	}

	resource, err := s.resources.Find(link.ResourceType, link.ResourceID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if resource == nil {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("%s not found.", capitalize(string(link.ResourceType))))
	}

	count, err := s.links.IncrementAccessCount(link.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	link.AccessCount = count

	return c.JSON(accessResponse{
		ShareLink: newAccessedLink(*link),
		Resource:  resource,
	})
}

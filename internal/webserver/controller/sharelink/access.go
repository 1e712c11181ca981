package sharelink

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type accessRequest struct {
	Password string `json:"password"`
}

// Access resolves a share code into the shared resource once the password,
// if any, is known. For blob-backed resources it also issues a presigned
// read URL, served as a download only when the link allows it and the caller
// asked for one.
func (s *Controller) Access(c *fiber.Ctx) error {
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
		var request accessRequest
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&request); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON payload.")
			}
		}
		if request.Password == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Password is required to access this shared item.")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(link.Password), []byte(request.Password)); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Incorrect password.")
		}
	}

	resource, err := s.resources.Find(link.ResourceType, link.ResourceID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if resource == nil {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("%s not found.", capitalize(string(link.ResourceType))))
	}

	var presignedURL string
	if link.ResourceType.BlobBacked() {
		if s.blobs == nil {
			log.Error().Str("resourceType", string(link.ResourceType)).Msg("no blob store configured for resource type")
			return fiber.ErrInternalServerError
		}
		attachmentName := ""
		if link.AllowDownload && c.Query("download") == "true" {
			attachmentName = resource.Name
		}
		if presignedURL, err = s.blobs.SignedURL(resource.BlobKey, attachmentName); err != nil {
			log.Error().Err(err).Str("key", resource.BlobKey).Msg("error signing blob URL")
			return fiber.ErrInternalServerError
		}
	}

	count, err := s.links.IncrementAccessCount(link.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	link.AccessCount = count

	log.Info().
		Str("shareCode", link.ShareCode).
		Str("resourceType", string(link.ResourceType)).
		Str("resourceID", link.ResourceID).
		Msg("shared item accessed")

	return c.JSON(accessResponse{
		ShareLink:    newAccessedLink(*link),
		Resource:     resource,
		PresignedURL: presignedURL,
	})
}

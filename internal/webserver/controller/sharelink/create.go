package sharelink

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/svera/shareport/internal/webserver/model"
)

type createRequest struct {
	ResourceType  model.ResourceType `json:"resourceType"`
	ResourceID    string             `json:"resourceId"`
	ExpiresAt     *time.Time         `json:"expiresAt"`
	Password      string             `json:"password"`
	AllowDownload *bool              `json:"allowDownload"`
}

func (s *Controller) Create(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	var request createRequest
	if err := c.BodyParser(&request); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON payload.")
	}

	if request.ResourceType == "" || request.ResourceID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Resource type and resource ID are required.")
	}

	if !request.ResourceType.In(model.ShareableResourceTypes) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid resource type. Must be one of: file, folder, photo, album, resume.")
	}

	resource, err := s.resources.Find(request.ResourceType, request.ResourceID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if resource == nil {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("%s not found.", capitalize(string(request.ResourceType))))
	}
	if resource.UserID != session.UserID {
		return fiber.NewError(fiber.StatusForbidden, fmt.Sprintf("You do not have permission to share this %s.", request.ResourceType))
	}

	link := model.ShareLink{
		ID:            uuid.NewString(),
		UserID:        session.UserID,
		ResourceType:  request.ResourceType,
		ResourceID:    request.ResourceID,
		AllowDownload: true,
	}
	if request.AllowDownload != nil {
		link.AllowDownload = *request.AllowDownload
	}
	if request.ExpiresAt != nil {
		expiresAt := request.ExpiresAt.UTC()
		link.ExpiresAt = &expiresAt
	}
	if request.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.ErrInternalServerError
		}
		link.Password = string(hash)
	}

	if err := s.links.CreateWithUniqueCode(&link); err != nil {
		return fiber.ErrInternalServerError
	}

	log.Info().
		Str("shareLinkID", link.ID).
		Str("userID", session.UserID).
		Str("resourceType", string(link.ResourceType)).
		Str("resourceID", link.ResourceID).
		Msg("share link created")

	return c.Status(fiber.StatusCreated).JSON(newLinkResponse(link, s.config.BaseURL))
}

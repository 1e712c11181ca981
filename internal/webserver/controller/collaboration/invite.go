package collaboration

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/svera/shareport/internal/webserver/model"
)

type inviteRequest struct {
	ResourceType model.ResourceType `json:"resourceType"`
	ResourceID   string             `json:"resourceId"`
	Email        string             `json:"email"`
	Permissions  string             `json:"permissions"`
	Message      string             `json:"message"`
}

func (l *Controller) Invite(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	var request inviteRequest
	if err := c.BodyParser(&request); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON payload.")
	}

	if request.ResourceType == "" || request.ResourceID == "" || request.Email == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Resource type, resource ID, and email are required.")
	}

	if !request.ResourceType.In(model.CollaborativeResourceTypes) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid resource type. Must be one of: file, folder, album.")
	}

	if request.Permissions != "" && !model.ValidPermission(request.Permissions) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid permissions. Must be one of: view, edit, admin.")
	}
	if request.Permissions == "" {
		request.Permissions = model.PermissionView
	}

	resource, err := l.resources.Find(request.ResourceType, request.ResourceID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if resource == nil {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("%s not found.", capitalize(string(request.ResourceType))))
	}
	if resource.UserID != session.UserID {
		return fiber.NewError(fiber.StatusForbidden, fmt.Sprintf("You do not have permission to share this %s.", request.ResourceType))
	}

	collaborator, err := l.users.FindByEmail(request.Email)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	collaboration := model.Collaboration{
		ID:                uuid.NewString(),
		OwnerID:           session.UserID,
		CollaboratorEmail: request.Email,
		ResourceType:      request.ResourceType,
		ResourceID:        request.ResourceID,
		Permissions:       request.Permissions,
		Status:            model.StatusInvited,
		Message:           request.Message,
	}
	if collaborator != nil {
		exists, err := l.collaborations.Exists(request.ResourceType, request.ResourceID, collaborator.ID)
		if err != nil {
			return fiber.ErrInternalServerError
		}
		if exists {
			return fiber.NewError(fiber.StatusConflict, "A collaboration already exists with this user for this resource.")
		}
		collaboration.CollaboratorID = &collaborator.ID
		collaboration.Status = model.StatusPending
	}

	if err := l.collaborations.CreateWithUniqueCode(&collaboration); err != nil {
		return fiber.ErrInternalServerError
	}

	inviteURL := inviteURL(l.config.BaseURL, collaboration.InviteCode)
	l.notify(collaboration, inviteURL)

	log.Info().
		Str("collaborationID", collaboration.ID).
		Str("userID", session.UserID).
		Str("email", request.Email).
		Str("resourceType", string(request.ResourceType)).
		Str("resourceID", request.ResourceID).
		Msg("collaboration invitation created")

	return c.Status(fiber.StatusCreated).JSON(newInviteResponse(collaboration, inviteURL))
}

// notify emails the invite to the addressed collaborator. Delivery is best
// effort; failures are logged, never surfaced to the owner.
func (l *Controller) notify(collaboration model.Collaboration, inviteURL string) {
	body := fmt.Sprintf("You have been invited to collaborate on a %s.<br>", collaboration.ResourceType)
	if strings.TrimSpace(collaboration.Message) != "" {
		body += fmt.Sprintf("<p>%s</p>", collaboration.Message)
	}
	body += fmt.Sprintf(`<p><a href="%s">Accept the invitation</a></p>`, inviteURL)

	if err := l.sender.Send(collaboration.CollaboratorEmail, "Collaboration invitation", body); err != nil {
		log.Warn().Err(err).Str("email", collaboration.CollaboratorEmail).Msg("error sending invitation email")
	}
}

func inviteURL(baseURL, code string) string {
	return fmt.Sprintf("%s/collaborations/accept/%s", baseURL, code)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

package collaboration

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/svera/shareport/internal/webserver/model"
)

// Accept transitions an invite to accepted, binding it to the accepting
// account. Only the invited account, or the owner of the invited email
// address when no account was known at invite time, may accept.
func (l *Controller) Accept(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	collaboration, err := l.collaborations.FindByInviteCode(c.Params("inviteCode"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if collaboration == nil {
		return fiber.NewError(fiber.StatusNotFound, "Collaboration invitation not found.")
	}

	user, err := l.users.FindByID(session.UserID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if user == nil {
		return fiber.NewError(fiber.StatusNotFound, "User not found.")
	}

	if collaboration.CollaboratorID != nil && *collaboration.CollaboratorID != user.ID {
		return fiber.NewError(fiber.StatusForbidden, "This invitation is not for you.")
	}
	if collaboration.CollaboratorID == nil && collaboration.CollaboratorEmail != user.Email {
		return fiber.NewError(fiber.StatusForbidden, "This invitation is not for your email address.")
	}

	if err := l.collaborations.Accept(collaboration, user.ID); err != nil {
		return fiber.ErrInternalServerError
	}

	log.Info().Str("collaborationID", collaboration.ID).Str("userID", user.ID).Msg("collaboration invitation accepted")

	return c.JSON(newInviteResponse(*collaboration, ""))
}
